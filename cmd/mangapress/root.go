package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rikuta/mangapress/pkg/app"
	"github.com/rikuta/mangapress/pkg/data"
)

var rootCmd = &cobra.Command{
	Use:   "mangapress [volume-dir...]",
	Short: "Batch manga volume to PDF/EPUB converter",
	Long:  "Convert directories of manga page images into single-file PDF or EPUB volumes, with optional per-series omnibus merging",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		opts, volumes, err := gatherRunInput(cmd, args)
		if err != nil {
			cobra.CheckErr(err)
		}

		a := app.New(volumes, opts, data.NewDuckDBRepository())
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	addRunFlags(rootCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func absPaths(args []string) []string {
	paths := make([]string, 0, len(args))
	for _, a := range args {
		if abs, err := filepath.Abs(a); err == nil {
			paths = append(paths, abs)
		} else {
			paths = append(paths, a)
		}
	}
	return paths
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
