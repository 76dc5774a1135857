package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rikuta/mangapress/pkg/data"
	"github.com/rikuta/mangapress/pkg/scan"
	"github.com/rikuta/mangapress/pkg/worker"
)

var convertCmd = &cobra.Command{
	Use:   "convert [volume-dir...]",
	Short: "Convert volume directories to PDF or EPUB",
	Long:  "Convert each given volume directory into a single book file, grouped by series. Use --parent to scan a folder tree for volumes instead of listing them one by one.",
	Run: func(cmd *cobra.Command, args []string) {
		opts, volumes, err := gatherRunInput(cmd, args)
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(volumes) == 0 {
			fmt.Println("⚠️  No volume directories to convert. Pass directories or --parent.")
			return
		}

		fmt.Printf("📚 Converting %d volumes to %s in %s\n", len(volumes), opts.Format, opts.OutDir)

		job := worker.NewJob(volumes, opts, data.NewDuckDBRepository())
		job.Start()

		// Ctrl-C requests cooperative cancellation; the in-flight volume
		// still finishes before the job stops.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		defer signal.Stop(sigCh)
		go func() {
			<-sigCh
			job.Stop()
		}()

		for ev := range job.Events() {
			fmt.Printf("%s %s\n", levelBadge(ev.Level), ev.Message)
		}
	},
}

// gatherRunInput resolves the shared run flags and volume arguments of the
// root and convert commands.
func gatherRunInput(cmd *cobra.Command, args []string) (worker.Options, []data.Volume, error) {
	formatFlag, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")
	merge, _ := cmd.Flags().GetBool("merge")
	parent, _ := cmd.Flags().GetString("parent")

	format, err := data.ParseFormat(formatFlag)
	if err != nil {
		return worker.Options{}, nil, err
	}

	seen := map[string]bool{}
	var volumes []data.Volume
	for _, path := range absPaths(args) {
		if !seen[path] {
			seen[path] = true
			volumes = append(volumes, data.Volume{Path: path})
		}
	}
	if parent != "" {
		for _, v := range scan.DiscoverVolumes(parent) {
			if !seen[v.Path] {
				seen[v.Path] = true
				volumes = append(volumes, v)
			}
		}
	}

	return worker.Options{OutDir: outDir, Format: format, Merge: merge}, volumes, nil
}

func levelBadge(level worker.Level) string {
	switch level {
	case worker.LevelSuccess:
		return "✅"
	case worker.LevelWarning:
		return "⚠️ "
	case worker.LevelError:
		return "❌"
	default:
		return "ℹ️ "
	}
}

func addRunFlags(c *cobra.Command) {
	c.Flags().StringP("format", "f", "pdf", "Output format (pdf or epub)")
	c.Flags().StringP("out", "o", "output", "Output directory")
	c.Flags().BoolP("merge", "m", false, "Also produce a per-series omnibus (总集)")
	c.Flags().StringP("parent", "p", "", "Scan this folder tree for volume directories")
}

func init() {
	addRunFlags(convertCmd)
}
