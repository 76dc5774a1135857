package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rikuta/mangapress/pkg/data"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously converted artifacts",
	Long:  "Display every output file recorded by past conversion runs in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository()
		artifacts, err := repo.ListArtifacts()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(artifacts) == 0 {
			fmt.Println("📚 No conversions recorded yet. Use 'mangapress convert' to create some.")
			return
		}

		columns := []table.Column{
			{Title: "Series", Width: 28},
			{Title: "Title", Width: 24},
			{Title: "Format", Width: 7},
			{Title: "Pages", Width: 6},
			{Title: "Omnibus", Width: 8},
			{Title: "Created", Width: 16},
		}

		rows := []table.Row{}
		for _, a := range artifacts {
			omnibus := ""
			if a.Merged {
				omnibus = "yes"
			}
			rows = append(rows, table.Row{
				truncateString(a.Series, 26),
				truncateString(a.Title, 22),
				a.Format,
				fmt.Sprintf("%d", a.Pages),
				omnibus,
				a.CreatedAt.Format("2006-01-02 15:04"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Conversion history (%d artifacts)\n\n", len(artifacts))
		fmt.Println(t.View())
	},
}
