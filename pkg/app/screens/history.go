package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rikuta/mangapress/pkg/app/styles"
	"github.com/rikuta/mangapress/pkg/data"
)

type historyLoadedMsg struct {
	artifacts []*data.Artifact
	err       error
}

// HistoryScreen lists past conversion artifacts from the history database.
type HistoryScreen struct {
	repo *data.Repository

	artifacts []*data.Artifact
	table     table.Model
	err       error

	width  int
	height int
}

func NewHistoryScreen(repo *data.Repository) *HistoryScreen {
	columns := []table.Column{
		{Title: "Series", Width: 28},
		{Title: "Title", Width: 24},
		{Title: "Format", Width: 7},
		{Title: "Pages", Width: 6},
		{Title: "Omnibus", Width: 8},
		{Title: "Created", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return &HistoryScreen{
		repo:  repo,
		table: t,
	}
}

func (s *HistoryScreen) Resize(width, height int) {
	s.width = width
	s.height = height
	if height > 10 {
		s.table.SetHeight(height - 10)
	}
}

// loadHistory is a tea.Cmd that fetches all recorded artifacts.
func (s *HistoryScreen) loadHistory() tea.Msg {
	artifacts, err := s.repo.ListArtifacts()
	return historyLoadedMsg{artifacts: artifacts, err: err}
}

func (s *HistoryScreen) update(root *RootScreen, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.err = msg.err
		s.artifacts = msg.artifacts
		s.table.SetRows(artifactRows(msg.artifacts))
		return root, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return root, s.loadHistory
		case "d":
			if a := s.selectedArtifact(); a != nil {
				if err := s.repo.DeleteArtifact(a.ID); err != nil {
					s.err = err
					return root, nil
				}
				return root, s.loadHistory
			}
			return root, nil
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return root, cmd
}

func (s *HistoryScreen) selectedArtifact() *data.Artifact {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.artifacts) {
		return nil
	}
	return s.artifacts[i]
}

func (s *HistoryScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Conversion History"))
	b.WriteString("\n")

	switch {
	case s.err != nil:
		b.WriteString(styles.LogError.Render(fmt.Sprintf("failed to load history: %v", s.err)))
	case len(s.artifacts) == 0:
		b.WriteString(styles.MutedStyle.Render("No conversions recorded yet."))
	default:
		b.WriteString(s.table.View())
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("r: refresh • d: delete entry • tab: convert • q: quit"))

	return b.String()
}

func artifactRows(artifacts []*data.Artifact) []table.Row {
	rows := make([]table.Row, 0, len(artifacts))
	for _, a := range artifacts {
		omnibus := ""
		if a.Merged {
			omnibus = "yes"
		}
		rows = append(rows, table.Row{
			clip(a.Series, 26),
			clip(a.Title, 22),
			a.Format,
			fmt.Sprintf("%d", a.Pages),
			omnibus,
			a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
