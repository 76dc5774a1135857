package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rikuta/mangapress/pkg/app/styles"
	"github.com/rikuta/mangapress/pkg/data"
	"github.com/rikuta/mangapress/pkg/worker"
)

type screenType int

const (
	convertView screenType = iota
	historyView
)

type RootScreen struct {
	repo *data.Repository

	currentView screenType
	convert     *ConvertScreen
	history     *HistoryScreen

	width  int
	height int
}

func NewRootScreen(volumes []data.Volume, opts worker.Options, repo *data.Repository) *RootScreen {
	return &RootScreen{
		repo:    repo,
		convert: NewConvertScreen(volumes, opts, repo),
		history: NewHistoryScreen(repo),
	}
}

func (s *RootScreen) Init() tea.Cmd {
	return s.history.loadHistory
}

func (s *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.convert.Resize(msg.Width, msg.Height)
		s.history.Resize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// While a job runs, q requests cancellation instead of quitting
			// so the terminal event is still delivered.
			if s.currentView == convertView && s.convert.Running() {
				s.convert.StopJob()
				return s, nil
			}
			return s, tea.Quit
		case "tab":
			if s.currentView == convertView {
				s.currentView = historyView
				return s, s.history.loadHistory
			}
			s.currentView = convertView
			return s, nil
		}
	}

	switch s.currentView {
	case historyView:
		return s.history.update(s, msg)
	default:
		return s.convert.update(s, msg)
	}
}

func (s *RootScreen) View() string {
	tabs := s.renderTabs()

	var body string
	switch s.currentView {
	case historyView:
		body = s.history.View()
	default:
		body = s.convert.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body)
}

func (s *RootScreen) renderTabs() string {
	convertTab := styles.InactiveTabStyle.Render("Convert")
	historyTab := styles.InactiveTabStyle.Render("History")
	if s.currentView == convertView {
		convertTab = styles.ActiveTabStyle.Render("Convert")
	} else {
		historyTab = styles.ActiveTabStyle.Render("History")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, convertTab, historyTab)
}
