package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rikuta/mangapress/pkg/app/components"
	"github.com/rikuta/mangapress/pkg/app/styles"
	"github.com/rikuta/mangapress/pkg/data"
	"github.com/rikuta/mangapress/pkg/worker"
)

type jobEventMsg worker.Event

type jobDoneMsg struct{}

// ConvertScreen drives one conversion job and shows its live log.
type ConvertScreen struct {
	volumes []data.Volume
	opts    worker.Options
	repo    *data.Repository

	job  *worker.Job
	list *components.VolumeList
	logs *components.LogView

	running bool
	started int
	width   int
	height  int
}

func NewConvertScreen(volumes []data.Volume, opts worker.Options, repo *data.Repository) *ConvertScreen {
	return &ConvertScreen{
		volumes: volumes,
		opts:    opts,
		repo:    repo,
		list:    components.NewVolumeList(volumes),
		logs:    components.NewLogView(80, 12),
	}
}

func (s *ConvertScreen) Resize(width, height int) {
	s.width = width
	s.height = height
	s.list.Width = width - 4
	s.logs.Width = width - 4
	s.logs.Height = height / 2
}

func (s *ConvertScreen) Running() bool {
	return s.running
}

// StopJob requests cooperative cancellation of the running job.
func (s *ConvertScreen) StopJob() {
	if s.job != nil {
		s.job.Stop()
	}
}

func (s *ConvertScreen) update(root *RootScreen, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "enter", "s":
			if !s.running && len(s.volumes) > 0 {
				return root, s.startJob()
			}
		case "x":
			s.StopJob()
		}

	case jobEventMsg:
		s.logs.Append(worker.Event(msg))
		if strings.HasPrefix(msg.Message, "converting ") {
			s.started++
		}
		return root, s.waitForEvent()

	case jobDoneMsg:
		s.running = false
		s.job = nil
	}

	return root, nil
}

func (s *ConvertScreen) startJob() tea.Cmd {
	s.logs.Clear()
	s.started = 0
	s.running = true
	s.job = worker.NewJob(s.volumes, s.opts, s.repo)
	s.job.Start()
	return s.waitForEvent()
}

// waitForEvent blocks on the job's event channel and converts the next event
// into a bubbletea message; the closed channel becomes the done message.
func (s *ConvertScreen) waitForEvent() tea.Cmd {
	events := s.job.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return jobDoneMsg{}
		}
		return jobEventMsg(ev)
	}
}

func (s *ConvertScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Conversion Queue"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d volumes → %s (%s)", len(s.volumes), s.opts.OutDir, s.opts.Format)))
	b.WriteString("\n\n")
	b.WriteString(s.list.View())
	b.WriteString("\n")

	if s.running || s.logs.Len() > 0 {
		bar := components.SimpleProgress(s.started, len(s.volumes), max(10, s.width-8))
		if bar != "" {
			b.WriteString(bar)
			b.WriteString("\n\n")
		}
		b.WriteString(styles.CardStyle.Render(s.logs.View()))
	}

	help := "enter: start • x: cancel • tab: history • q: quit"
	if s.running {
		help = "x or q: cancel • tab: history"
	}
	b.WriteString(styles.HelpStyle.Render(help))

	return b.String()
}
