package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rikuta/mangapress/pkg/app/screens"
	"github.com/rikuta/mangapress/pkg/data"
	"github.com/rikuta/mangapress/pkg/worker"
)

type App struct {
	volumes []data.Volume
	opts    worker.Options
	repo    *data.Repository
}

func New(volumes []data.Volume, opts worker.Options, repo *data.Repository) *App {
	return &App{volumes: volumes, opts: opts, repo: repo}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.volumes, a.opts, a.repo)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
