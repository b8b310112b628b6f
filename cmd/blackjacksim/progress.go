package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// progressMsg carries the total number of completed rounds.
type progressMsg int

// simDoneMsg signals that the simulation finished and the UI should exit.
type simDoneMsg struct{}

type progressModel struct {
	bar   progress.Model
	total int
	done  int
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 24
		if m.bar.Width > 80 {
			m.bar.Width = 80
		}

	case progressMsg:
		m.done = int(msg)
		return m, m.bar.SetPercent(float64(m.done) / float64(m.total))

	case simDoneMsg:
		return m, tea.Sequence(m.bar.SetPercent(1), tea.Quit)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	return fmt.Sprintf("\n  %s %d/%d rounds\n", m.bar.View(), m.done, m.total)
}
