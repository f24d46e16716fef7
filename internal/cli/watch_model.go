package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/zeit/internal/cli/formatter"
	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const watchRefresh = time.Second

type watchKeyMap struct {
	Quit    key.Binding
	StopAll key.Binding
	Refresh key.Binding
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		StopAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop all"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Messages

type watchTickMsg time.Time

type activeLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

type stoppedAllMsg struct {
	tasks []*domain.Task
	err   error
}

// watchModel shows the running tasks and their elapsed time, reloading
// from storage once per second.
type watchModel struct {
	tracking service.TrackingService
	now      func() time.Time
	keys     watchKeyMap
	spinner  spinner.Model

	active   []*domain.Task
	err      error
	notice   string
	loaded   bool
	width    int
	quitting bool
}

func newWatchModel(tracking service.TrackingService, now func() time.Time) watchModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = formatter.StyleGreen
	return watchModel{
		tracking: tracking,
		now:      now,
		keys:     newWatchKeyMap(),
		spinner:  sp,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.loadActive(), m.spinner.Tick, tickEvery())
}

func tickEvery() tea.Cmd {
	return tea.Tick(watchRefresh, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) loadActive() tea.Cmd {
	tracking := m.tracking
	return func() tea.Msg {
		tasks, err := tracking.Active(context.Background())
		return activeLoadedMsg{tasks: tasks, err: err}
	}
}

func (m watchModel) stopAll() tea.Cmd {
	tracking := m.tracking
	return func() tea.Msg {
		tasks, err := tracking.StopAll(context.Background())
		return stoppedAllMsg{tasks: tasks, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.StopAll):
			return m, m.stopAll()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadActive()
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.loadActive(), tickEvery())

	case activeLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.active = msg.tasks
		}
		return m, nil

	case stoppedAllMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		names := make([]string, 0, len(msg.tasks))
		for _, t := range msg.tasks {
			names = append(names, t.Name)
		}
		if len(names) == 0 {
			m.notice = "Nothing was running."
		} else {
			m.notice = "Stopped " + strings.Join(names, ", ")
		}
		return m, m.loadActive()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Running"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.spinner.View() + " loading...\n")
	default:
		if len(m.active) > 0 {
			b.WriteString(m.spinner.View() + "\n")
		}
		b.WriteString(formatter.FormatActive(m.active, m.now()))
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + formatter.Dim(m.helpLine()) + "\n")
	return b.String()
}

func (m watchModel) helpLine() string {
	bindings := []key.Binding{m.keys.Quit, m.keys.StopAll, m.keys.Refresh}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
