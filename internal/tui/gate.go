package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GatePage holds the presentation until every content feed is ready.
type GatePage struct {
	rt       *Runtime
	spinner  spinner.Model
	attempts int
}

func NewGatePage(rt *Runtime) *GatePage {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(ColorOrange)
	return &GatePage{rt: rt, spinner: s}
}

func (g *GatePage) ID() string { return pageGate }

// Init starts a fetch attempt each time the gate is shown.
func (g *GatePage) Init() tea.Cmd {
	return g.attempt()
}

func (g *GatePage) attempt() tea.Cmd {
	var gen uint64
	if g.attempts == 0 {
		gen = g.rt.readiness.Begin()
	} else {
		gen = g.rt.readiness.Retry()
	}
	g.attempts++
	return tea.Batch(fetchContentCmd(g.rt.readiness, gen), g.spinner.Tick)
}

func (g *GatePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !g.rt.readiness.State().Pending {
			return nil, nil
		}
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return cmd, nil

	case contentLoadedMsg:
		st, applied := g.rt.readiness.Settle(msg.outcome)
		if applied && st.Ready && g.rt.autoLaunch {
			return nil, &PageNav{PageID: pageBoard}
		}
		return nil, nil

	case RemoteMsg:
		if msg.Retry && !g.rt.readiness.State().Pending {
			return g.attempt(), nil
		}
		return nil, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}
	return nil, nil
}

func (g *GatePage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	keys := g.rt.keys
	st := g.rt.readiness.State()
	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return tea.Quit, nil
	case key.Matches(msg, keys.Launch):
		switch {
		case st.Ready:
			return nil, &PageNav{PageID: pageBoard}
		case !st.Pending:
			return g.attempt(), nil
		}
	case key.Matches(msg, keys.Retry):
		if !st.Pending {
			return g.attempt(), nil
		}
	}
	return nil, nil
}

func (g *GatePage) View(width, height int) string {
	st := g.rt.readiness.State()

	var status string
	switch {
	case st.Pending:
		status = g.spinner.View() + " " + mutedStyle.Render(st.Status)
	case st.Error:
		status = errorStyle.Render(st.Status)
	case st.Ready:
		status = readyStyle.Render(st.Status + " • Server Running")
	default:
		status = mutedStyle.Render(st.Status)
	}

	var action string
	switch {
	case st.Ready:
		action = buttonStyle.Render("Inaugurate") + "  " + helpStyle.Render("enter")
	case !st.Pending:
		action = buttonStyle.Render("Retry") + "  " + helpStyle.Render("enter / r")
	}

	lines := []string{
		titleStyle.Render(strings.ToUpper(g.rt.title)),
		subtitleStyle.Render("Digital Notice Board"),
		"",
		status,
	}
	if action != "" {
		lines = append(lines, "", action)
	}
	lines = append(lines, "", helpStyle.Render("q quit"))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
