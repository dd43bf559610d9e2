// Package tui renders a live terminal preview of an animation track.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/kinemath/anim"
)

const (
	defaultWidth = 60
	eventLines   = 6
)

// FrameMsg asks the model to sample the player.
type FrameMsg time.Time

type keyMap struct {
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart}, {k.Help, k.Quit}}
}

var keys = keyMap{
	Restart: key.NewBinding(
		key.WithKeys("r", " "),
		key.WithHelp("r/space", "restart"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PreviewModel is the Bubble Tea model for a track preview.
type PreviewModel struct {
	name   string
	player *anim.Player
	logger *log.Logger

	// largest absolute keyframe value, drawn as a full bar
	scale float64

	keys   keyMap
	help   help.Model
	events viewport.Model

	frame     anim.Frame
	lines     []string
	lastCycle int
	done      bool
	quitting  bool
	width     int
}

// NewPreviewModel creates a preview for a named track. The player must be
// built from track.
func NewPreviewModel(name string, track anim.Track, player *anim.Player, logger *log.Logger) *PreviewModel {
	scale := 0.0
	for _, v := range track.Values {
		scale = max(scale, math.Abs(v))
	}
	if scale == 0 {
		scale = 1
	}

	vp := viewport.New(defaultWidth, eventLines)
	vp.SetContent("")

	return &PreviewModel{
		name:   name,
		player: player,
		logger: logger.WithPrefix("tui"),
		scale:  scale,
		keys:   keys,
		help:   help.New(),
		events: vp,
		width:  defaultWidth,
	}
}

func tick() tea.Cmd {
	return tea.Tick(anim.FrameDuration, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Init starts the frame ticker.
func (m *PreviewModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages in the TUI
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 20)
		m.events.Width = m.width
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		}
		return m, nil

	case FrameMsg:
		m.sample()
		return m, tick()
	}
	return m, nil
}

func (m *PreviewModel) restart() {
	m.player.Restart()
	m.lastCycle = 0
	m.done = false
	m.addEvent("restarted")
	m.sample()
}

func (m *PreviewModel) sample() {
	m.frame = m.player.Sample()
	switch {
	case m.frame.State == anim.Completed && !m.done:
		m.done = true
		m.addEvent(fmt.Sprintf("completed at frame %d, value %.4f", m.frame.Index, m.frame.Value))
	case m.frame.Cycle > m.lastCycle:
		m.lastCycle = m.frame.Cycle
		m.addEvent(fmt.Sprintf("cycle %d at frame %d", m.frame.Cycle, m.frame.Index))
	}
}

func (m *PreviewModel) addEvent(line string) {
	m.logger.Debug(line, "track", m.name)
	m.lines = append(m.lines, line)
	m.events.SetContent(EventStyle.Render(strings.Join(m.lines, "\n")))
	m.events.GotoBottom()
}

// Frame returns the most recently sampled frame.
func (m *PreviewModel) Frame() anim.Frame {
	return m.frame
}

// View renders the preview
func (m *PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	f := m.frame
	status := fmt.Sprintf("frame %-4d  t=%.3fs  value=%.4f  %s", f.Index, f.Elapsed.Seconds(), f.Value, f.State)
	if f.Segment >= 0 {
		status += fmt.Sprintf(" #%d", f.Segment)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.bar(f.Value),
		StatusStyle.Render(status),
		"",
		InfoStyle.Render("events"),
		m.events.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("kinemath · "+m.name),
		PanelStyle.Width(m.width).Render(body),
		m.help.View(m.keys),
	)
}

// bar draws |value| as a horizontal bar relative to the largest keyframe.
func (m *PreviewModel) bar(value float64) string {
	width := max(m.width-4, 1)
	n := int(math.Round(min(math.Abs(value)/m.scale, 1) * float64(width)))
	sign := " "
	if value < 0 {
		sign = "-"
	}
	return InfoStyle.Render(sign) + BarStyle.Render(strings.Repeat("█", n))
}
