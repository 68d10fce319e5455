package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/heat"
)

const (
	plotWidth  = 60
	plotHeight = 12
	mapHeight  = 16
)

type TickMsg time.Time

// Replay steps through the columns of a finished solution.
type Replay struct {
	sol      *heat.Solution
	title    string
	step     int
	last     int
	running  bool
	theme    Theme
	fps      int
	lo, hi   float64
	showHelp bool
}

func NewReplay(sol *heat.Solution, title string, fps int) Replay {
	if fps <= 0 {
		fps = 30
	}
	_, cols := sol.Field.Dims()
	lo, hi := bounds(sol.Field)
	return Replay{
		sol:     sol,
		title:   title,
		last:    cols - 1,
		running: true,
		theme:   CurrentTheme,
		fps:     fps,
		lo:      lo,
		hi:      hi,
	}
}

func (m Replay) Step() int     { return m.step }
func (m Replay) Running() bool { return m.running }
func (m Replay) Theme() Theme  { return m.theme }

func (m Replay) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Replay) Init() tea.Cmd {
	return m.tick()
}

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "[", "left", "h":
			m.running = false
			m.step = max(m.step-1, 0)
		case "]", "right", "l":
			m.running = false
			m.step = min(m.step+1, m.last)
		case "r":
			m.step = 0
		case "t":
			m.theme = nextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.step < m.last {
				m.step++
			} else {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Replay) View() string {
	col := m.sol.Column(m.step)

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	// Pin the y range so successive frames are comparable.
	plot := Profile(col, fmt.Sprintf("u(x, t=%.4f)", m.sol.Time(m.step)), plotWidth, plotHeight,
		asciigraph.LowerBound(m.lo), asciigraph.UpperBound(m.hi))
	b.WriteString(panelStyle.Render(plot))
	b.WriteString("\n")

	b.WriteString(m.strip(col))
	b.WriteString("\n")

	peak, energy := col[0], 0.0
	for i, v := range col {
		peak = max(peak, v)
		if i > 0 && i < len(col)-1 {
			energy += v
		}
	}
	energy *= m.sol.Params.Spacing()

	status := StatusOK.Render("▶ playing")
	if !m.running {
		status = StatusWarn.Render("❚❚ paused")
	}
	stats := lipgloss.JoinVertical(lipgloss.Left,
		Stat("status", status),
		Stat("step", fmt.Sprintf("%d / %d", m.step, m.last)),
		Stat("time", fmt.Sprintf("%.4f", m.sol.Time(m.step))),
		Stat("peak", fmt.Sprintf("%.4f", peak)),
		Stat("energy", fmt.Sprintf("%.4f", energy)),
		Stat("theme", m.theme.Name),
	)
	b.WriteString(stats)

	if m.showHelp {
		b.WriteString(helpStyle.Render("\nspace play/pause · [ ] step · r rewind · t theme · q quit"))
	} else {
		b.WriteString(helpStyle.Render("\n? help"))
	}
	return b.String()
}

// strip renders the current column as a single colored heat bar.
func (m Replay) strip(col []float64) string {
	span := m.hi - m.lo
	if span == 0 {
		span = 1
	}
	var b strings.Builder
	width := min(plotWidth, len(col))
	for x := 0; x < width; x++ {
		v := (col[sample(x, width, len(col))] - m.lo) / span
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Color(v)).Render(string(shade(v))))
	}
	return b.String()
}

// RunReplay blocks until the user quits.
func RunReplay(sol *heat.Solution, title string, fps int) error {
	_, err := tea.NewProgram(NewReplay(sol, title, fps)).Run()
	return err
}
