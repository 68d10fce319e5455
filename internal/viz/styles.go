package viz

import "github.com/charmbracelet/lipgloss"

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).MarginTop(1)

	StatusOK   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusWarn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusFail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	Subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// Stat renders an aligned label/value line.
func Stat(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
