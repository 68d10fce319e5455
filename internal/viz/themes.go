package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the temperature ramp (cold to hot) and UI colors.
type Theme struct {
	Name   string
	Ramp   []lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	ThemeHot = Theme{
		Name:   "hot",
		Ramp:   []lipgloss.Color{"#0b0000", "#8b0000", "#ff3300", "#ffcc00", "#ffffff"},
		Accent: lipgloss.Color("#ffaa00"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b6b"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Ramp:   []lipgloss.Color{"#001a33", "#0077be", "#00a8cc", "#7fe0ff", "#e0f0ff"},
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Ramp:   []lipgloss.Color{"#001100", "#005500", "#00cc00", "#88ff88"},
		Accent: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Ramp:   []lipgloss.Color{"#000000", "#555555", "#aaaaaa", "#ffffff"},
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}

	// Default theme
	CurrentTheme = ThemeHot

	Themes = []Theme{
		ThemeHot,
		ThemeOcean,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to hot.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeHot
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the theme after name in Themes, wrapping around.
func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Color maps v in [0, 1] onto the ramp by linear interpolation.
func (t Theme) Color(v float64) lipgloss.Color {
	if len(t.Ramp) == 0 {
		return t.Text
	}
	if len(t.Ramp) == 1 || v <= 0 {
		return t.Ramp[0]
	}
	if v >= 1 {
		return t.Ramp[len(t.Ramp)-1]
	}
	pos := v * float64(len(t.Ramp)-1)
	i := int(pos)
	frac := pos - float64(i)

	sr, sg, sb := parseHex(string(t.Ramp[i]))
	er, eg, eb := parseHex(string(t.Ramp[i+1]))
	r := int(float64(sr) + frac*float64(er-sr))
	g := int(float64(sg) + frac*float64(eg-sg))
	b := int(float64(sb) + frac*float64(eb-sb))
	return lipgloss.Color(hexColor(r, g, b))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
