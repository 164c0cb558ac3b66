package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigviz/internal/trig"
)

// Theme defines the color scheme for the TUI, including one stroke color
// per function.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Curves  map[trig.Function]lipgloss.Color
}

// Curve returns the stroke color for fn.
func (t Theme) Curve(fn trig.Function) lipgloss.Color {
	if c, ok := t.Curves[fn]; ok {
		return c
	}
	return t.Text
}

// Available themes
var (
	// ThemeClassic uses the plain stroke colors also used by the exports.
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#00cccc"),
		Accent:  lipgloss.Color("#ff88ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
		Curves: map[trig.Function]lipgloss.Color{
			trig.Sin: lipgloss.Color("#4169e1"), // blue
			trig.Cos: lipgloss.Color("#32cd32"), // green
			trig.Tan: lipgloss.Color("#ffa500"), // orange
			trig.Sec: lipgloss.Color("#a020f0"), // purple
			trig.Csc: lipgloss.Color("#008080"), // teal
			trig.Cot: lipgloss.Color("#ff0000"), // red
		},
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
		Curves: map[trig.Function]lipgloss.Color{
			trig.Sin: lipgloss.Color("#00ffff"),
			trig.Cos: lipgloss.Color("#ff00ff"),
			trig.Tan: lipgloss.Color("#ffff00"),
			trig.Sec: lipgloss.Color("#ff8800"),
			trig.Csc: lipgloss.Color("#00ff88"),
			trig.Cot: lipgloss.Color("#ff0088"),
		},
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ffff00"),
		Curves: map[trig.Function]lipgloss.Color{
			trig.Sin: lipgloss.Color("#00ff00"),
			trig.Cos: lipgloss.Color("#00cc00"),
			trig.Tan: lipgloss.Color("#88ff88"),
			trig.Sec: lipgloss.Color("#00aa00"),
			trig.Csc: lipgloss.Color("#66dd66"),
			trig.Cot: lipgloss.Color("#aaffaa"),
		},
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
		Curves: map[trig.Function]lipgloss.Color{
			trig.Sin: lipgloss.Color("#00a8cc"),
			trig.Cos: lipgloss.Color("#0077be"),
			trig.Tan: lipgloss.Color("#ffd700"),
			trig.Sec: lipgloss.Color("#7fdbff"),
			trig.Csc: lipgloss.Color("#39cccc"),
			trig.Cot: lipgloss.Color("#ffcc00"),
		},
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Error:   lipgloss.Color("#ff4757"),
		Curves: map[trig.Function]lipgloss.Color{
			trig.Sin: lipgloss.Color("#ff6b6b"),
			trig.Cos: lipgloss.Color("#feca57"),
			trig.Tan: lipgloss.Color("#ff9ff3"),
			trig.Sec: lipgloss.Color("#ffc048"),
			trig.Csc: lipgloss.Color("#5fd068"),
			trig.Cot: lipgloss.Color("#ff4757"),
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the classic theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
