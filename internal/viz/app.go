package viz

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trigviz/internal/config"
	"github.com/san-kum/trigviz/internal/quiz"
	"github.com/san-kum/trigviz/internal/trig"
)

const sliderWidth = 48

// Model is the interactive explorer: an angle slider driving the readouts,
// the six plots and the sign quiz.
type Model struct {
	angle     int
	step      int
	bigStep   int
	fns       []trig.Function
	plotW     int
	plotH     int
	theme     int
	preset    int
	presets   []string
	session   *quiz.Session
	feedback  string
	lastRight bool
	showHelp  bool
}

// NewModel builds the explorer from cfg. Functions in cfg that fail to
// parse fall back to all six.
func NewModel(cfg *config.Config) Model {
	fns, err := cfg.GetFunctions()
	if err != nil {
		log.Printf("viz: %v, plotting all functions", err)
		fns = trig.Functions()
	}
	return Model{
		angle:   trig.ClampAngle(cfg.Angle),
		step:    cfg.Step,
		bigStep: cfg.BigStep,
		fns:     fns,
		plotW:   cfg.Plot.Width,
		plotH:   cfg.Plot.Height,
		theme:   themeIndex(cfg.Theme),
		preset:  -1,
		presets: config.ListPresets(),
		session: quiz.NewSession(),
	}
}

func (m Model) Angle() int { return m.angle }

func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses. Every change in angle re-renders all plots;
// the curves themselves are memoized in trig.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.setAngle(m.angle - m.step)
	case "right", "l":
		m.setAngle(m.angle + m.step)
	case "shift+left", "H", "down", "j":
		m.setAngle(m.angle - m.bigStep)
	case "shift+right", "L", "up", "k":
		m.setAngle(m.angle + m.bigStep)
	case "0", "home":
		m.setAngle(trig.MinAngle)
	case "$", "end":
		m.setAngle(trig.MaxAngle)
	case "p":
		m.preset = (m.preset + 1) % len(m.presets)
		m.setAngle(config.Presets[m.presets[m.preset]].Angle)
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
	case "r":
		m.session.Reset()
		m.feedback = ""
	case "?":
		m.showHelp = !m.showHelp
	case "1", "2", "3", "4", "5", "6":
		fn := trig.Functions()[int(k[0]-'1')]
		j := m.session.Answer(fn, m.angle)
		m.feedback, m.lastRight = j.Message(), j.Correct
		log.Printf("quiz: %s at %d° correct=%v", fn, m.angle, j.Correct)
	}
	return m, nil
}

func (m *Model) setAngle(a int) {
	m.angle = trig.ClampAngle(a)
}

func (m Model) View() string {
	th := Themes[m.theme]
	st := newStyles(th)
	r := trig.Evaluate(m.angle)

	var b strings.Builder
	b.WriteString(st.title.Render("TRIGVIZ") + "  " + st.muted.Render("theme "+th.Name) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(th.Accent).Render(Slider(m.angle, sliderWidth)) + "\n")
	b.WriteString(st.value.UnsetWidth().Render(fmt.Sprintf("Angle: %d°", m.angle)) + "   " +
		st.title.Render(fmt.Sprintf("Quadrant: %d", int(r.Quadrant()))) + "\n\n")
	b.WriteString(m.viewReadings(st, r) + "\n\n")
	b.WriteString(m.viewPlots(st, th) + "\n")
	b.WriteString(st.muted.Render(Separator(sliderWidth)) + "\n")
	b.WriteString(m.viewQuiz(st) + "\n\n")
	b.WriteString(st.hint("h/l", "±"+fmt.Sprint(m.step)+"°", "H/L", "±"+fmt.Sprint(m.bigStep)+"°", "1-6", "answer", "p", "preset", "t", "theme", "?", "help", "q", "quit"))
	if m.showHelp {
		b.WriteString("\n\n" + st.panel.Render(helpText))
	}
	return b.String()
}

func (m Model) viewReadings(st styles, r trig.Reading) string {
	row := func(fns ...trig.Function) string {
		var cells []string
		for _, fn := range fns {
			cells = append(cells, st.label.Render(fn.Label()+":")+st.value.Render(r.Value(fn).String()))
		}
		return strings.Join(cells, "  ")
	}
	return row(trig.Sin, trig.Cos, trig.Tan) + "\n" + row(trig.Csc, trig.Sec, trig.Cot)
}

func (m Model) viewPlots(st styles, th Theme) string {
	var panels []string
	for _, fn := range m.fns {
		style := lipgloss.NewStyle().Foreground(th.Curve(fn))
		body := style.Bold(true).Render(fn.Label()) + "\n" + style.Render(Render(fn, m.angle, m.plotW, m.plotH))
		panels = append(panels, st.panel.Render(body))
	}
	var rows []string
	for i := 0; i < len(panels); i += 2 {
		if i+1 < len(panels) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[i], panels[i+1]))
		} else {
			rows = append(rows, panels[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewQuiz(st styles) string {
	var b strings.Builder
	b.WriteString(st.section.Render("Quick Quiz: Signs of Trig Functions") + "\n")
	b.WriteString(fmt.Sprintf("At angle %d°, which of these is positive?\n", m.angle))
	for i, fn := range trig.Functions() {
		b.WriteString(st.key.Render(fmt.Sprintf("[%d]", i+1)) + " " + fn.Label() + "  ")
	}
	b.WriteString("\n")
	switch {
	case m.feedback == "":
	case m.lastRight:
		b.WriteString(st.good.Render(m.feedback) + "\n")
	default:
		b.WriteString(st.bad.Render(m.feedback) + "\n")
	}
	correct, total := m.session.Score()
	b.WriteString(st.score(correct, total))
	return b.String()
}

const helpText = `KEYBOARD SHORTCUTS
h / ←        angle - step
l / →        angle + step
H / j / ↓    angle - big step
L / k / ↑    angle + big step
0 / $        jump to 0° / 360°
p            next preset angle
1-6          answer: sin cos tan sec cosec cot
r            reset quiz score
t            cycle themes
?            toggle this help
q            quit`

// Run starts the explorer on the alternate screen and blocks until the user
// quits.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
