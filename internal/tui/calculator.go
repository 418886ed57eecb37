package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/deskwidgets/internal/calculator"
)

const calcDisplayWidth = 24

// calcScreen is the Display and Notifier of the calculator.
type calcScreen struct {
	text  string
	alert string
}

func (s *calcScreen) SetText(text string) { s.text = text }

func (s *calcScreen) Notify(err error) { s.alert = err.Error() }

type calcModel struct {
	calc   *calculator.Calculator
	screen *calcScreen
	keys   calcKeyMap
	help   help.Model
}

func newCalcModel(logger *slog.Logger) calcModel {
	screen := &calcScreen{}
	return calcModel{
		calc:   calculator.New(screen, calculator.WithNotifier(screen), calculator.WithLogger(logger)),
		screen: screen,
		keys:   newCalcKeyMap(),
		help:   help.New(),
	}
}

func (m calcModel) update(msg tea.Msg) (calcModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// the alert stays until the next key press
		m.screen.alert = ""
		m.calc.HandleKey(msg.String())
	}
	return m, nil
}

var calcKeypad = [][]string{
	{"7", "8", "9", calculator.OpDivide.String()},
	{"4", "5", "6", calculator.OpMultiply.String()},
	{"1", "2", "3", calculator.OpSubtract.String()},
	{"0", ".", "=", calculator.OpAdd.String()},
}

func (m calcModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🧮 Calculator"))
	b.WriteString("\n\n")

	st := m.calc.State()
	pending := " "
	if st.HasPrevious && st.Operator != calculator.OpNone {
		pending = calculator.FormatNumber(st.Previous) + " " + st.Operator.String()
	}
	display := lipgloss.JoinVertical(lipgloss.Right,
		dimStyle.Render(pending),
		highlightStyle.Render(m.screen.text),
	)
	b.WriteString(boxStyle.Width(calcDisplayWidth).Align(lipgloss.Right).Render(display))
	b.WriteString("\n")

	if m.screen.alert != "" {
		b.WriteString(errorStyle.Render("✗ " + m.screen.alert))
	}
	b.WriteString("\n\n")

	for _, row := range calcKeypad {
		for _, k := range row {
			b.WriteString(infoStyle.Render(" " + k + " "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
