package register

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/steps"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// stepperRow is the view line holding the step header (title, blank, stepper).
const stepperRow = 2

const stepperGap = "   "

// stepLabel is the visible text of one step in the header.
func stepLabel(s steps.StepState) string {
	symbol := ui.SymbolPending
	switch {
	case s.Completed:
		symbol = ui.SymbolSuccess
	case s.Active:
		symbol = ui.SymbolProgress
	}
	return fmt.Sprintf("%s %d %s", symbol, s.ID, s.Title)
}

func (m Model) renderTitle() string {
	st := m.skin.Styles()
	return st.Title.Render("medstock registration") +
		st.Muted.Render(" | "+st.Palette.Name.Label())
}

// renderStepper renders each step from the sequence state.
func (m Model) renderStepper() string {
	st := m.skin.Styles()

	var out string
	for i, s := range m.seq.ComputeState(m.current) {
		if i > 0 {
			out += stepperGap
		}
		style := st.Muted
		switch {
		case s.Completed:
			style = st.Success
		case s.Active:
			style = st.Accent.Bold(true)
		}
		out += style.Render(stepLabel(s))
	}
	return out
}

func (m Model) renderSubtitle() string {
	step, _ := m.seq.Step(m.current)
	return m.skin.Styles().Muted.Render(step.Subtitle)
}

func (m Model) renderFooter() string {
	return m.skin.Styles().Footer.Render(
		fmt.Sprintf("F1-F%d revisit a step | ctrl+c quit", m.current))
}

func (m Model) renderSubmitted() string {
	st := m.skin.Styles()
	lines := []string{
		st.Success.Render(ui.SymbolSuccess + " Application submitted"),
		"",
		st.Label.Render("Reference  ") + st.Value.Render(m.app.Reference),
		st.Label.Render("Account    ") + m.app.Summary(StepAccount),
		st.Label.Render("Business   ") + m.app.Summary(StepBusiness),
		st.Label.Render("Contact    ") + m.app.Summary(StepContact),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// stepAt returns the step under a click on the header, if it is on a step.
func (m Model) stepAt(x, y int) (int, bool) {
	if y != stepperRow {
		return 0, false
	}

	pos := 0
	for i, s := range m.seq.ComputeState(m.current) {
		if i > 0 {
			pos += lipgloss.Width(stepperGap)
		}
		w := lipgloss.Width(stepLabel(s))
		if x >= pos && x < pos+w {
			return s.ID, true
		}
		pos += w
	}
	return 0, false
}
