// Package register provides the multi-step registration wizard TUI.
//
// The wizard owns the current step id, which is also the frontier: steps up
// to and including it can be revisited with F1..F9 or a mouse click on the
// step header, later steps stay locked until the forms before them are
// completed. Revisiting a step moves the frontier back to it.
package register

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/rileyhilliard/medstock/internal/logger"
	"github.com/rileyhilliard/medstock/internal/steps"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// Options configures a wizard model.
type Options struct {
	// Switcher defaults to theme.Global().
	Switcher *theme.Switcher
	// Logger defaults to logger.Noop.
	Logger logger.Logger
	// NewReference generates the application reference; defaults to a UUID.
	NewReference func() string
}

// Model is the Bubble Tea model for the registration wizard.
type Model struct {
	seq     *steps.Sequence
	current int
	app     *Application
	form    *huh.Form

	skin     *ui.Skin
	switcher *theme.Switcher
	detach   func()
	closer   *sync.Once
	log      logger.Logger
	newRef   func() string

	width     int
	height    int
	submitted bool
	cancelled bool
}

// NewModel starts the wizard on the first step.
func NewModel(opts Options) (Model, error) {
	seq, err := steps.NewSequence(DefaultSteps())
	if err != nil {
		return Model{}, err
	}
	if opts.Switcher == nil {
		opts.Switcher = theme.Global()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.NewReference == nil {
		opts.NewReference = uuid.NewString
	}

	skin := ui.NewSkin(opts.Switcher.Active())
	m := Model{
		seq:      seq,
		current:  seq.First(),
		app:      NewApplication(),
		skin:     skin,
		switcher: opts.Switcher,
		detach:   opts.Switcher.Attach(skin),
		closer:   &sync.Once{},
		log:      opts.Logger,
		newRef:   opts.NewReference,
	}
	m.form = buildForm(m.current, m.app)
	return m, nil
}

// Init starts the first form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if id, ok := functionKeyStep(msg); ok {
			return m, m.jump(id)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if id, ok := m.stepAt(msg.X, msg.Y); ok {
				return m, m.jump(id)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.submitted {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if next := m.checkForm(); next != nil {
		return m, tea.Batch(cmd, next)
	}
	return m, cmd
}

// View renders the wizard.
func (m Model) View() string {
	if m.cancelled {
		return ""
	}
	if m.submitted {
		return m.renderSubmitted()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(m.renderStepper())
	b.WriteString("\n")
	b.WriteString(m.renderSubtitle())
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// checkForm reacts to the active form finishing.
func (m *Model) checkForm() tea.Cmd {
	switch m.form.State {
	case huh.StateCompleted:
		return m.completeStep()
	case huh.StateAborted:
		m.cancelled = true
		return tea.Quit
	}
	return nil
}

// completeStep advances past the active step. Completing the review step
// either submits the application or, when the user chose to edit, returns
// to the first step.
func (m *Model) completeStep() tea.Cmd {
	if m.current == StepAccount {
		if _, err := m.switcher.Select(theme.UserType(m.app.UserType)); err != nil {
			m.log.Warn("unknown account type %q: %v", m.app.UserType, err)
		}
	}

	next, ok := m.seq.Next(m.current)
	if !ok {
		if !m.app.Submit {
			return m.jump(m.seq.First())
		}
		m.app.Reference = m.newRef()
		m.submitted = true
		m.log.Info("application %s submitted", m.app.Reference)
		return tea.Quit
	}

	m.current = next
	return m.resetForm()
}

// jump handles a step selection. Selections of locked or unknown steps are
// ignored.
func (m *Model) jump(target int) tea.Cmd {
	if m.submitted {
		return nil
	}
	next, err := m.seq.RequestTransition(m.current, target)
	if err != nil {
		return nil
	}
	m.current = next
	return m.resetForm()
}

func (m *Model) resetForm() tea.Cmd {
	if m.current == StepReview {
		m.app.Submit = false
	}
	m.form = buildForm(m.current, m.app)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

// functionKeyStep maps F1..F9 to step ids 1..9.
func functionKeyStep(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 2 || s[0] != 'f' || s[1] < '1' || s[1] > '9' {
		return 0, false
	}
	return int(s[1] - '0'), true
}

// Current returns the active step id.
func (m Model) Current() int {
	return m.current
}

// Application returns what the wizard has collected so far.
func (m Model) Application() Application {
	return *m.app
}

// Submitted reports whether the application was submitted.
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user quit before submitting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Close detaches from the theme switcher. It is safe to call more than once.
func (m Model) Close() {
	m.closer.Do(m.detach)
}
