package dashboard

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/animate"
	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/rileyhilliard/medstock/internal/inventory"
	"github.com/rileyhilliard/medstock/internal/logger"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: single column, no table
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns
	LayoutCompact
	// LayoutStandard is for terminals 120-160 columns
	LayoutStandard
	// LayoutWide is for terminals 160+ columns: every card on one row
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
	BreakpointWide     = 160
)

// HeightMinimal is the smallest height that still shows the footer.
const HeightMinimal = 24

// Card keys on the board.
const (
	CardProducts = "products"
	CardLowStock = "low_stock"
	CardExpiring = "expiring"
	CardHealth   = "health"
	CardRevenue  = "revenue"
)

type cardDef struct {
	key    string
	label  string
	format animate.Format
}

var cardDefs = []cardDef{
	{key: CardProducts, label: "Total products"},
	{key: CardLowStock, label: "Low stock"},
	{key: CardExpiring, label: "Expiring soon"},
	{key: CardHealth, label: "Stock health", format: animate.Format{Decimals: 1, Suffix: "%"}},
	{key: CardRevenue, label: "Monthly revenue", format: animate.Format{Decimals: 2, Prefix: "$"}},
}

// Options configures a dashboard model.
type Options struct {
	Scheduler animate.Scheduler
	Animation animate.Config
	Seed      *inventory.Seed
	// SeedValue is the starting point for reseeding; each r press uses the next value.
	SeedValue uint64
	// Switcher defaults to theme.Global().
	Switcher *theme.Switcher
	// Logger defaults to logger.Noop so output never tears the screen.
	Logger logger.Logger
}

// Model is the Bubble Tea model for the inventory dashboard.
type Model struct {
	board    *animate.Board
	base     *inventory.Seed
	seed     *inventory.Seed
	seedVal  uint64
	reseeds  uint64
	history  *History
	skin     *ui.Skin
	switcher *theme.Switcher
	detach   func()
	closer   *sync.Once
	log      logger.Logger

	keys  KeyMap
	help  help.Model
	table table.Model

	categories []string
	category   int // 0 is all categories, i > 0 is categories[i-1]

	width    int
	height   int
	showHelp bool
	quitting bool
}

// frameMsg signals that at least one card emitted a frame.
type frameMsg struct{}

// NewModel builds the board and attaches the model to the theme switcher.
// Call Close when the program exits.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == nil {
		return Model{}, errors.New(errors.ErrData,
			"No inventory data to show",
			"Check data.seed_file in .medstock.yaml")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = animate.TickerScheduler{}
	}
	if opts.Switcher == nil {
		opts.Switcher = theme.Global()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	board, err := animate.NewBoard(opts.Scheduler, opts.Animation)
	if err != nil {
		return Model{}, err
	}
	for _, c := range cardDefs {
		if err := board.Add(c.key, c.format); err != nil {
			board.Close()
			return Model{}, err
		}
	}

	skin := ui.NewSkin(opts.Switcher.Active())
	m := Model{
		board:      board,
		base:       opts.Seed,
		seed:       opts.Seed,
		seedVal:    opts.SeedValue,
		history:    NewHistory(DefaultHistorySize),
		skin:       skin,
		switcher:   opts.Switcher,
		detach:     opts.Switcher.Attach(skin),
		closer:     &sync.Once{},
		log:        opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		categories: opts.Seed.Categories(),
	}
	m.history.Push(opts.Seed.Summary())
	m.refreshTable()
	return m, nil
}

// Init starts every card counting toward its target.
func (m Model) Init() tea.Cmd {
	m.retarget()
	return waitForFrames(m.board)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTable()

	case frameMsg:
		return m, waitForFrames(m.board)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Close stops every card animation and detaches from the theme switcher.
// It is safe to call more than once.
func (m Model) Close() {
	m.closer.Do(func() {
		m.board.Close()
		m.detach()
	})
}

// waitForFrames blocks until a card emits or the board is closed.
func waitForFrames(b *animate.Board) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.Updates():
			return frameMsg{}
		case <-b.Done():
			return nil
		}
	}
}

// targets maps card keys to the values derived from the current seed.
func (m Model) targets() map[string]float64 {
	sum := m.seed.Summary()
	return map[string]float64{
		CardProducts: float64(sum.Products),
		CardLowStock: float64(sum.LowStock),
		CardExpiring: float64(sum.ExpiringSoon),
		CardHealth:   sum.StockHealth,
		CardRevenue:  sum.Revenue,
	}
}

// retarget pushes the current targets to the board. Unchanged targets keep
// their settled value; changed ones count up again from zero.
func (m Model) retarget() {
	targets := m.targets()
	for _, c := range cardDefs {
		if err := m.board.SetTarget(c.key, targets[c.key]); err != nil {
			m.log.Warn("card %s: %v", c.key, err)
		}
	}
}

// reseed moves stock levels to the next deterministic variation.
func (m *Model) reseed() {
	m.reseeds++
	next := m.seedVal + m.reseeds
	m.seed = m.base.Reseed(next)
	m.history.Push(m.seed.Summary())
	m.log.Debug("reseeded stock levels with seed %d", next)
	m.retarget()
	m.refreshTable()
}

// Category returns the active category filter; empty means all.
func (m Model) Category() string {
	if m.category == 0 {
		return ""
	}
	return m.categories[m.category-1]
}

// Seed returns the data the cards currently target.
func (m Model) Seed() *inventory.Seed {
	return m.seed
}

// History returns the per-reseed card history.
func (m Model) History() *History {
	return m.history
}

// Board exposes the card animations.
func (m Model) Board() *animate.Board {
	return m.board
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointWide:
		return LayoutWide
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return m.height == 0 || m.height >= HeightMinimal
}

// refreshTable rebuilds the inventory table for the active category and styles.
func (m *Model) refreshTable() {
	st := m.skin.Styles()
	products := m.seed.ByPressure(m.Category())

	rows := make([]table.Row, len(products))
	for i, p := range products {
		status := ui.SymbolComplete
		if p.LowStock() || p.ExpiringSoon() {
			status = ui.SymbolWarning
		}
		rows[i] = table.Row{
			status,
			p.SKU,
			p.Name,
			p.Category,
			fmt.Sprintf("%d", p.Stock),
			fmt.Sprintf("%d", p.ReorderLevel),
			fmt.Sprintf("%dd", p.ExpiresInDays),
		}
	}

	columns := []ui.TableColumn{
		{Title: " ", Width: 1},
		{Title: "SKU", Width: 8},
		{Title: "Product", Width: 22},
		{Title: "Category", Width: 12},
		{Title: "Stock", Width: 6},
		{Title: "Reorder", Width: 7},
		{Title: "Expires", Width: 7},
	}

	m.table = ui.NewTable(st, columns, rows, m.tableHeight(len(rows)))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(st.Palette.Primary)
	m.help.Styles.ShortDesc = st.Muted
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(st.Palette.Primary).Bold(true)
	m.help.Styles.FullDesc = st.Label
}

// tableHeight leaves room for the header, cards and footer.
func (m Model) tableHeight(rows int) int {
	if m.height == 0 {
		return rows
	}
	h := m.height - 18
	if h < 3 {
		h = 3
	}
	if h > rows {
		h = rows
	}
	return h
}
