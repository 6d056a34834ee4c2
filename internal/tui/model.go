package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hupe1980/pathways/internal/facet"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/pathway"
)

// LoadFunc runs one load. Each call must start from a fresh state.
type LoadFunc func(ctx context.Context) *loader.Result

// loadedMsg delivers the outcome of the load with sequence number seq.
type loadedMsg struct {
	seq int
	res *loader.Result
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx      context.Context
	load     LoadFunc
	taxonomy pathway.Taxonomy
	styles   Styles
	keys     KeyMap

	status  loader.Status
	result  *loader.Result
	records []pathway.Pathway
	sel     facet.Selection
	match   facet.Result
	seq     int

	group    int
	chip     int
	cursor   int
	expanded map[int]bool

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
}

// Option configures a Model.
type Option func(*Model)

// WithContext sets the context passed to every load.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithTaxonomy sets the facet options shown as chips.
func WithTaxonomy(t pathway.Taxonomy) Option {
	return func(m *Model) { m.taxonomy = t }
}

// WithSelection sets the initial selection.
func WithSelection(sel facet.Selection) Option {
	return func(m *Model) { m.sel = sel }
}

// WithNoColor disables colour output.
func WithNoColor(noColor bool) Option {
	return func(m *Model) { m.styles = NewStyles(noColor) }
}

// New creates a browser model. The first load starts with Init.
func New(load LoadFunc, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      context.Background(),
		load:     load,
		taxonomy: pathway.DefaultTaxonomy(),
		styles:   NewStyles(false),
		keys:     DefaultKeyMap(),
		status:   loader.StatusLoading,
		expanded: make(map[int]bool),
		spinner:  sp,
		viewport: viewport.New(80, 20),
		help:     help.New(),
		width:    80,
		height:   24,
	}

	for _, opt := range opts {
		opt(&m)
	}

	sp.Style = m.styles.SpinnerText
	m.spinner = sp

	return m
}

// Init starts the spinner and the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	seq, load, ctx := m.seq, m.load, m.ctx

	return func() tea.Msg {
		return loadedMsg{seq: seq, res: load(ctx)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncViewport()

		return m, nil

	case loadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}

		m.applyResult(msg.res)

		return m, nil

	case spinner.TickMsg:
		if m.status != loader.StatusLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.status == loader.StatusLoading {
		return m, nil
	}

	if key.Matches(msg, m.keys.Refresh) {
		return m.refresh()
	}

	if m.status != loader.StatusOK {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextGroup):
		m.group = (m.group + 1) % len(pathway.Facets)
		m.chip = 0
	case key.Matches(msg, m.keys.PrevGroup):
		m.group = (m.group + len(pathway.Facets) - 1) % len(pathway.Facets)
		m.chip = 0
	case key.Matches(msg, m.keys.Left):
		if m.chip > 0 {
			m.chip--
		}
	case key.Matches(msg, m.keys.Right):
		if m.chip < len(m.chips())-1 {
			m.chip++
		}
	case key.Matches(msg, m.keys.Toggle):
		if chips := m.chips(); m.chip < len(chips) {
			m.setSelection(m.sel.Toggle(m.CurrentFacet(), chips[m.chip]))
		}
	case key.Matches(msg, m.keys.ClearAll):
		m.setSelection(m.sel.ClearAll())
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Expand):
		if len(m.records) > 0 {
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	m.syncViewport()

	return m, nil
}

// refresh starts a new load. The selection survives; results of an
// earlier load still in flight are discarded.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.seq++
	m.status = loader.StatusLoading

	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) applyResult(res *loader.Result) {
	m.result = res
	m.status = res.Status
	m.records = res.Pathways
	m.expanded = make(map[int]bool)

	if m.cursor >= len(m.records) {
		m.cursor = max(len(m.records)-1, 0)
	}

	m.match = facet.Match(m.records, m.sel)
	m.syncViewport()
}

func (m *Model) setSelection(sel facet.Selection) {
	m.sel = sel
	m.match = facet.Match(m.records, m.sel)
}

func (m Model) chips() []string {
	return m.taxonomy.Values(m.CurrentFacet())
}

// CurrentFacet returns the facet group under the chip cursor.
func (m Model) CurrentFacet() pathway.Facet {
	return pathway.Facets[m.group]
}

// Status returns the load state.
func (m Model) Status() loader.Status {
	return m.status
}

// Selection returns the current selection.
func (m Model) Selection() facet.Selection {
	return m.sel
}

// Match returns the result of the last filter evaluation.
func (m Model) Match() facet.Result {
	return m.match
}

// Records returns the loaded records.
func (m Model) Records() []pathway.Pathway {
	return m.records
}

// Cursor returns the index of the highlighted record.
func (m Model) Cursor() int {
	return m.cursor
}

// Expanded reports whether the record at index i shows its details.
func (m Model) Expanded(i int) bool {
	return m.expanded[i]
}
