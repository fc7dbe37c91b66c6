package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/subdeck/subdeck/internal/list"
	"github.com/subdeck/subdeck/internal/prefs"
	"github.com/subdeck/subdeck/internal/subtrack"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *list.Controller
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      *list.Controller
	debounce  *list.Debouncer
	prefsPath string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snap list.Snapshot

	// List state
	selected int

	// Search state
	searching   bool
	searchInput textinput.Model

	// Status line
	status         string
	sessionExpired bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 80

	return Model{
		ctx:         ctx,
		ctrl:        opts.Controller,
		debounce:    list.NewDebouncer(0),
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		searchInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		loadCmd(m.ctx, m.ctrl, true),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case debounceMsg:
		text, ok := m.debounce.Fire(msg.gen)
		if !ok {
			// A newer keystroke superseded this timer.
			return m, nil
		}
		m.ctrl.SetSearch(text)
		return m, loadCmd(m.ctx, m.ctrl, true)

	case deletedMsg:
		return m.handleDeleted(msg)

	case undoTickMsg:
		if _, active := m.ctrl.TickUndo(msg.gen); active {
			m.refresh()
			return m, undoTickCmd(msg.gen)
		}
		m.refresh()
		return m, nil

	case undoneMsg:
		if msg.err != nil {
			m.status = "undo failed: " + msg.err.Error()
		} else {
			m.status = "subscription restored"
		}
		m.refresh()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.sessionExpired {
		return m.renderSessionExpired()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// refresh pulls the latest controller snapshot and clamps the selection.
func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	if m.selected >= len(m.snap.Items) {
		m.selected = len(m.snap.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && errors.Is(msg.err, subtrack.ErrSessionExpired) {
		m.sessionExpired = true
		return m, nil
	}
	m.refresh()
	if msg.err != nil {
		m.status = msg.err.Error()
	} else if m.snap.Offline {
		m.status = "offline: showing cached subscriptions"
	} else {
		m.status = ""
	}
	return m, nil
}

func (m Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, subtrack.ErrSessionExpired) {
			m.sessionExpired = true
			return m, nil
		}
		m.status = "delete failed: " + msg.err.Error()
		return m, nil
	}
	m.refresh()
	m.status = ""

	// An already-gone record asks for a reconciling reload instead of an
	// undo window.
	if m.snap.NeedsReload {
		return m, loadCmd(m.ctx, m.ctrl, true)
	}
	if m.snap.Pending != nil {
		return m, undoTickCmd(m.snap.Pending.Gen)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sessionExpired {
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.ctrl.Query().Search)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.selected < len(m.snap.Items)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "g", "home":
		m.selected = 0
		return m, nil

	case "G", "end":
		if n := len(m.snap.Items); n > 0 {
			m.selected = n - 1
		}
		return m, nil

	case "f":
		m.ctrl.SetStatus(nextStatusFilter(m.ctrl.Query().Status))
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "c":
		m.ctrl.SetBillingCycle(nextCycleFilter(m.ctrl.Query().BillingCycle))
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "s":
		q := m.ctrl.Query()
		m.ctrl.SetSort(nextSortField(q.SortBy), q.Order)
		m.savePrefs()
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "S":
		q := m.ctrl.Query()
		dir := list.Ascending
		if q.Order == list.Ascending {
			dir = list.Descending
		}
		m.ctrl.SetSort(q.SortBy, dir)
		m.savePrefs()
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "r":
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "L", "pgdown":
		if len(m.snap.Items) < m.snap.Total {
			return m, loadCmd(m.ctx, m.ctrl, false)
		}
		return m, nil

	case "d":
		if m.selected < len(m.snap.Items) {
			return m, deleteCmd(m.ctx, m.ctrl, m.snap.Items[m.selected])
		}
		return m, nil

	case "u":
		if m.snap.Pending != nil {
			return m, undoCmd(m.ctx, m.ctrl)
		}
		return m, nil

	case "x":
		m.ctrl.DismissUndo()
		m.refresh()
		return m, nil
	}

	return m, nil
}

// handleSearchKey drives the search input. Every edit arms the debouncer;
// only the quietest keystroke's timer survives to trigger a fetch.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.debounce.Cancel()
		return m, nil

	case "enter":
		// Apply immediately, skipping the pending quiet period.
		m.searching = false
		m.searchInput.Blur()
		m.debounce.Cancel()
		m.ctrl.SetSearch(m.searchInput.Value())
		return m, loadCmd(m.ctx, m.ctrl, true)

	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != before {
		gen := m.debounce.Arm(value)
		return m, tea.Batch(cmd, debounceCmd(m.debounce.Interval(), gen))
	}
	return m, cmd
}

func (m Model) savePrefs() {
	q := m.ctrl.Query()
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		SortBy:    string(q.SortBy),
		SortOrder: string(q.Order),
	})
}

// nextStatusFilter cycles active → cancelled → all.
func nextStatusFilter(cur list.StatusFilter) list.StatusFilter {
	switch cur {
	case list.FilterActive:
		return list.FilterCancelled
	case list.FilterCancelled:
		return list.FilterAll
	default:
		return list.FilterActive
	}
}

// nextSortField cycles through the server-supported sort columns.
func nextSortField(cur list.SortField) list.SortField {
	switch cur {
	case list.SortNextBilling:
		return list.SortName
	case list.SortName:
		return list.SortCost
	case list.SortCost:
		return list.SortCreatedAt
	default:
		return list.SortNextBilling
	}
}

// nextCycleFilter cycles none → weekly → monthly → quarterly → yearly → none.
func nextCycleFilter(cur subtrack.BillingCycle) subtrack.BillingCycle {
	switch cur {
	case "":
		return subtrack.CycleWeekly
	case subtrack.CycleWeekly:
		return subtrack.CycleMonthly
	case subtrack.CycleMonthly:
		return subtrack.CycleQuarterly
	case subtrack.CycleQuarterly:
		return subtrack.CycleYearly
	default:
		return ""
	}
}

// Messages

type loadedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type undoneMsg struct {
	err error
}

type debounceMsg struct {
	gen uint64
}

type undoTickMsg struct {
	gen uint64
}

// Commands

func loadCmd(ctx context.Context, ctrl *list.Controller, reset bool) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Load(ctx, reset)}
	}
}

func deleteCmd(ctx context.Context, ctrl *list.Controller, sub subtrack.Subscription) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{err: ctrl.Delete(ctx, sub)}
	}
}

func undoCmd(ctx context.Context, ctrl *list.Controller) tea.Cmd {
	return func() tea.Msg {
		return undoneMsg{err: ctrl.Undo(ctx)}
	}
}

func debounceCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

func undoTickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return undoTickMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
