package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/seamlist/pageflow/internal/pager"
	"github.com/seamlist/pageflow/internal/reactive"
	"github.com/seamlist/pageflow/internal/session"
)

// Page-size bounds for the +/- keys.
const (
	minPageSize = 1
	maxPageSize = 50
)

// pageLoadedMsg is sent when a page fetch settles. The window identifies
// which request this answer belongs to, so answers for superseded windows
// can be discarded.
type pageLoadedMsg struct {
	window pager.Pagination
	result session.PageResult
	err    error
}

// derivationMsg is sent when the adjacent-pages derivation publishes a new
// result.
type derivationMsg struct {
	result reactive.Result[pager.AdjacentPages]
}

// BrowserModel is the Bubble Tea model for the paged session browser. It is
// the UI driver of the pagination core: keys dispatch actions to the
// controller, the deriver's pair decides which navigation affordances are
// shown, and page fetches follow the controller's current window.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	ctx        context.Context
	store      *session.Store
	sizeCell   *reactive.Cell[int]
	controller *pager.Controller
	deriver    *pager.Deriver
	log        zerolog.Logger

	keys    keyMap
	spinner spinner.Model

	// notify coalesces derivation publishes into wake-ups for the Bubble
	// Tea loop; the fresh result is re-read from the deriver on receipt.
	notify      chan struct{}
	stopWatch   func()
	page        []session.Session
	pageErr     error
	loading     bool
	adjacent    reactive.Result[pager.AdjacentPages]
	width       int
	height      int
}

// NewBrowser assembles the browser over a session store. The controller and
// deriver are constructed here: the model owns the full pagination stack for
// its list instance.
func NewBrowser(ctx context.Context, store *session.Store, source pager.MetadataSource, log zerolog.Logger) BrowserModel {
	sizeCell := pager.NewSizeCell()
	controller := pager.NewController(sizeCell).WithLogger(log)
	deriver := pager.NewDeriver(ctx, controller, sizeCell, source).WithLogger(log)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := BrowserModel{
		ctx:        ctx,
		store:      store,
		sizeCell:   sizeCell,
		controller: controller,
		deriver:    deriver,
		log:        log,
		keys:       defaultKeyMap(),
		spinner:    sp,
		notify:     make(chan struct{}, 1),
		loading:    true,
		adjacent:   deriver.Adjacent(),
	}
	m.stopWatch = deriver.Watch(func(reactive.Result[pager.AdjacentPages]) {
		select {
		case m.notify <- struct{}{}:
		default:
		}
	})
	return m
}

// SetPageSize seeds the page-size cell, for a --page-size flag.
func (m BrowserModel) SetPageSize(n int) {
	if n >= minPageSize && n <= maxPageSize {
		m.sizeCell.Set(n)
	}
}

// Init starts the spinner, the derivation wait, and the first page fetch.
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.awaitDerivation(), m.fetchPage())
}

// Update handles key, derivation, page-load and spinner messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case derivationMsg:
		m.adjacent = msg.result
		return m, m.awaitDerivation()

	case pageLoadedMsg:
		// Answers for a window we have since navigated away from are stale.
		if msg.window != m.controller.Current() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.pageErr = msg.err
			return m, nil
		}
		m.pageErr = nil
		m.page = msg.result.Nodes
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		m.deriver.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if next := m.adjacent.Value.Next; next != nil && !m.adjacent.IsFailed() {
			return m.navigate(pager.Goto{Window: *next})
		}
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		if prev := m.adjacent.Value.Previous; prev != nil && !m.adjacent.IsFailed() {
			return m.navigate(pager.Goto{Window: *prev})
		}
		return m, nil

	case key.Matches(msg, m.keys.First):
		return m.navigate(pager.FirstPage{})

	case key.Matches(msg, m.keys.Last):
		return m.navigate(pager.LastPage{})

	case key.Matches(msg, m.keys.Grow):
		return m.resize(m.sizeCell.Get() + 1)

	case key.Matches(msg, m.keys.Shrink):
		return m.resize(m.sizeCell.Get() - 1)

	case key.Matches(msg, m.keys.Refresh):
		m.deriver.Refresh()
		m.loading = true
		return m, m.fetchPage()
	}

	return m, nil
}

// navigate dispatches an action and refetches the page for the new window.
func (m BrowserModel) navigate(action pager.Action) (tea.Model, tea.Cmd) {
	m.controller.Dispatch(action)
	m.loading = true
	return m, m.fetchPage()
}

func (m BrowserModel) resize(n int) (tea.Model, tea.Cmd) {
	if n < minPageSize || n > maxPageSize {
		return m, nil
	}
	m.sizeCell.Set(n)
	m.loading = true
	return m, m.fetchPage()
}

// fetchPage loads the controller's current window from the store.
func (m BrowserModel) fetchPage() tea.Cmd {
	window := m.controller.Current()
	return func() tea.Msg {
		result, err := m.store.FetchPage(m.ctx, window)
		return pageLoadedMsg{window: window, result: result, err: err}
	}
}

// awaitDerivation blocks until the deriver publishes, then reports the
// freshest result. Re-issued after every derivationMsg.
func (m BrowserModel) awaitDerivation() tea.Cmd {
	return func() tea.Msg {
		<-m.notify
		return derivationMsg{result: m.deriver.Adjacent()}
	}
}

// View renders the session page, navigation affordances and status line.
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Browser sessions"))
	b.WriteString("\n")

	switch {
	case m.pageErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.pageErr)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r retry"))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(rowMetaStyle.Render(" fetching sessions…"))
		b.WriteString("\n")
	case len(m.page) == 0:
		b.WriteString(rowMetaStyle.Render("No sessions."))
		b.WriteString("\n")
	default:
		for _, s := range m.page {
			b.WriteString(m.renderRow(s))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderNav())
	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m BrowserModel) renderRow(s session.Session) string {
	line := fmt.Sprintf("%s  %-28s %s",
		deviceIcon(s.Device.String()),
		s.Label,
		s.LastActive.Format("2006-01-02 15:04"),
	)
	return rowStyle.Render(line) + "  " + rowMetaStyle.Render(s.Cursor())
}

// renderNav shows the previous/next affordances. A nil side renders
// disabled; while the derivation is pending the optimistic pair is shown,
// so affordances do not flicker during a fetch.
func (m BrowserModel) renderNav() string {
	prev := navDisabledStyle.Render("← previous")
	if m.adjacent.Value.Previous != nil && !m.adjacent.IsFailed() {
		prev = navEnabledStyle.Render("← previous")
	}
	next := navDisabledStyle.Render("next →")
	if m.adjacent.Value.Next != nil && !m.adjacent.IsFailed() {
		next = navEnabledStyle.Render("next →")
	}

	line := "\n" + prev + "   " + next
	if m.adjacent.IsPending() {
		line += "  " + m.spinner.View()
	}
	if m.adjacent.IsFailed() {
		line += "  " + errorStyle.Render(fmt.Sprintf("navigation unavailable: %v", m.adjacent.Err))
	}
	return line + "\n"
}

func (m BrowserModel) renderStatus() string {
	return statusStyle.Render(fmt.Sprintf(
		"window %s · page size %d · %d sessions total",
		m.controller.Current(), m.sizeCell.Get(), m.store.Len(),
	)) + "\n"
}

func (m BrowserModel) renderHelp() string {
	entries := []key.Binding{
		m.keys.Previous, m.keys.Next, m.keys.First, m.keys.Last,
		m.keys.Grow, m.keys.Shrink, m.keys.Refresh, m.keys.Quit,
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Help().Key+" "+e.Help().Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}
