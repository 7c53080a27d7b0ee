package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"podium/internal/config"
	"podium/internal/deck"
	"podium/internal/domain"
	"podium/internal/eventbus"
	"podium/internal/navigation"
	"podium/internal/ui/animation"
	"podium/internal/ui/handlers"
	"podium/internal/ui/input"
	inputtypes "podium/internal/ui/input/types"
	"podium/internal/ui/search"
	"podium/internal/ui/state"
	"podium/internal/ui/views"
)

// statusTimeout is how long a status message stays up
const statusTimeout = 3 * time.Second

// Options configures a Model
type Options struct {
	Config   *config.Config
	Deck     *domain.Deck
	Start    int    // 0-based slide to open on; out of range opens the first
	Style    string // resolved glamour style
	Bus      eventbus.EventBus
	Logger   *zap.Logger
	Watching bool // a watcher serves reload requests from the bus
}

// Model is the presenter. It owns the navigator and registers itself as
// the navigator's collaborator.
type Model struct {
	config   *config.Config
	bus      eventbus.EventBus
	logger   *zap.Logger
	state    *state.AppState
	watching bool

	nav          *navigation.Service
	inputHandler *input.Handler
	search       *search.Service
	animations   *animation.Table
	playback     *animation.Playback

	renderer     *views.Renderer
	markdown     *views.MarkdownRenderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	viewport     viewport.Model
	help         help.Model

	crossfade time.Duration
	pager     func(string) tea.Cmd

	// Commands queued by collaborators while the navigator runs. They are
	// collected into the Update result.
	pending []tea.Cmd
}

// NewModel creates the presenter for a deck
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		config:       cfg,
		bus:          opts.Bus,
		logger:       logger,
		state:        state.NewAppState(opts.Deck),
		watching:     opts.Watching,
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
		search:       search.NewService(logger),
		renderer:     views.NewRenderer(),
		markdown:     views.NewMarkdownRenderer(opts.Style, cfg.WordWrap, logger),
		helpRenderer: NewHelpRenderer(),
		help:         help.New(),
		crossfade:    time.Duration(cfg.UISettings.CrossfadeMS) * time.Millisecond,
		pager:        showInPager,
	}
	m.eventHandler = handlers.NewEventHandler(m.state, logger, m.applyDeck)
	m.search.SetNavigateFunction(func(index int) { m.nav.GoTo(index) })

	if err := m.installDeck(opts.Deck, opts.Start); err != nil {
		return nil, err
	}

	logger.Debug("markdown renderer ready",
		zap.String("style", m.markdown.Style()),
		zap.Int("word_wrap", cfg.WordWrap))

	w, h := m.bodySize()
	m.viewport = viewport.New(w, h)
	m.state.MenuCursor = m.nav.CurrentIndex()
	m.enterSlide(m.nav.CurrentIndex())
	m.resetScroll(m.nav.CurrentIndex())

	return m, nil
}

// installDeck builds the navigator, the animation table and the search
// matcher for d, opening on start
func (m *Model) installDeck(d *domain.Deck, start int) error {
	nav, err := navigation.NewService(d.Len(),
		navigation.WithStart(start),
		navigation.WithLogger(m.logger),
		navigation.WithObserver(navigation.ObserverFuncs{
			OnChanged: m.slideChanged,
			OnEntered: m.enterSlide,
			OnScroll:  m.resetScroll,
		}))
	if err != nil {
		return fmt.Errorf("failed to create navigator: %w", err)
	}

	overrides, errs := m.config.AnimationTable()
	table, tableErrs := animation.BuildTable(d, overrides)
	for _, err := range append(errs, tableErrs...) {
		m.logger.Warn("ignoring animation", zap.Error(err))
	}

	m.nav = nav
	m.animations = table
	m.state.SetDeck(d)
	m.search.SetMatcherFunction(search.DeckMatcher(d))
	m.search.Refresh()
	m.markdown.Reset()
	return nil
}

// applyDeck swaps in a reloaded deck, staying on the same slide when it
// still exists and on the new last slide when the deck shrank past it.
// A reload is not a transition, so nothing is notified.
func (m *Model) applyDeck(d *domain.Deck) {
	current := m.nav.CurrentIndex()
	if current >= d.Len() {
		current = d.Len() - 1
	}
	if err := m.installDeck(d, current); err != nil {
		m.state.SetStatus("Error: "+err.Error(), true)
		return
	}
	m.playback = nil
	m.state.Phase = state.PhaseIdle
	m.state.Outgoing = ""
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.slideContent(m.nav.CurrentIndex()))
	m.viewport.SetYOffset(offset)
}

// Navigator exposes the slide navigator
func (m *Model) Navigator() *navigation.Service {
	return m.nav
}

// slideChanged keeps the outgoing slide on screen, greyed out, until the
// cross-fade tick for this transition fires
func (m *Model) slideChanged(index int) {
	seq := m.state.BeginTransition(m.viewport.View())
	m.playback = nil
	m.state.MenuCursor = index

	if m.crossfade > 0 {
		m.queue(tea.Tick(m.crossfade, func(time.Time) tea.Msg { return fadeMsg{seq: seq} }))
	} else {
		m.state.EndFade(seq)
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.SlideChangedEvent{
			Index: index,
			Total: m.nav.TotalSlides(),
			Title: m.state.Deck.Slides[index].Label(),
		})
	}
}

// enterSlide starts the entry effect of the slide
func (m *Model) enterSlide(index int) {
	effect := m.animations.Lookup(index)
	content := m.markdown.Render(m.state.Deck.Slides[index], m.contentWidth())
	m.playback = animation.Start(effect, index, m.state.Seq, animation.CountBlocks(content))

	if m.state.Phase == state.PhaseAnimating || m.state.Phase == state.PhaseIdle {
		m.queue(m.nextFrame())
	}
}

// resetScroll shows the new slide from its top
func (m *Model) resetScroll(index int) {
	m.viewport.SetContent(m.slideContent(index))
	m.viewport.GotoTop()
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// nextFrame schedules the next animation frame, or settles the
// transition when the effect has finished
func (m *Model) nextFrame() tea.Cmd {
	if m.playback.Done() {
		m.state.Phase = state.PhaseIdle
		return nil
	}
	m.state.Phase = state.PhaseAnimating
	seq := m.playback.Seq
	return tea.Tick(m.playback.Effect.Interval(), func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

// slideContent is the rendered slide as the current animation frame shows it
func (m *Model) slideContent(index int) string {
	content := m.markdown.Render(m.state.Deck.Slides[index], m.contentWidth())
	if m.playback != nil && m.playback.Index == index {
		content = m.playback.Apply(content)
	}
	return content
}

func (m *Model) menuVisible() bool {
	return m.state.MenuOpen || m.config.UISettings.ShowMenu
}

func (m *Model) bodySize() (int, int) {
	return views.BodySize(m.state.Width, m.state.Height, m.menuVisible(),
		m.config.UISettings.ShowProgress, m.config.UISettings.ShowControls)
}

func (m *Model) contentWidth() int {
	w, _ := m.bodySize()
	return w
}

// resize fits the viewport to the body area and rewraps the slide
func (m *Model) resize() {
	w, h := m.bodySize()
	if w == m.viewport.Width && h == m.viewport.Height {
		return
	}
	m.viewport.Width = w
	m.viewport.Height = h
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.slideContent(m.nav.CurrentIndex()))
	m.viewport.SetYOffset(offset)
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError)
	return clearStatusAfter()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.drain()...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state, Navigator: m.nav}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Dispatch(a.Command)

	case inputtypes.ScrollAction:
		m.viewport.SetYOffset(m.viewport.YOffset + a.Lines)

	case inputtypes.ChangeModeAction:
		wasOpen := m.state.MenuOpen
		m.state.MenuOpen = a.Mode == inputtypes.ModeMenu
		if wasOpen != m.state.MenuOpen {
			m.resize()
		}
		if a.Mode == inputtypes.ModeSearch || a.Mode == inputtypes.ModeGoTo {
			m.state.ClearStatus()
		}

	case inputtypes.MenuMoveAction:
		m.state.MoveMenuCursor(a.Delta)

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeGoTo:
			return m.goToNumber(a.Text)
		case inputtypes.ModeSearch:
			return m.startSearch(a.Text)
		}

	case inputtypes.SearchNavigateAction:
		if a.Direction == "prev" {
			m.search.NavigatePrevious()
		} else {
			m.search.NavigateNext()
		}
		m.state.SearchIndex = m.search.GetCurrentMatchPosition()
		m.logger.Debug("search match",
			zap.String("query", m.search.GetQuery()),
			zap.Int("slide", m.search.GetCurrentMatchIndex()))

	case inputtypes.ShowHelpAction:
		return m.pager(m.helpRenderer.RenderHelp(m.inputHandler.Keys()))

	case inputtypes.ShowNotesAction:
		return m.pager(m.helpRenderer.RenderNotes(m.state.Deck, m.nav.CurrentIndex()))

	case inputtypes.ReloadAction:
		return m.reload()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// goToNumber jumps to a 1-based slide number typed at the prompt
func (m *Model) goToNumber(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Not a slide number: %q", text), true)
	}
	if !m.nav.GoTo(n - 1) {
		return m.setStatus(fmt.Sprintf("No slide %d (deck has %d)", n, m.nav.TotalSlides()), true)
	}
	return nil
}

func (m *Model) startSearch(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	m.state.SearchQuery = query
	if query == "" {
		m.search.ClearSearch()
		m.state.SearchIndex = -1
		return nil
	}
	found := m.search.StartSearch(query, m.nav.CurrentIndex())
	m.state.SearchIndex = m.search.GetCurrentMatchPosition()
	if !found {
		return m.setStatus(fmt.Sprintf("No match for %q", query), true)
	}
	return nil
}

// reload asks the watcher to reparse the deck, or reparses it directly
// when nothing is watching
func (m *Model) reload() tea.Cmd {
	if m.watching && m.bus != nil {
		m.bus.Publish(eventbus.ReloadRequestedEvent{})
		return nil
	}
	path := m.state.Deck.Path
	if path == "" {
		return m.setStatus("Deck was not loaded from a file", true)
	}
	return func() tea.Msg {
		d, err := deck.Load(path)
		if err != nil {
			return EventMsg{Event: eventbus.ErrorEvent{Message: "reload failed", Err: err}}
		}
		return EventMsg{Event: eventbus.DeckReloadedEvent{Deck: d}}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		if m.eventHandler.HandleEvent(msg.Event) {
			return clearStatusAfter()
		}

	case fadeMsg:
		if !m.state.EndFade(msg.seq) {
			return nil
		}
		return m.nextFrame()

	case frameMsg:
		if m.playback == nil || msg.seq != m.playback.Seq || msg.seq != m.state.Seq {
			return nil
		}
		m.playback.Advance()
		offset := m.viewport.YOffset
		m.viewport.SetContent(m.slideContent(m.nav.CurrentIndex()))
		m.viewport.SetYOffset(offset)
		return m.nextFrame()

	case clearStatusMsg:
		m.state.ClearStatus()

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			return m.setStatus("Pager failed: "+msg.err.Error(), true)
		}
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	index := m.nav.CurrentIndex()
	body := m.viewport.View()
	if m.state.Phase == state.PhaseFading {
		body = m.renderer.Desaturate(m.state.Outgoing)
	}

	vs := views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		DeckTitle:     m.deckTitle(),
		SlideTitle:    m.state.Deck.Slides[index].Title,
		Body:          body,
		Controls:      m.nav.Controls(),
		ShowProgress:  m.config.UISettings.ShowProgress,
		ShowControls:  m.config.UISettings.ShowControls,
		SearchQuery:   m.search.GetQuery(),
		MatchPos:      m.state.SearchIndex,
		MatchCount:    m.search.GetMatchCount(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	}

	if m.menuVisible() {
		cursor := -1
		if m.inputHandler.CurrentMode() == inputtypes.ModeMenu {
			cursor = m.state.MenuCursor
		}
		vs.Menu = &views.MenuState{
			Titles:  m.state.Deck.Titles(),
			Current: index,
			Cursor:  cursor,
			IsMatch: m.search.IsMatch,
		}
	}

	if prompt := m.inputHandler.Prompt(); prompt != "" {
		vs.Prompt = prompt
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	}

	return m.renderer.Render(vs)
}

func (m *Model) deckTitle() string {
	if m.state.Deck.Meta.Title != "" {
		return m.state.Deck.Meta.Title
	}
	return "podium"
}
