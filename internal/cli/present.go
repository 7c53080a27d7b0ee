package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"podium/internal/config"
	"podium/internal/deck"
	"podium/internal/eventbus"
	"podium/internal/logging"
	"podium/internal/ui"
	"podium/internal/watcher"
)

// runPresent loads the deck and runs the presenter until the user quits
func runPresent(ctx context.Context, path string, opts *presentOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.New(opts.logFile, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bus := eventbus.New(logger)
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded", zap.String("path", event.Path), zap.String("theme", event.Theme))
		}
	})
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SlideChangedEvent); ok {
			logger.Debug("slide changed",
				zap.Int("index", event.Index),
				zap.Int("total", event.Total),
				zap.String("title", event.Title))
		}
	})

	configSvc := configServiceFor(opts.configPath, path, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configSvc.Path(), err)
	}

	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	bus.Publish(eventbus.DeckLoadedEvent{Deck: d})
	logger.Info("deck loaded", zap.String("path", d.Path), zap.Int("slides", d.Len()))

	theme := firstNonEmpty(opts.theme, d.Meta.Theme, cfg.Theme)
	style := resolveTheme(theme, term.IsTerminal(int(os.Stdout.Fd())), lipgloss.HasDarkBackground)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Events reach the program through a buffered channel so nothing
	// published before the program exists is lost
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventDeckReloaded,
		eventbus.EventError,
		eventbus.EventWatchStarted,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	watching := false
	if cfg.Watch.Enabled && !opts.noWatch {
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		if dw, err := watcher.New(d.Path, bus, debounce, logger); err != nil {
			logger.Warn("live reload disabled", zap.Error(err))
		} else if err := dw.Start(ctx); err != nil {
			logger.Warn("live reload disabled", zap.Error(err))
			dw.Stop()
		} else {
			watching = true
			defer dw.Stop()
		}
	}

	model, err := ui.NewModel(ui.Options{
		Config:   cfg,
		Deck:     d,
		Start:    opts.start - 1,
		Style:    style,
		Bus:      bus,
		Logger:   logger,
		Watching: watching,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	logger.Info("starting presentation", zap.String("style", style))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("presentation failed: %w", err)
	}
	return nil
}

// configServiceFor picks the config file: the --config flag, then
// .podium.toml next to the deck, then the user config file
func configServiceFor(flagPath, deckPath string, bus eventbus.EventBus) config.ConfigService {
	if flagPath != "" {
		return config.NewConfigServiceAt(flagPath, bus)
	}
	local := filepath.Join(filepath.Dir(deckPath), config.FileName)
	if _, err := os.Stat(local); err == nil {
		return config.NewConfigServiceAt(local, bus)
	}
	return config.NewConfigServiceWithBus(bus)
}

// resolveTheme turns "auto" into a concrete glamour style. Output that is
// not a terminal gets the plain notty style.
func resolveTheme(theme string, isTTY bool, hasDarkBackground func() bool) string {
	theme = strings.TrimSpace(theme)
	if theme != "" && !strings.EqualFold(theme, "auto") {
		return theme
	}
	if !isTTY {
		return "notty"
	}
	if hasDarkBackground() {
		return "dark"
	}
	return "light"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
