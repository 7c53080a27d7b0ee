package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"podium/internal/deck"
	"podium/internal/eventbus"
)

// DefaultDebounce is used when a zero debounce is configured
const DefaultDebounce = 250 * time.Millisecond

// DeckWatcher reparses a deck file when it changes on disk and publishes
// the result on the event bus. It watches the parent directory so editors
// that save by rename are still seen.
type DeckWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	bus         eventbus.EventBus
	logger      *zap.Logger
	path        string
	dir         string
	debounceDur time.Duration
	pending     time.Time // zero when nothing is waiting
	stopCh      chan struct{}
	doneCh      chan struct{}
	unsubscribe func()
	running     bool
	reloads     int
}

// New creates a watcher for the deck at path
func New(path string, bus eventbus.EventBus, debounce time.Duration, logger *zap.Logger) (*DeckWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &DeckWatcher{
		watcher:     w,
		bus:         bus,
		logger:      logger.Named("watcher"),
		path:        abs,
		dir:         filepath.Dir(abs),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; the loop runs until ctx is
// done or Stop is called.
func (dw *DeckWatcher) Start(ctx context.Context) error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.running = true
	dw.mu.Unlock()

	if err := dw.watcher.Add(dw.dir); err != nil {
		dw.mu.Lock()
		dw.running = false
		dw.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dw.dir, err)
	}
	dw.logger.Info("watching deck", zap.String("path", dw.path))

	dw.unsubscribe = dw.bus.Subscribe(eventbus.EventReloadRequested, func(eventbus.DomainEvent) {
		dw.schedule(time.Time{})
	})

	go dw.run(ctx)

	dw.bus.Publish(eventbus.WatchStartedEvent{Path: dw.path})
	return nil
}

// Stop stops the watcher and waits for the loop to exit
func (dw *DeckWatcher) Stop() {
	dw.mu.Lock()
	if !dw.running {
		dw.mu.Unlock()
		if err := dw.watcher.Close(); err != nil {
			dw.logger.Warn("error closing watcher", zap.Error(err))
		}
		return
	}
	dw.running = false
	dw.mu.Unlock()

	if dw.unsubscribe != nil {
		dw.unsubscribe()
	}
	close(dw.stopCh)
	<-dw.doneCh

	if err := dw.watcher.Close(); err != nil {
		dw.logger.Warn("error closing watcher", zap.Error(err))
	}
	dw.logger.Info("watcher stopped", zap.Int("reloads", dw.Reloads()))
}

// Reloads returns how many reparses have been attempted
func (dw *DeckWatcher) Reloads() int {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.reloads
}

func (dw *DeckWatcher) run(ctx context.Context) {
	defer close(dw.doneCh)

	ticker := time.NewTicker(dw.debounceDur / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-dw.stopCh:
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleEvent(event)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Error("watch error", zap.Error(err))

		case <-ticker.C:
			dw.processPending()
		}
	}
}

func (dw *DeckWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != dw.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return // chmod, remove: wait for the editor to write the new file
	}
	dw.logger.Debug("deck changed", zap.String("op", event.Op.String()))
	dw.schedule(time.Now())
}

// schedule marks a reparse as pending. A zero time makes it due on the
// next tick.
func (dw *DeckWatcher) schedule(at time.Time) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if at.IsZero() {
		at = time.Now().Add(-dw.debounceDur)
	}
	dw.pending = at
}

func (dw *DeckWatcher) processPending() {
	dw.mu.Lock()
	if dw.pending.IsZero() || time.Since(dw.pending) < dw.debounceDur {
		dw.mu.Unlock()
		return
	}
	dw.pending = time.Time{}
	dw.reloads++
	dw.mu.Unlock()

	d, err := deck.Load(dw.path)
	if err != nil {
		dw.logger.Warn("reload failed", zap.Error(err))
		dw.bus.Publish(eventbus.ErrorEvent{Message: "reload failed", Err: err})
		return
	}
	dw.logger.Info("deck reloaded", zap.Int("slides", d.Len()))
	dw.bus.Publish(eventbus.DeckReloadedEvent{Deck: d})
}
