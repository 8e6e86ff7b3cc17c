package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventChanged indicates the stored collection was rewritten, possibly by
	// another process.
	EventChanged EventType = iota
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// watchDir streams a coalesced Event for every burst of writes to files in dir
// accepted by match. The channel closes when ctx is done.
func watchDir(ctx context.Context, dir string, match func(name string) bool) (<-chan Event, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 8)
	go func() {
		defer close(events)
		defer func() { _ = watcher.Close() }()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer already has a pending change to act on.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if match != nil && !match(filepath.Base(evt.Name)) {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()
	return events, nil
}

// eventThrottle coalesces rapid change notifications into one event per
// burst.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil || t.stopped {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.timer = nil
		if t.stopped {
			return
		}
		send(Event{Type: EventChanged})
	})
}

// Stop cancels any pending flush. No event is sent after Stop returns.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
