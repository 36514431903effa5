package backend

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/visualleap/gamelauncher/internal/input"
	"github.com/visualleap/gamelauncher/internal/logging/events"
)

// Kind represents the type of event emitted by the backend watcher.
type Kind int

const (
	// KindRefresh means the shortcut folder changed on disk.
	KindRefresh Kind = iota
	// KindPad carries a resolved controller action.
	KindPad
	// KindPadStatus reports controller attach and detach.
	KindPadStatus
)

// Event conveys a folder change or controller activity.
type Event struct {
	Kind      Kind
	Pad       input.Event
	Connected bool
}

const (
	refreshDebounce = 300 * time.Millisecond
	padPollInterval = 20 * time.Millisecond
)

// Watcher runs the two background producers: an fsnotify watch on the
// shortcut folder and the joystick poll loop. Both publish on a single
// events channel the UI drains between frames.
type Watcher struct {
	root        string
	scrollSpeed int

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	reader *input.Reader
}

// NewWatcher starts the producers. An empty device disables the
// controller; folder watch failures are traced and degrade to manual
// refresh only.
func NewWatcher(root, padDevice string, scrollSpeed int, enablePad bool) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		root:        root,
		scrollSpeed: scrollSpeed,
		ctx:         ctx,
		cancel:      cancel,
		events:      make(chan Event, 16),
	}

	w.startFolderWatch()
	if enablePad {
		w.reader = input.NewReader(padDevice)
		w.startPadPoller()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Producers exit after their current iteration;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all producer goroutines have exited and the events
// channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) startFolderWatch() {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		events.Scan.Watch(w.root, err)
		return
	}
	w.addWatchTargets(fsw)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()
		var debounce *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-w.ctx.Done():
				return
			case _, ok := <-fsw.Events:
				if !ok {
					return
				}
				if debounce == nil {
					debounce = time.NewTimer(refreshDebounce)
				} else {
					debounce.Reset(refreshDebounce)
				}
				fire = debounce.C
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				events.Scan.Watch(w.root, err)
			case <-fire:
				fire = nil
				// New subfolders may have appeared; re-arm before
				// announcing the change.
				w.addWatchTargets(fsw)
				if !w.emit(Event{Kind: KindRefresh}) {
					return
				}
			}
		}
	}()
}

// addWatchTargets watches the root and its immediate subdirectories.
// Already-watched paths are deduplicated by fsnotify itself.
func (w *Watcher) addWatchTargets(fsw *fsnotify.Watcher) {
	if err := fsw.Add(w.root); err != nil {
		events.Scan.Watch(w.root, err)
		return
	}
	dirents, err := os.ReadDir(w.root)
	if err != nil {
		return
	}
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		path := filepath.Join(w.root, d.Name())
		if err := fsw.Add(path); err != nil {
			events.Scan.Watch(path, err)
		}
	}
}

func (w *Watcher) startPadPoller() {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.reader.Run(w.ctx)
	}()
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(padPollInterval)
		defer ticker.Stop()
		var prev input.PadState
		var prevConnected bool
		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				cur, connected := w.reader.Snapshot()
				if connected != prevConnected {
					if !w.emit(Event{Kind: KindPadStatus, Connected: connected}) {
						return
					}
					prevConnected = connected
				}
				for _, ev := range input.Resolve(prev, cur, w.scrollSpeed) {
					if !w.emit(Event{Kind: KindPad, Pad: ev}) {
						return
					}
				}
				prev = cur
			}
		}
	}()
}
