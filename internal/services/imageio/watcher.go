package imageio

import (
	"log/slog"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/riordanpawley/asciiart/internal/domain"
)

// ChangedMsg is sent when the watched image changes on disk
type ChangedMsg struct {
	Path string
}

// Watcher reports writes to a single image file.
// The parent directory is watched so editors that replace files are caught.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	path    string
	events  chan string
	logger  *slog.Logger
}

// NewWatcher starts an fsnotify watcher
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.ImageError{Op: "watch", Err: err}
	}

	w := &Watcher{
		watcher: fw,
		events:  make(chan string, 8),
		logger:  logger,
	}
	go w.loop()
	return w, nil
}

// Watch switches the watched file to path
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &domain.ImageError{Op: "watch", Path: path, Err: err}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path != "" {
		if err := w.watcher.Remove(filepath.Dir(w.path)); err != nil {
			w.logger.Warn("failed to stop watching directory", "path", w.path, "error", err)
		}
		w.path = ""
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return &domain.ImageError{Op: "watch", Path: path, Err: err}
	}
	w.path = abs
	w.logger.Debug("watching image", "path", abs)
	return nil
}

// Wait returns a command that blocks until the watched file changes
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.events
		if !ok {
			return nil
		}
		return ChangedMsg{Path: path}
	}
}

// Path returns the file currently watched, or "" when none is
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(ev.Name) {
				continue
			}
			// Coalesce bursts; one pending reload is enough.
			select {
			case w.events <- ev.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("image watcher error", "error", err)
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return abs == w.path
}
