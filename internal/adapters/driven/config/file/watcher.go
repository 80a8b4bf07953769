package file

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before notifying.
const DefaultDebounce = 250 * time.Millisecond

// LocalWriteWindow is how long after a write by this process database
// events are attributed to that write. It runs from the end of the
// debounce window.
const LocalWriteWindow = time.Second

// Watcher reports changes to the configuration file by any process and
// changes to the database by other processes. Bursts of events are
// coalesced into a single notification per key.
type Watcher struct {
	configDir string
	dataDir   string
	dbName    string
	debounce  time.Duration
	now       func() time.Time

	changes chan domain.ConfigChange

	mu        sync.Mutex
	fsw       *fsnotify.Watcher
	pending   map[string]domain.ConfigChange
	timer     *time.Timer
	lastLocal time.Time
	closed    bool
}

// NewWatcher creates a watcher for config.toml in configDir and the
// database file dbName in dataDir.
func NewWatcher(configDir, dataDir, dbName string) *Watcher {
	return &Watcher{
		configDir: configDir,
		dataDir:   dataDir,
		dbName:    dbName,
		debounce:  DefaultDebounce,
		now:       time.Now,
		changes:   make(chan domain.ConfigChange, 8),
		pending:   make(map[string]domain.ConfigChange),
	}
}

// SetDebounce overrides the coalescing window.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// MarkLocalWrite records that this process has just written the database,
// so the file events it causes are not reported as external changes.
func (w *Watcher) MarkLocalWrite() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastLocal = w.now()
}

// Start begins watching both directories.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	for _, dir := range []string{w.configDir, w.dataDir} {
		if dir == "" {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		fsw.Close()
		return errors.New("watcher closed")
	}
	w.fsw = fsw
	w.mu.Unlock()

	go w.run(ctx, fsw)
	return nil
}

// Changes delivers coalesced change notifications.
func (w *Watcher) Changes() <-chan domain.ConfigChange {
	return w.changes
}

// Close stops watching and closes the Changes channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.changes)
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if change := w.handleFsEvent(ev); change != nil {
				w.schedule(*change)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("File watcher error: %v", err)
		}
	}
}

// handleFsEvent maps a file event to a change, or nil when the event is
// irrelevant.
func (w *Watcher) handleFsEvent(ev fsnotify.Event) *domain.ConfigChange {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return nil
	}

	dir, base := filepath.Dir(ev.Name), filepath.Base(ev.Name)
	switch {
	case base == ConfigFile && filepath.Clean(dir) == filepath.Clean(w.configDir):
		return &domain.ConfigChange{Key: domain.KeyConfigFile, Source: domain.ChangeFromExternal}
	case w.dbName != "" && strings.HasPrefix(base, w.dbName) && filepath.Clean(dir) == filepath.Clean(w.dataDir):
		// store.db, store.db-wal and store.db-shm all signal a data change.
		return &domain.ConfigChange{Key: domain.KeyDatabase, Source: domain.ChangeFromExternal}
	default:
		return nil
	}
}

func (w *Watcher) schedule(change domain.ConfigChange) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending[change.Key] = change
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	for key, change := range w.pending {
		delete(w.pending, key)
		if key == domain.KeyDatabase && w.ownWrite() {
			logger.Debug("Ignoring database change, written by this process")
			continue
		}
		select {
		case w.changes <- change:
		default:
			logger.Debug("Dropping change notification for %q, consumer is behind", key)
		}
	}
}

// ownWrite reports whether a local write happened recently enough to
// explain the pending database events. Callers hold w.mu.
func (w *Watcher) ownWrite() bool {
	if w.lastLocal.IsZero() {
		return false
	}
	return w.now().Sub(w.lastLocal) < w.debounce+LocalWriteWindow
}
