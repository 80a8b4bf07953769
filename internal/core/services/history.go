package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure HistoryStore implements the interface.
var _ driving.HistoryService = (*HistoryStore)(nil)

// HistoryStore keeps the bounded, de-duplicated viewing history as a JSON
// array under domain.KeyVideoHistory. Storage is re-read on every call.
type HistoryStore struct {
	store    driven.KeyValueStore
	maxItems int

	// mu serialises read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewHistoryStore creates a history holding at most maxItems videos.
func NewHistoryStore(store driven.KeyValueStore, maxItems int) *HistoryStore {
	if maxItems <= 0 {
		maxItems = domain.DefaultMaxHistory
	}
	return &HistoryStore{store: store, maxItems: maxItems}
}

// RecordView moves v to the front of the history and persists it.
// Videos without an ID are ignored.
func (h *HistoryStore) RecordView(v domain.Video) error {
	if !v.Valid() {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	list := domain.PushHistory(h.load(), v, h.maxItems)
	if err := h.save(list); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	logger.Debug("History: recorded %s (%d entries)", v.ID, len(list))
	return nil
}

// ReadBatch returns up to size entries starting at offset.
func (h *HistoryStore) ReadBatch(offset, size int) ([]domain.Video, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return domain.HistoryBatch(h.load(), offset, size)
}

// ClearCursor rewinds c to the first entry.
func (h *HistoryStore) ClearCursor(c *domain.HistoryCursor) {
	if c != nil {
		c.Reset()
	}
}

// All returns the whole history.
func (h *HistoryStore) All() []domain.Video {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Len returns the number of entries.
func (h *HistoryStore) Len() int {
	return len(h.All())
}

// Remove deletes the entry with the given ID.
func (h *HistoryStore) Remove(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.load()
	kept := make([]domain.Video, 0, len(list))
	for _, v := range list {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("remove %s from history: %w", id, domain.ErrNotFound)
	}
	if err := h.save(kept); err != nil {
		return fmt.Errorf("remove %s from history: %w", id, err)
	}
	return nil
}

// Clear deletes the whole history.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.store.Remove(domain.KeyVideoHistory); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// load never fails: unreadable or malformed history is treated as empty.
func (h *HistoryStore) load() []domain.Video {
	raw, ok, err := h.store.Get(domain.KeyVideoHistory)
	if err != nil {
		logger.Warn("Failed to read history, treating as empty: %v", err)
		return []domain.Video{}
	}
	if !ok || raw == "" {
		return []domain.Video{}
	}

	var list []domain.Video
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		logger.Warn("Stored history is malformed, treating as empty: %v", err)
		return []domain.Video{}
	}
	return domain.ValidVideos(list)
}

func (h *HistoryStore) save(list []domain.Video) error {
	if list == nil {
		list = []domain.Video{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return h.store.Set(domain.KeyVideoHistory, string(data))
}
