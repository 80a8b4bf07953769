package driving

import "github.com/custodia-labs/clipseek/internal/core/domain"

// HistoryService manages the viewing history.
type HistoryService interface {
	// RecordView moves v to the front of the history.
	RecordView(v domain.Video) error

	// ReadBatch returns up to size entries starting at offset, unfiltered,
	// and whether the batch reaches the end of the history.
	ReadBatch(offset, size int) ([]domain.Video, bool)

	// ClearCursor rewinds an externally held history cursor.
	ClearCursor(c *domain.HistoryCursor)

	// All returns the whole history, most recent first.
	All() []domain.Video

	// Len returns the number of history entries.
	Len() int

	// Remove deletes one entry by video ID.
	Remove(id string) error

	// Clear deletes the whole history.
	Clear() error
}
