package domain

// DefaultMaxHistory is the number of videos kept in the viewing history.
const DefaultMaxHistory = 20

// DefaultHistoryBatchSize is how many history entries are rendered per scroll step.
const DefaultHistoryBatchSize = 10

// PushHistory moves v to the front of list, removing any earlier entry with
// the same ID, and truncates the result to max entries. The input slice is
// not modified. Invalid videos leave the list unchanged.
func PushHistory(list []Video, v Video, maxItems int) []Video {
	if !v.Valid() {
		return list
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxHistory
	}

	out := make([]Video, 0, len(list)+1)
	out = append(out, v)
	for _, existing := range list {
		if existing.ID == v.ID || !existing.Valid() {
			continue
		}
		out = append(out, existing)
	}
	if len(out) > maxItems {
		out = out[:maxItems]
	}
	return out
}

// HistoryBatch returns the slice [offset, offset+size) of list and whether
// the batch reaches the end of the list.
func HistoryBatch(list []Video, offset, size int) ([]Video, bool) {
	if offset < 0 {
		offset = 0
	}
	total := len(list)
	if offset >= total || size <= 0 {
		return []Video{}, offset >= total
	}

	end := offset + size
	if end > total {
		end = total
	}
	items := make([]Video, end-offset)
	copy(items, list[offset:end])
	return items, offset+len(items) >= total
}

// HistoryCursor tracks how far the history view has been rendered.
type HistoryCursor struct {
	// Offset is the index of the next entry to read.
	Offset int

	// Exhausted is set once a batch reached the end of the history.
	Exhausted bool
}

// Reset rewinds the cursor to the first entry.
func (c *HistoryCursor) Reset() {
	c.Offset = 0
	c.Exhausted = false
}

// Advance moves the cursor past a batch of the given size.
func (c *HistoryCursor) Advance(size int, exhausted bool) {
	c.Offset += size
	c.Exhausted = exhausted
}

// Removed accounts for the entry at index leaving the history. Entries
// below the offset have already been read, so the offset shifts back by
// one to keep the next batch from skipping the entry that slid down.
func (c *HistoryCursor) Removed(index int) {
	if index >= 0 && index < c.Offset {
		c.Offset--
	}
}
