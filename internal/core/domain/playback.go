package domain

import "strings"

// PlaybackState is the coarse state of the playback session.
type PlaybackState int

// Playback states.
const (
	PlaybackIdle PlaybackState = iota
	PlaybackPlaying
)

// String returns the display name of the state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackPlaying:
		return "playing"
	default:
		return "idle"
	}
}

// PlayerEventKind identifies a player lifecycle event.
type PlayerEventKind int

// Player events.
const (
	PlayerReady PlayerEventKind = iota
	PlayerEnded
	PlayerError
)

// String returns the event name.
func (k PlayerEventKind) String() string {
	switch k {
	case PlayerReady:
		return "ready"
	case PlayerEnded:
		return "ended"
	case PlayerError:
		return "error"
	default:
		return "unknown"
	}
}

// PlayerEvent is emitted by the player for the video it is showing.
type PlayerEvent struct {
	Kind    PlayerEventKind
	VideoID string

	// Code is the player's error code for PlayerError events.
	Code int
}

// AdvanceResult describes the outcome of an autoplay step.
type AdvanceResult struct {
	// Video is the newly playing video. Zero when the session stalled.
	Video Video

	// Restarted is set when the watched set was cleared to find a candidate.
	Restarted bool

	// Stalled is set when no candidate existed even after a restart.
	Stalled bool
}

// WatchedSet records the IDs played during one playback session.
type WatchedSet struct {
	ids map[string]struct{}
}

// NewWatchedSet returns an empty set.
func NewWatchedSet() *WatchedSet {
	return &WatchedSet{ids: make(map[string]struct{})}
}

// Add marks id as watched.
func (w *WatchedSet) Add(id string) {
	if id == "" {
		return
	}
	w.ids[id] = struct{}{}
}

// Has reports whether id was watched in this session.
func (w *WatchedSet) Has(id string) bool {
	_, ok := w.ids[id]
	return ok
}

// Len returns the number of watched IDs.
func (w *WatchedSet) Len() int {
	return len(w.ids)
}

// Clear empties the set.
func (w *WatchedSet) Clear() {
	w.ids = make(map[string]struct{})
}

// Reset empties the set and seeds it with the given ID.
func (w *WatchedSet) Reset(seed string) {
	w.Clear()
	w.Add(seed)
}

// IDs returns a copy of the watched IDs in no particular order.
func (w *WatchedSet) IDs() []string {
	out := make([]string, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	return out
}

var quoteStripper = strings.NewReplacer(
	`"`, "",
	"'", "",
	"“", "",
	"”", "",
	"‘", "",
	"’", "",
)

// AutoplayQuery derives the related-video query from the current title.
func AutoplayQuery(title string) string {
	return strings.TrimSpace(quoteStripper.Replace(title))
}

// SelectCandidate returns the first video that is valid, is not excludeID,
// is not forbidden and, when watched is non-nil, has not been watched.
// A nil forbidden func allows everything.
func SelectCandidate(candidates []Video, excludeID string, forbidden func(Video) bool, watched *WatchedSet) (Video, bool) {
	for _, v := range candidates {
		if !v.Valid() || v.ID == excludeID {
			continue
		}
		if forbidden != nil && forbidden(v) {
			continue
		}
		if watched != nil && watched.Has(v.ID) {
			continue
		}
		return v, true
	}
	return Video{}, false
}
