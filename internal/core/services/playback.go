package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure PlaybackSession implements the interface.
var _ driving.PlaybackService = (*PlaybackSession)(nil)

// PlaybackSession plays videos and, when one finishes or fails, autoplays a
// related video that has not been played in this session.
//
// The epoch changes on every explicit Play and on Close. An autoplay fetch
// that completes under a different epoch is discarded.
type PlaybackSession struct {
	player   driven.Player
	searcher driven.VideoSearcher
	filter   driving.FilterService
	history  driving.HistoryService
	pageSize int
	newID    func() string

	mu        sync.Mutex
	current   domain.Video
	watched   *domain.WatchedSet
	state     domain.PlaybackState
	epoch     string
	advancing string
}

// NewPlaybackSession creates a playback session. player may be nil, in
// which case playing only records history.
func NewPlaybackSession(
	player driven.Player,
	searcher driven.VideoSearcher,
	filter driving.FilterService,
	history driving.HistoryService,
	pageSize int,
) *PlaybackSession {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &PlaybackSession{
		player:   player,
		searcher: searcher,
		filter:   filter,
		history:  history,
		pageSize: pageSize,
		newID:    uuid.NewString,
		watched:  domain.NewWatchedSet(),
		state:    domain.PlaybackIdle,
		epoch:    uuid.NewString(),
	}
}

// Play loads v in a fresh player.
func (s *PlaybackSession) Play(ctx context.Context, v domain.Video) error {
	if !v.Valid() {
		return fmt.Errorf("play: %w", domain.ErrInvalidInput)
	}
	logger.Section("Playback")
	logger.Debug("Playing %s %q", v.ID, v.Title)

	s.mu.Lock()
	if s.player != nil {
		if err := s.player.Destroy(); err != nil {
			logger.Warn("Failed to destroy previous player: %v", err)
		}
	}
	s.watched.Add(v.ID)
	s.current = v
	s.state = domain.PlaybackPlaying
	s.epoch = s.newID()
	epoch := s.epoch
	s.mu.Unlock()

	return s.start(ctx, v, epoch)
}

// OnEnded advances after the current video finished.
func (s *PlaybackSession) OnEnded(ctx context.Context) (domain.AdvanceResult, error) {
	cur := s.Current()
	if !cur.Valid() {
		return domain.AdvanceResult{}, fmt.Errorf("advance: %w", domain.ErrNotFound)
	}
	logger.Debug("Video %s ended, advancing", cur.ID)
	return s.Advance(ctx, cur.ID, cur.Title)
}

// OnError skips the current video after a player error.
func (s *PlaybackSession) OnError(ctx context.Context, code int) (domain.AdvanceResult, error) {
	cur := s.Current()
	if !cur.Valid() {
		return domain.AdvanceResult{}, fmt.Errorf("advance: %w", domain.ErrNotFound)
	}
	logger.Warn("Player error %d on %s, skipping to a related video", code, cur.ID)
	return s.Advance(ctx, cur.ID, cur.Title)
}

// Advance searches for videos related to queryTitle and plays the first
// one that is not excludeID, not forbidden and not yet watched. When every
// candidate has been watched the session forgets what it played, except
// excludeID, and picks again.
func (s *PlaybackSession) Advance(ctx context.Context, excludeID, queryTitle string) (domain.AdvanceResult, error) {
	s.mu.Lock()
	if s.advancing != "" && s.advancing == s.epoch {
		s.mu.Unlock()
		return domain.AdvanceResult{}, domain.ErrAdvanceInProgress
	}
	epoch := s.epoch
	s.advancing = epoch
	s.mu.Unlock()

	query := domain.AutoplayQuery(queryTitle)
	logger.Debug("Autoplay query %q excluding %s", query, excludeID)
	page, err := s.searcher.Search(ctx, domain.NewSearchRequest(query, "", s.pageSize))

	s.mu.Lock()
	if s.advancing == epoch {
		s.advancing = ""
	}
	if s.epoch != epoch {
		s.mu.Unlock()
		logger.Debug("Discarding autoplay result for an ended session")
		return domain.AdvanceResult{}, domain.ErrStaleResponse
	}
	if err != nil {
		s.state = domain.PlaybackIdle
		s.mu.Unlock()
		return domain.AdvanceResult{}, fmt.Errorf("autoplay search: %w", err)
	}

	var result domain.AdvanceResult
	next, ok := domain.SelectCandidate(page.Items, excludeID, s.filter.IsForbidden, s.watched)
	if !ok {
		logger.Info("Autoplay: every related video was already played, restarting the cycle")
		s.watched.Reset(excludeID)
		result.Restarted = true
		next, ok = domain.SelectCandidate(page.Items, excludeID, s.filter.IsForbidden, s.watched)
	}
	if !ok {
		logger.Info("Autoplay: no related video available, stopping")
		s.state = domain.PlaybackIdle
		s.mu.Unlock()
		result.Stalled = true
		return result, nil
	}

	s.watched.Add(next.ID)
	s.current = next
	s.state = domain.PlaybackPlaying
	s.mu.Unlock()

	if err := s.start(ctx, next, epoch); err != nil {
		if errors.Is(err, domain.ErrStaleResponse) {
			return domain.AdvanceResult{}, err
		}
		result.Video = next
		return result, err
	}
	result.Video = next
	return result, nil
}

// Close destroys the player and forgets the session.
func (s *PlaybackSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.watched.Clear()
	s.current = domain.Video{}
	s.state = domain.PlaybackIdle
	s.epoch = s.newID()
	s.advancing = ""

	if s.player == nil {
		return nil
	}
	if err := s.player.Destroy(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	return nil
}

// State returns the playback state.
func (s *PlaybackSession) State() domain.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the loaded video.
func (s *PlaybackSession) Current() domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Watched returns the IDs played in this session.
func (s *PlaybackSession) Watched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watched.IDs()
}

// Events delivers player events.
func (s *PlaybackSession) Events() <-chan domain.PlayerEvent {
	if s.player == nil {
		return nil
	}
	return s.player.Events()
}

// start records v in history and loads it under the session epoch it
// was chosen in. A Close or Play that lands while history is written
// supersedes the load, which then reports ErrStaleResponse. History write
// failures do not stop playback.
func (s *PlaybackSession) start(ctx context.Context, v domain.Video, epoch string) error {
	if err := s.history.RecordView(v); err != nil {
		logger.Error(err, "Failed to record %s in history", v.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		logger.Debug("Not loading %s, the session moved on", v.ID)
		return domain.ErrStaleResponse
	}
	if s.player == nil {
		return nil
	}
	if err := s.player.Load(ctx, v.ID); err != nil {
		s.state = domain.PlaybackIdle
		return fmt.Errorf("load %s: %w", v.ID, err)
	}
	return nil
}
