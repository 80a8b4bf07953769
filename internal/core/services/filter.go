package services

import (
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
)

// Ensure KeywordFilter implements the interface.
var _ driving.FilterService = (*KeywordFilter)(nil)

// KeywordFilter applies the user's forbidden keywords. The keyword list is
// re-read on every call so saved changes apply immediately.
type KeywordFilter struct {
	settings driving.SettingsService
}

// NewKeywordFilter creates a filter reading keywords from settings.
func NewKeywordFilter(settings driving.SettingsService) *KeywordFilter {
	return &KeywordFilter{settings: settings}
}

// IsForbidden reports whether v matches a forbidden keyword.
func (f *KeywordFilter) IsForbidden(v domain.Video) bool {
	return domain.IsForbidden(v, f.settings.KeywordSet())
}

// Apply drops invalid and forbidden videos.
func (f *KeywordFilter) Apply(videos []domain.Video) ([]domain.Video, int) {
	return domain.FilterVideos(videos, f.settings.KeywordSet())
}
