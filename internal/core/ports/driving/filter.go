package driving

import "github.com/custodia-labs/clipseek/internal/core/domain"

// FilterService applies the user's keyword filter.
type FilterService interface {
	// IsForbidden reports whether v matches any forbidden keyword.
	IsForbidden(v domain.Video) bool

	// Apply drops invalid and forbidden videos and counts the forbidden ones.
	Apply(videos []domain.Video) ([]domain.Video, int)
}
