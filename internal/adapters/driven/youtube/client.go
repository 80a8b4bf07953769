package youtube

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Verify interface compliance.
var _ driven.VideoSearcher = (*Searcher)(nil)

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 30 * time.Second

// maxPageSize is the largest page the search endpoint accepts.
const maxPageSize = 50

// KeyFunc returns the API key to use for the next request.
type KeyFunc func() string

// Searcher queries the YouTube search.list endpoint.
// The API key is read on every request, so a key saved in the settings view
// takes effect without restarting. The underlying service is rebuilt only
// when the key changes.
type Searcher struct {
	key     KeyFunc
	limiter *RateLimiter
	opts    []option.ClientOption

	mu         sync.Mutex
	service    *ytapi.Service
	serviceKey string
}

// NewSearcher creates a searcher. A nil limiter disables pacing.
// Extra client options are appended after the defaults, which lets tests
// point the client at a local endpoint.
func NewSearcher(key KeyFunc, limiter *RateLimiter, opts ...option.ClientOption) *Searcher {
	return &Searcher{
		key:     key,
		limiter: limiter,
		opts:    opts,
	}
}

// Search fetches one page of results.
func (s *Searcher) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchPage, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return domain.SearchPage{}, domain.ErrEmptyQuery
	}

	svc, err := s.serviceFor(ctx)
	if err != nil {
		return domain.SearchPage{}, err
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.SearchPage{}, err
		}
	}

	call := svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(pageSize(req.PageSize))
	if req.SafeSearch != "" {
		call = call.SafeSearch(req.SafeSearch)
	}
	if req.EmbeddableOnly {
		call = call.VideoEmbeddable("true")
	}
	if req.ContinuationToken != "" {
		call = call.PageToken(req.ContinuationToken)
	}

	logger.Debug("youtube: search q=%q token=%q", query, req.ContinuationToken)

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := call.Context(ctx).Do()
	if err != nil {
		if IsRateLimited(err) && s.limiter != nil {
			s.limiter.RecordRateLimitError(retryAfter(err))
		}
		logger.Warn("youtube: search q=%q failed: %v", query, err)
		return domain.SearchPage{}, WrapError(err)
	}

	page := domain.SearchPage{
		Items:                 make([]domain.Video, 0, len(resp.Items)),
		NextContinuationToken: resp.NextPageToken,
	}
	for _, item := range resp.Items {
		if v, ok := toVideo(item); ok {
			page.Items = append(page.Items, v)
		}
	}

	logger.Debug("youtube: q=%q returned %d items, next=%q", query, len(page.Items), page.NextContinuationToken)
	return page, nil
}

// serviceFor returns a service bound to the current API key.
func (s *Searcher) serviceFor(ctx context.Context) (*ytapi.Service, error) {
	key := ""
	if s.key != nil {
		key = strings.TrimSpace(s.key())
	}
	if key == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil && s.serviceKey == key {
		return s.service, nil
	}

	opts := append([]option.ClientOption{option.WithAPIKey(key)}, s.opts...)

	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create youtube service: %w", domain.ErrTransport, err)
	}
	s.service = svc
	s.serviceKey = key
	return svc, nil
}

func pageSize(n int) int64 {
	if n <= 0 {
		n = domain.DefaultPageSize
	}
	if n > maxPageSize {
		n = maxPageSize
	}
	return int64(n)
}

// toVideo converts a search result. Results that are not videos are skipped.
func toVideo(item *ytapi.SearchResult) (domain.Video, bool) {
	if item == nil || item.Id == nil || item.Id.VideoId == "" {
		return domain.Video{}, false
	}

	v := domain.Video{ID: item.Id.VideoId}
	if sn := item.Snippet; sn != nil {
		v.Title = sn.Title
		v.Description = sn.Description
		v.ChannelTitle = sn.ChannelTitle
		v.ThumbnailURL = thumbnail(sn.Thumbnails)
		v.PublishedAt = sn.PublishedAt
	}
	return v, v.Valid()
}

// thumbnail picks the best available thumbnail URL.
func thumbnail(th *ytapi.ThumbnailDetails) string {
	if th == nil {
		return ""
	}
	for _, t := range []*ytapi.Thumbnail{th.High, th.Medium, th.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
