package domain

import "net/url"

const (
	watchBaseURL = "https://www.youtube.com/watch"
	embedBaseURL = "https://www.youtube.com/embed/"
)

// Video is a single playable result returned by the video search API.
// It is also the element type of the persisted viewing history.
type Video struct {
	// ID is the provider's video identifier. Records without one are unusable.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is the snippet description. May be empty.
	Description string `json:"description"`

	// ChannelTitle is the publishing channel's display name.
	ChannelTitle string `json:"channelTitle"`

	// ThumbnailURL points at the best available thumbnail.
	ThumbnailURL string `json:"thumbnailUrl"`

	// PublishedAt is the provider's publish timestamp, kept verbatim.
	PublishedAt string `json:"publishedAt,omitempty"`
}

// Valid reports whether the video carries an identifier.
func (v Video) Valid() bool {
	return v.ID != ""
}

// WatchURL returns the public watch page for the video.
func (v Video) WatchURL() string {
	return watchBaseURL + "?v=" + url.QueryEscape(v.ID)
}

// EmbedURL returns the embeddable player URL with autoplay off and
// related videos restricted to the same channel.
func (v Video) EmbedURL() string {
	q := url.Values{}
	q.Set("autoplay", "0")
	q.Set("rel", "0")
	q.Set("enablejsapi", "1")
	q.Set("modestbranding", "1")
	return embedBaseURL + url.PathEscape(v.ID) + "?" + q.Encode()
}

// ValidVideos returns the videos that carry an identifier, preserving order.
func ValidVideos(videos []Video) []Video {
	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		if v.Valid() {
			out = append(out, v)
		}
	}
	return out
}
