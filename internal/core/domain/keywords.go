package domain

import "strings"

// KeywordSet is the normalised list of forbidden keywords.
// Every entry is trimmed, lowercased and non-empty.
type KeywordSet []string

// ParseKeywords builds a KeywordSet from the comma-separated form the user
// types into the configuration view.
func ParseKeywords(raw string) KeywordSet {
	parts := strings.Split(raw, ",")
	set := make(KeywordSet, 0, len(parts))
	for _, p := range parts {
		kw := strings.ToLower(strings.TrimSpace(p))
		if kw != "" {
			set = append(set, kw)
		}
	}
	return set
}

// Empty reports whether the set disables filtering.
func (k KeywordSet) Empty() bool {
	return len(k) == 0
}

// String returns the set joined back into its stored form.
func (k KeywordSet) String() string {
	return strings.Join(k, ", ")
}

// IsForbidden reports whether any keyword occurs in the video's title or
// description, case-insensitively. An empty set forbids nothing.
func IsForbidden(v Video, keywords KeywordSet) bool {
	if keywords.Empty() {
		return false
	}
	text := strings.ToLower(v.Title + " " + v.Description)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FilterVideos drops invalid and forbidden videos. The count covers
// forbidden videos only; invalid records are discarded silently.
func FilterVideos(videos []Video, keywords KeywordSet) (kept []Video, filtered int) {
	kept = make([]Video, 0, len(videos))
	for _, v := range videos {
		if !v.Valid() {
			continue
		}
		if IsForbidden(v, keywords) {
			filtered++
			continue
		}
		kept = append(kept, v)
	}
	return kept, filtered
}
