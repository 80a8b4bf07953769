// Package domain defines the core business entities for clipseek.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Video: A playable search result
//   - KeywordSet: The user's forbidden-keyword filter
//   - HistoryCursor, SearchCursor: Pagination state for the two data views
//   - WatchedSet: Per-session autoplay anti-repeat memory
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
