// Package youtube implements the video search port against the YouTube
// Data API v3.
//
// Every request asks for embeddable videos only with strict safe search.
// Errors reported by the API surface as *domain.APIError carrying the
// API's own message; everything else wraps domain.ErrTransport.
package youtube
