// Package player implements the Player port by running an external media
// player process, mpv by default, against the video's watch URL.
package player
