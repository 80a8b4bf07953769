// Package player provides the now-playing bar of the TUI.
package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// Bar shows the playing video and autoplay notices.
type Bar struct {
	styles  *styles.Styles
	state   domain.PlaybackState
	video   domain.Video
	watched int
	notice  string
	width   int
}

// NewBar creates an idle player bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s, width: 80}
}

// View renders the bar.
func (b *Bar) View() string {
	var parts []string
	if b.state == domain.PlaybackPlaying && b.video.Valid() {
		title := b.video.Title
		if title == "" {
			title = b.video.ID
		}
		parts = append(parts,
			b.styles.Title.Render("▶ ")+b.styles.Normal.Render(title),
			b.styles.Muted.Render(fmt.Sprintf("%d watched", b.watched)),
		)
	} else {
		parts = append(parts, b.styles.Muted.Render("■ Nothing playing"))
	}
	if b.notice != "" {
		parts = append(parts, b.styles.Warning.Render(b.notice))
	}

	line := strings.Join(parts, b.styles.Muted.Render("  ·  "))
	return b.styles.PlayerBar.Render(lipgloss.NewStyle().MaxWidth(b.width).Render(line))
}

// SetPlayback updates the playing video and session state.
func (b *Bar) SetPlayback(state domain.PlaybackState, v domain.Video, watched int) {
	b.state = state
	b.video = v
	b.watched = watched
}

// SetNotice shows an autoplay notice until the next one.
func (b *Bar) SetNotice(notice string) {
	b.notice = notice
}

// Notice returns the current notice.
func (b *Bar) Notice() string {
	return b.notice
}

// State returns the displayed playback state.
func (b *Bar) State() domain.PlaybackState {
	return b.state
}

// Video returns the displayed video.
func (b *Bar) Video() domain.Video {
	return b.video
}

// SetStyles replaces the styles, for theme switches.
func (b *Bar) SetStyles(s *styles.Styles) {
	if s != nil {
		b.styles = s
	}
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
