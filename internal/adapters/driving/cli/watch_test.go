package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

func TestWatchCmd_RequiresServices(t *testing.T) {
	t.Cleanup(resetPackageState)

	_, err := execute(t, "watch", "cats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "playback not configured")
}

func TestWatchCmd_NoResults(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")

	out, err := execute(t, "watch", "cats")

	require.NoError(t, err)
	assert.Contains(t, out, "No videos matched your search.")
	assert.Empty(t, ts.player.loaded)
}

func TestWatchCmd_AutoplaysUntilStalled(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")
	a := domain.Video{ID: "a", Title: "Video a"}
	b := domain.Video{ID: "b", Title: "Video b"}
	ts.searcher.pages["cats|"] = domain.SearchPage{Items: []domain.Video{a}}
	ts.searcher.pages["Video a|"] = domain.SearchPage{Items: []domain.Video{a, b}}
	ts.searcher.pages["Video b|"] = domain.SearchPage{Items: []domain.Video{b}}

	out, err := execute(t, "watch", "cats")

	require.NoError(t, err)
	assert.Contains(t, out, "Now playing: Video a")
	assert.Contains(t, out, "Now playing: Video b")
	assert.Contains(t, out, "No related videos left to play.")
	assert.Equal(t, []string{"a", "b"}, ts.player.loaded)
	assert.Equal(t, 2, ts.history.Len())
}

func TestWatchCmd_SkipsUnplayable(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")
	a := domain.Video{ID: "a", Title: "Video a"}
	b := domain.Video{ID: "b", Title: "Video b"}
	ts.player.fail["a"] = 150
	ts.searcher.pages["cats|"] = domain.SearchPage{Items: []domain.Video{a}}
	ts.searcher.pages["Video a|"] = domain.SearchPage{Items: []domain.Video{a, b}}
	ts.searcher.pages["Video b|"] = domain.SearchPage{Items: []domain.Video{b}}

	out, err := execute(t, "watch", "cats")

	require.NoError(t, err)
	assert.Contains(t, out, "Skipped unplayable video (code 150).")
	assert.Contains(t, out, "Now playing: Video b")
	assert.Equal(t, []string{"a", "b"}, ts.player.loaded)
}

func TestWatchCmd_RestartsCycle(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")
	a := domain.Video{ID: "a", Title: "Video a"}
	b := domain.Video{ID: "b", Title: "Video b"}
	ts.searcher.pages["cats|"] = domain.SearchPage{Items: []domain.Video{a}}
	ts.searcher.once["Video a|"] = domain.SearchPage{Items: []domain.Video{b}}
	ts.searcher.pages["Video b|"] = domain.SearchPage{Items: []domain.Video{a}}
	ts.searcher.pages["Video a|"] = domain.SearchPage{Items: []domain.Video{a}}

	out, err := execute(t, "watch", "cats")

	require.NoError(t, err)
	assert.Contains(t, out, "Watched every related video, starting over.")
	assert.Contains(t, out, "No related videos left to play.")
	assert.Equal(t, []string{"a", "b", "a"}, ts.player.loaded)
}

func TestWatchCmd_MissingKey(t *testing.T) {
	setupTestServices(t, "")

	_, err := execute(t, "watch", "cats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no YouTube API key configured")
}
