package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

func seedHistory(t *testing.T, ts *testServices, videos ...domain.Video) {
	t.Helper()
	for _, v := range videos {
		require.NoError(t, ts.history.RecordView(v))
	}
}

func TestHistoryCmd_Empty(t *testing.T) {
	setupTestServices(t, "")

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "Your history will appear here after you watch a video.")
}

func TestHistoryCmd_ListsMostRecentFirst(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts,
		domain.Video{ID: "a", Title: "First"},
		domain.Video{ID: "b", Title: "Second"},
	)

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] Second")
	assert.Contains(t, out, "[2] First")
	assert.Contains(t, out, "Total: 2 videos")
}

func TestHistoryCmd_HidesForbidden(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts,
		domain.Video{ID: "a", Title: "Cooking pasta"},
		domain.Video{ID: "b", Title: "Epic prank"},
	)
	require.NoError(t, ts.settings.SetKeywords("prank"))

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "Cooking pasta")
	assert.NotContains(t, out, "Epic prank")
	assert.Contains(t, out, "(1 hidden by your keywords)")
}

func TestHistoryCmd_AllFiltered(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts, domain.Video{ID: "b", Title: "Epic prank"})
	require.NoError(t, ts.settings.SetKeywords("prank"))

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "all videos were filtered by your keywords")
}

func TestHistoryCmd_OffsetAndLimit(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts,
		domain.Video{ID: "a", Title: "First"},
		domain.Video{ID: "b", Title: "Second"},
		domain.Video{ID: "c", Title: "Third"},
	)

	out, err := execute(t, "history", "--offset", "1", "-n", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Second")
	assert.NotContains(t, out, "Third")
	assert.NotContains(t, out, "First")
}

func TestHistoryCmd_InvalidLimit(t *testing.T) {
	setupTestServices(t, "")

	_, err := execute(t, "history", "--limit", "0")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryCmd_JSON(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts, domain.Video{ID: "a", Title: "First"})

	out, err := execute(t, "history", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "a"`)
	assert.Contains(t, out, `"title": "First"`)
	assert.Contains(t, out, `"embedUrl": "https://www.youtube.com/embed/a?`)
}

func TestHistoryCmd_JSONEmpty(t *testing.T) {
	setupTestServices(t, "")

	out, err := execute(t, "history", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestHistoryRemoveCmd(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts,
		domain.Video{ID: "a", Title: "First"},
		domain.Video{ID: "b", Title: "Second"},
	)

	out, err := execute(t, "history", "remove", "a")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed a from history.")
	assert.Equal(t, 1, ts.history.Len())
}

func TestHistoryRemoveCmd_Missing(t *testing.T) {
	setupTestServices(t, "")

	_, err := execute(t, "history", "remove", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryClearCmd(t *testing.T) {
	ts := setupTestServices(t, "")
	seedHistory(t, ts, domain.Video{ID: "a", Title: "First"})

	out, err := execute(t, "history", "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")
	assert.Zero(t, ts.history.Len())
}
