package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestAddFillsDefaults(t *testing.T) {
	h := openTemp(t)

	e := &Entry{
		AudioPath:      "/audio/meeting.wav",
		TranscriptPath: "/transcripts/meeting.json",
		WordCount:      120,
		SpeakerCount:   2,
	}
	require.NoError(t, h.Add(e))
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestGet(t *testing.T) {
	h := openTemp(t)

	e := &Entry{
		AudioPath:      "/audio/standup.wav",
		TranscriptPath: "/transcripts/standup.json",
		SummaryPath:    "/summaries/standup.md",
		WordCount:      42,
		SpeakerCount:   3,
	}
	require.NoError(t, h.Add(e))

	got, err := h.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.AudioPath, got.AudioPath)
	assert.Equal(t, e.TranscriptPath, got.TranscriptPath)
	assert.Equal(t, e.SummaryPath, got.SummaryPath)
	assert.Equal(t, 42, got.WordCount)
	assert.Equal(t, 3, got.SpeakerCount)
}

func TestListNewestFirst(t *testing.T) {
	h := openTemp(t)

	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, h.Add(&Entry{
			AudioPath:      "/audio/a.wav",
			TranscriptPath: "/transcripts/a.json",
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}))
	}

	entries, err := h.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))
	assert.True(t, entries[1].CreatedAt.After(entries[2].CreatedAt))
}

func TestListLimit(t *testing.T) {
	h := openTemp(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Add(&Entry{AudioPath: "/a.wav", TranscriptPath: "/a.json"}))
	}
	entries, err := h.List(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestListEmpty(t *testing.T) {
	h := openTemp(t)
	entries, err := h.List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
