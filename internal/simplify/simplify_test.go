package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetcap/internal/transcript"
)

func wrap(words []*transcript.Word) *transcript.Transcript {
	return &transcript.Transcript{
		Results: &transcript.Results{Channels: []transcript.Channel{
			{Alternatives: []transcript.Alternative{{Words: words}}},
		}},
	}
}

func TestLinesGroupsConsecutiveWords(t *testing.T) {
	tr := wrap([]*transcript.Word{
		{Word: "hello", PunctuatedWord: "Hello,", Speaker: transcript.IntValue(0)},
		{Word: "there", PunctuatedWord: "there.", Speaker: transcript.IntValue(0)},
		{Word: "hi", PunctuatedWord: "Hi!", Speaker: transcript.IntValue(1)},
		{Word: "anyway", PunctuatedWord: "Anyway,", Speaker: transcript.IntValue(0)},
	})
	assert.Equal(t, []string{
		"Speaker 0: Hello, there.",
		"Speaker 1: Hi!",
		"Speaker 0: Anyway,",
	}, Lines(tr))
}

func TestLinesUsesResolvedNames(t *testing.T) {
	tr := wrap([]*transcript.Word{
		{Word: "hello", Speaker: transcript.IntValue(0), SpeakerName: "Alice"},
		{Word: "hi", Speaker: transcript.IntValue(1)},
	})
	assert.Equal(t, []string{"Alice: hello", "Speaker 1: hi"}, Lines(tr))
}

func TestLinesEmpty(t *testing.T) {
	assert.Nil(t, Lines(&transcript.Transcript{}))
	assert.Nil(t, Lines(wrap(nil)))
}

func TestTextHeader(t *testing.T) {
	tr := wrap([]*transcript.Word{{Word: "hello", Speaker: transcript.IntValue(0)}})
	tr.Metadata = &transcript.Metadata{Created: "2024-01-15T10:30:00Z"}

	text := Text(tr)
	require.Contains(t, text, "Recording created: 2024-01-15 10:30 UTC")
	assert.Contains(t, text, "Speaker 0: hello")
}

func TestTextHeaderTimezoneNormalized(t *testing.T) {
	tr := wrap([]*transcript.Word{{Word: "hello", Speaker: transcript.IntValue(0)}})
	tr.Metadata = &transcript.Metadata{Created: "2024-01-15T12:30:00+02:00"}
	assert.Contains(t, Text(tr), "Recording created: 2024-01-15 10:30 UTC")
}

func TestTextHeaderUnavailable(t *testing.T) {
	tr := wrap([]*transcript.Word{{Word: "hello", Speaker: transcript.IntValue(0)}})
	assert.Contains(t, Text(tr), "Recording created: (timestamp unavailable)")

	tr.Metadata = &transcript.Metadata{Created: "not a timestamp"}
	assert.Contains(t, Text(tr), "Recording created: (timestamp unavailable)")
}
