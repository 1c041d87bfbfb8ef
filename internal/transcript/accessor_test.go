package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `{
		"metadata": {"created": "2024-01-15T10:30:00Z", "duration": 5.0},
		"results": {"channels": [{"alternatives": [{"words": [
			{"word": "hello", "speaker": 0, "start_time": 0.5, "end_time": 1.0}
		]}]}]}
	}`)

	tr, err := Load(path)
	require.NoError(t, err)
	words, err := tr.Words()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "hello", words[0].Word)
	assert.Equal(t, "0", words[0].SpeakerID())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading transcript file")
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeTemp(t, `{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading transcript file")
}

func TestLoadWrongFieldType(t *testing.T) {
	// channels as an object instead of an array is a format error naming
	// the offending field.
	_, err := Load(writeTemp(t, `{"results": {"channels": {}}}`))
	require.Error(t, err)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "channels", formatErr.Field)
}

func TestSaveRoundTrip(t *testing.T) {
	original := `{
		"results": {"channels": [{"alternatives": [{"words": [
			{"word": "hello", "speaker": "0", "start_time": "0.50"}
		]}]}]}
	}`
	path := writeTemp(t, original)

	tr, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, tr.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// The saved document keeps the scalar representations as written.
	assert.Contains(t, string(data), `"speaker": "0"`)
	assert.Contains(t, string(data), `"start_time": "0.50"`)
	// Indented with four spaces.
	assert.True(t, strings.Contains(string(data), "\n    \"results\""))

	// Loading the saved file again yields the same word sequence.
	again, err := Load(path)
	require.NoError(t, err)
	words, err := again.Words()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "0", words[0].SpeakerID())
}

func TestWordsValidation(t *testing.T) {
	tests := []struct {
		name  string
		t     *Transcript
		field string
	}{
		{name: "nil results", t: &Transcript{}, field: "results"},
		{name: "empty channels", t: &Transcript{Results: &Results{Channels: []Channel{}}}, field: "channels"},
		{
			name:  "empty alternatives",
			t:     &Transcript{Results: &Results{Channels: []Channel{{Alternatives: []Alternative{}}}}},
			field: "alternatives",
		},
		{
			name:  "nil words",
			t:     &Transcript{Results: &Results{Channels: []Channel{{Alternatives: []Alternative{{}}}}}},
			field: "words",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.t.Words()
			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.field, formatErr.Field)
			assert.Contains(t, err.Error(), "invalid transcript format")
		})
	}
}

func TestWordsEmptyListIsValid(t *testing.T) {
	tr := &Transcript{Results: &Results{Channels: []Channel{
		{Alternatives: []Alternative{{Words: []*Word{}}}},
	}}}
	words, err := tr.Words()
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestContextWordsLenient(t *testing.T) {
	// Absent nesting yields no words and no error.
	for _, tr := range []*Transcript{
		nil,
		{},
		{Results: &Results{}},
		{Results: &Results{Channels: []Channel{{}}}},
	} {
		words, err := tr.ContextWords()
		assert.NoError(t, err)
		assert.Nil(t, words)
	}

	// A present-but-empty list is still a structural violation.
	_, err := (&Transcript{Results: &Results{Channels: []Channel{}}}).ContextWords()
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "channels", formatErr.Field)

	_, err = (&Transcript{Results: &Results{Channels: []Channel{
		{Alternatives: []Alternative{}},
	}}}).ContextWords()
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "alternatives", formatErr.Field)
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Field: "results"}
	assert.Equal(t, "invalid transcript format: missing or invalid 'results' field", err.Error())
	assert.True(t, errors.As(error(err), new(*FormatError)))
}
