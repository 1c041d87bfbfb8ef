package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FormatError reports the first structural expectation a transcript violated.
// The transcript format always nests four levels deep (results -> channels ->
// alternatives -> words) with a singleton-like first channel/alternative;
// centralizing the checks here makes every consumer fail the same way instead
// of producing index errors at arbitrary call sites.
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid transcript format: missing or invalid '%s' field", e.Field)
}

// Load reads and decodes a UTF-8 JSON transcript from path. A decode failure
// on one of the structural fields is reported as a *FormatError naming the
// field; everything else wraps the underlying cause.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript file: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &FormatError{Field: lastFieldSegment(typeErr.Field)}
		}
		return nil, fmt.Errorf("reading transcript file: %w", err)
	}
	return &t, nil
}

// Save writes the transcript back as indented JSON, overwriting path.
func (t *Transcript) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving updated transcript: %w", err)
	}
	return nil
}

// Words validates the nested structure and returns the flat word sequence.
// channels and alternatives must be present and non-empty; only words may
// legitimately be empty. The error names the first violated field.
func (t *Transcript) Words() ([]*Word, error) {
	if t == nil || t.Results == nil {
		return nil, &FormatError{Field: "results"}
	}
	if len(t.Results.Channels) == 0 {
		return nil, &FormatError{Field: "channels"}
	}
	if len(t.Results.Channels[0].Alternatives) == 0 {
		return nil, &FormatError{Field: "alternatives"}
	}
	words := t.Results.Channels[0].Alternatives[0].Words
	if words == nil {
		return nil, &FormatError{Field: "words"}
	}
	return words, nil
}

// ContextWords is the lenient read-only path used by context lookups: absent
// nesting yields an empty sequence, while a present-but-empty channels or
// alternatives list is still a format error naming the field, so callers get
// a precise diagnosis instead of an index panic.
func (t *Transcript) ContextWords() ([]*Word, error) {
	if t == nil || t.Results == nil || t.Results.Channels == nil {
		return nil, nil
	}
	if len(t.Results.Channels) == 0 {
		return nil, &FormatError{Field: "channels"}
	}
	alts := t.Results.Channels[0].Alternatives
	if alts == nil {
		return nil, nil
	}
	if len(alts) == 0 {
		return nil, &FormatError{Field: "alternatives"}
	}
	return alts[0].Words, nil
}

func lastFieldSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
