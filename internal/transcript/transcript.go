package transcript

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Transcript is a diarized speech-to-text document as produced by a
// transcription service: results -> channels -> alternatives -> words.
// The first channel/alternative carry the word sequence used everywhere.
type Transcript struct {
	Metadata *Metadata `json:"metadata,omitempty"`
	Results  *Results  `json:"results,omitempty"`
}

// Metadata carries document-level info. Only Created is consumed here
// (by the simplifier header); the rest is kept for round-tripping.
type Metadata struct {
	RequestID string  `json:"request_id,omitempty"`
	Created   string  `json:"created,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	Channels  int     `json:"channels,omitempty"`
}

type Results struct {
	Channels []Channel `json:"channels"`
}

type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

type Alternative struct {
	Transcript string   `json:"transcript,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Words      []*Word  `json:"words"`
}

// Word is one diarized token. Services disagree on field names, so both
// variants of the text and timestamp fields are modeled explicitly; the
// accessor methods below apply the fixed priority order.
type Word struct {
	Word              string     `json:"word,omitempty"`
	Text              string     `json:"text,omitempty"`
	PunctuatedWord    string     `json:"punctuated_word,omitempty"`
	Confidence        *float64   `json:"confidence,omitempty"`
	Speaker           *FlexValue `json:"speaker,omitempty"`
	SpeakerConfidence *float64   `json:"speaker_confidence,omitempty"`
	SpeakerName       string     `json:"speaker_name,omitempty"`
	StartTime         *FlexValue `json:"start_time,omitempty"`
	Start             *FlexValue `json:"start,omitempty"`
	EndTime           *FlexValue `json:"end_time,omitempty"`
	End               *FlexValue `json:"end,omitempty"`
}

// HasSpeaker reports whether the word carries a speaker identifier.
// Words without one are ignored by all speaker-related operations.
func (w *Word) HasSpeaker() bool {
	return w.Speaker != nil
}

// SpeakerID returns the raw speaker identifier as text ("" when absent).
func (w *Word) SpeakerID() string {
	if w.Speaker == nil {
		return ""
	}
	return w.Speaker.String()
}

// SpokenText returns the token content: "text" first, then "word".
func (w *Word) SpokenText() string {
	if w.Text != "" {
		return w.Text
	}
	return w.Word
}

// DisplayText returns the content preferred for human-readable output:
// "punctuated_word" first, then "word".
func (w *Word) DisplayText() string {
	if w.PunctuatedWord != "" {
		return w.PunctuatedWord
	}
	return w.Word
}

// StartSeconds resolves the start timestamp: "start_time" first, then "start".
func (w *Word) StartSeconds() (float64, bool) {
	for _, v := range []*FlexValue{w.StartTime, w.Start} {
		if v != nil {
			if f, ok := v.Float64(); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// EndSeconds resolves the end timestamp: "end_time" first, then "end".
func (w *Word) EndSeconds() (float64, bool) {
	for _, v := range []*FlexValue{w.EndTime, w.End} {
		if v != nil {
			if f, ok := v.Float64(); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// FlexValue holds a JSON scalar that transcription services emit either as a
// string or as a number (speaker ids, timestamps). The raw form is retained
// so a load/mutate/save cycle re-emits exactly what was read.
type FlexValue struct {
	raw json.RawMessage
}

// StringValue builds a FlexValue with a string representation.
func StringValue(s string) *FlexValue {
	raw, _ := json.Marshal(s)
	return &FlexValue{raw: raw}
}

// NumberValue builds a FlexValue with a numeric representation.
func NumberValue(f float64) *FlexValue {
	return &FlexValue{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// IntValue builds a FlexValue with an integer representation.
func IntValue(i int) *FlexValue {
	return &FlexValue{raw: json.RawMessage(strconv.Itoa(i))}
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return fmt.Errorf("expected string or number, got %q", trimmed)
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	case '{', '[', 't', 'f':
		return fmt.Errorf("expected string or number, got %q", trimmed)
	default:
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return fmt.Errorf("expected string or number, got %q", trimmed)
		}
	}
	v.raw = append(v.raw[:0], data...)
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.raw == nil {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// String returns the scalar as text: the unquoted string, or the numeric
// literal as written ("1" stays "1", "1.5" stays "1.5").
func (v *FlexValue) String() string {
	if v == nil || v.raw == nil {
		return ""
	}
	if v.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(v.raw, &s); err == nil {
			return s
		}
	}
	return strings.TrimSpace(string(v.raw))
}

// Float64 parses the scalar as a float, whichever representation it uses.
func (v *FlexValue) Float64() (float64, bool) {
	if v == nil || v.raw == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
