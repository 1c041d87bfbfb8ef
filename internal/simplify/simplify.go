package simplify

import (
	"fmt"
	"strings"
	"time"

	"meetcap/internal/speaker"
	"meetcap/internal/transcript"
)

// Lines flattens a transcript into per-speaker utterance lines, grouping
// consecutive words from the same speaker. Each line has the form
// "<label>: <utterance>" where label is the resolved speaker_name when
// present, else the synthesized "Speaker <id>" form. Display text prefers
// the punctuated variant. A malformed document yields no lines.
func Lines(t *transcript.Transcript) []string {
	words, err := t.ContextWords()
	if err != nil || len(words) == 0 {
		return nil
	}

	var lines []string
	current := speaker.Label(words[0])
	var utterance []string
	for _, w := range words {
		label := speaker.Label(w)
		text := w.DisplayText()
		if label == current {
			utterance = append(utterance, text)
			continue
		}
		lines = append(lines, current+": "+strings.Join(utterance, " "))
		current = label
		utterance = []string{text}
	}
	if len(utterance) > 0 {
		lines = append(lines, current+": "+strings.Join(utterance, " "))
	}
	return lines
}

// Text renders the full simplified transcript: a recording-creation header
// followed by the utterance lines.
func Text(t *transcript.Transcript) string {
	return recordedAtLine(t) + "\n\n" + strings.Join(Lines(t), "\n")
}

// recordedAtLine formats metadata.created (ISO-8601) in UTC, or a
// placeholder when the timestamp is absent or unparsable.
func recordedAtLine(t *transcript.Transcript) string {
	if t == nil || t.Metadata == nil || t.Metadata.Created == "" {
		return "Recording created: (timestamp unavailable)"
	}
	created, err := time.Parse(time.RFC3339, t.Metadata.Created)
	if err != nil {
		return "Recording created: (timestamp unavailable)"
	}
	return fmt.Sprintf("Recording created: %s", created.UTC().Format("2006-01-02 15:04 MST"))
}
