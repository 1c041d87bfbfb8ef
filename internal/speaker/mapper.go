package speaker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"meetcap/internal/transcript"
)

// labelPrefix is the synthesized-label form for speakers without a name.
const labelPrefix = "Speaker "

// DefaultContextWords is the context window size used when the caller does
// not specify one.
const DefaultContextWords = 10

// Label derives the canonical identity for a word: an existing speaker_name
// verbatim, else the synthesized "Speaker <id>" form.
func Label(w *transcript.Word) string {
	if w.SpeakerName != "" {
		return w.SpeakerName
	}
	return labelPrefix + w.SpeakerID()
}

// ExtractSpeakers scans every word and collects the distinct derived labels
// of words carrying a speaker identifier, sorted lexicographically so that
// downstream iteration (and the order names are requested from a user) is
// reproducible. Returns ErrNoSpeakers when the scan finds none.
func ExtractSpeakers(t *transcript.Transcript) ([]string, error) {
	words, err := t.Words()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, w := range words {
		if !w.HasSpeaker() {
			continue
		}
		seen[Label(w)] = struct{}{}
	}
	if len(seen) == 0 {
		return nil, ErrNoSpeakers
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

// NamerFunc supplies a human name for a speaker label. It is invoked once
// per distinct speaker, synchronously; an error aborts mapping creation and
// propagates to the caller.
type NamerFunc func(label string) (string, error)

// Mapper resolves anonymous speaker labels to names in transcript files.
type Mapper struct {
	namer NamerFunc
}

// NewMapper builds a Mapper with the given naming strategy. A nil namer
// falls back to an interactive stdin prompt.
func NewMapper(namer NamerFunc) *Mapper {
	if namer == nil {
		namer = PromptNamer(os.Stdin, os.Stdout)
	}
	return &Mapper{namer: namer}
}

// PromptNamer returns a NamerFunc that asks for each name interactively.
func PromptNamer(in io.Reader, out io.Writer) NamerFunc {
	reader := bufio.NewReader(in)
	return func(label string) (string, error) {
		fmt.Fprintf(out, "Enter name for %s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading name for %s: %w", label, err)
		}
		return strings.TrimSpace(line), nil
	}
}

// CreateMapping loads the transcript at path, asks the naming strategy for a
// name per speaker (in sorted label order), writes the resolved names onto
// the words and persists the transcript back to the same path. The returned
// mapping is label -> name.
func (m *Mapper) CreateMapping(path string) (map[string]string, error) {
	t, err := transcript.Load(path)
	if err != nil {
		return nil, err
	}
	speakers, err := ExtractSpeakers(t)
	if err != nil {
		return nil, err
	}
	mapping := make(map[string]string, len(speakers))
	for _, label := range speakers {
		name, err := m.namer(label)
		if err != nil {
			return nil, fmt.Errorf("naming %s: %w", label, err)
		}
		mapping[label] = name
	}
	if err := ApplyMapping(t, mapping); err != nil {
		return nil, err
	}
	if err := t.Save(path); err != nil {
		return nil, err
	}
	return mapping, nil
}

// ApplyMapping writes resolved names onto words that carry a speaker id and
// no name yet; words with an existing speaker_name are left untouched, so
// re-applying the same mapping is a no-op.
func ApplyMapping(t *transcript.Transcript, mapping map[string]string) error {
	words, err := t.Words()
	if err != nil {
		return err
	}
	for _, w := range words {
		if !w.HasSpeaker() || w.SpeakerName != "" {
			continue
		}
		if name, ok := mapping[labelPrefix+w.SpeakerID()]; ok {
			w.SpeakerName = name
		}
	}
	return nil
}
