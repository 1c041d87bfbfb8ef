package speaker

import (
	"strings"

	"meetcap/internal/transcript"
)

// Context is a read-only report for one speaker: a bounded excerpt of their
// words plus the first/last timestamps tracked over the full matching word
// sequence, not just the excerpt.
type Context struct {
	Label string
	Words []string
	Start *float64
	End   *float64
}

// matches applies the lookup rule, which is deliberately broader than label
// derivation: an assigned speaker_name matches exactly, and a synthesized
// "Speaker X" label also matches on the raw identifier (compared as text)
// even when the word already carries a different speaker_name. Raw-id
// matching never applies to labels outside the synthesized form.
func matches(w *transcript.Word, label string) bool {
	if w.SpeakerName != "" && w.SpeakerName == label {
		return true
	}
	if strings.HasPrefix(label, labelPrefix) && w.HasSpeaker() {
		fields := strings.Fields(label)
		if len(fields) > 0 && w.SpeakerID() == fields[len(fields)-1] {
			return true
		}
	}
	return false
}

// GetContext walks all words matching label in original order and builds the
// speaker's context window. The excerpt is truncated to contextWords entries
// (zero yields an empty excerpt); timestamps always come from the full match
// set. Start is the start time of the first matching word with a resolvable
// start; End is the end time of the last matching word with a resolvable end,
// so a trailing word without one does not erase an earlier capture.
func GetContext(t *transcript.Transcript, label string, contextWords int) (*Context, error) {
	if contextWords < 0 {
		return nil, ErrInvalidContextWords
	}
	words, err := t.ContextWords()
	if err != nil {
		return nil, err
	}

	var spoken []string
	var start, end *float64
	for _, w := range words {
		if !matches(w, label) {
			continue
		}
		spoken = append(spoken, w.SpokenText())
		if start == nil {
			if s, ok := w.StartSeconds(); ok {
				start = &s
			}
		}
		if e, ok := w.EndSeconds(); ok {
			end = &e
		}
	}
	if len(spoken) == 0 {
		return nil, &NotFoundError{Label: label}
	}

	if contextWords == 0 {
		spoken = []string{}
	} else if len(spoken) > contextWords {
		spoken = spoken[:contextWords]
	}
	return &Context{Label: label, Words: spoken, Start: start, End: end}, nil
}

// IdentifySpeaker loads the transcript at path and returns the context for a
// single speaker label.
func (m *Mapper) IdentifySpeaker(path, label string, contextWords int) (*Context, error) {
	t, err := transcript.Load(path)
	if err != nil {
		return nil, err
	}
	return GetContext(t, label, contextWords)
}

// IdentifyAll loads the transcript at path and returns one context per
// speaker, in sorted label order. A speaker whose context extraction fails is
// skipped rather than failing the whole call; ErrNoSpeakers is returned only
// when nothing remains.
func (m *Mapper) IdentifyAll(path string, contextWords int) ([]Context, error) {
	if contextWords < 0 {
		return nil, ErrInvalidContextWords
	}
	t, err := transcript.Load(path)
	if err != nil {
		return nil, err
	}
	speakers, err := ExtractSpeakers(t)
	if err != nil {
		return nil, err
	}
	contexts := make([]Context, 0, len(speakers))
	for _, label := range speakers {
		c, err := GetContext(t, label, contextWords)
		if err != nil {
			continue
		}
		contexts = append(contexts, *c)
	}
	if len(contexts) == 0 {
		return nil, ErrNoSpeakers
	}
	return contexts, nil
}
