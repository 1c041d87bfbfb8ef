package transcribe

import (
	"meetcap/internal/transcript"
)

// gapThreshold is the silence gap, in seconds, after which the heuristic
// switches speakers.
const gapThreshold = 1.5

// AssignSpeakers applies a minimal silence-gap heuristic to a transcript
// whose words carry no speaker identifiers: speakers alternate whenever the
// gap between consecutive words exceeds the threshold. Words that already
// carry a speaker id are never overwritten; in that case the whole pass is a
// no-op. This is a stand-in for a proper diarization pipeline and exists so
// local whisper output can flow through speaker mapping.
func AssignSpeakers(t *transcript.Transcript) error {
	words, err := t.Words()
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	for _, w := range words {
		if w.HasSpeaker() {
			return nil
		}
	}

	current := 0
	prevEnd, havePrev := words[0].EndSeconds()
	words[0].Speaker = transcript.IntValue(current)
	for _, w := range words[1:] {
		start, ok := w.StartSeconds()
		if ok && havePrev && start-prevEnd > gapThreshold {
			current = 1 - current
		}
		w.Speaker = transcript.IntValue(current)
		if end, ok := w.EndSeconds(); ok {
			prevEnd, havePrev = end, true
		}
	}
	return nil
}
