package speaker

import (
	"errors"
	"fmt"
)

// ErrNoSpeakers is returned when a structurally valid transcript contains no
// identifiable speakers. It is distinguishable from a format failure so
// callers can treat "empty but well-formed" separately from "malformed".
var ErrNoSpeakers = errors.New("no speaker labels found in transcript")

// ErrInvalidContextWords rejects a negative context size. It is checked
// before any transcript access.
var ErrInvalidContextWords = errors.New("contextWords must be a non-negative integer")

// NotFoundError is returned when a requested speaker label matches no words.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no words found for %s", e.Label)
}
