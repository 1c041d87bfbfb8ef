package transcribe

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"meetcap/internal/transcript"
)

// Provider is the interface for transcription backends. A backend takes an
// audio file and produces a diarized transcript in the nested schema.
type Provider interface {
	Transcribe(ctx context.Context, audioPath string) (*transcript.Transcript, error)

	// Name returns the backend name (e.g. "whisper").
	Name() string
}

// Settings holds the runtime parameters for a transcription backend.
type Settings struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

// CreateProvider creates a transcription provider from settings. Only local
// backends are supported; audio never leaves the machine.
func CreateProvider(s Settings) (Provider, error) {
	name := strings.ToLower(s.Provider)
	if name == "" {
		name = "whisper"
		log.Printf("[transcribe] provider not set, defaulting to 'whisper'")
	}

	switch name {
	case "whisper":
		return NewWhisperProvider(s.Model, s.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s. Supported: whisper", name)
	}
}
