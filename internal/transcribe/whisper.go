package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"meetcap/internal/transcript"
)

// WhisperProvider runs OpenAI Whisper locally via "python -m whisper" and
// converts its JSON output into the nested transcript schema.
type WhisperProvider struct {
	model   string
	timeout time.Duration
}

// NewWhisperProvider creates a local whisper backend. model defaults to
// "base" when empty.
func NewWhisperProvider(model string, timeout time.Duration) *WhisperProvider {
	if model == "" {
		model = "base"
	}
	return &WhisperProvider{model: model, timeout: timeout}
}

// Name returns the backend name.
func (p *WhisperProvider) Name() string { return "whisper" }

// Transcribe runs whisper on audioPath and returns the parsed transcript.
func (p *WhisperProvider) Transcribe(ctx context.Context, audioPath string) (*transcript.Transcript, error) {
	absPath, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, fmt.Errorf("resolving audio path: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "meetcap-whisper-")
	if err != nil {
		return nil, fmt.Errorf("creating whisper output directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	log.Printf("[whisper] transcribing %s with model %s", audioPath, p.model)

	cmd := exec.CommandContext(ctx, "python", "-m", "whisper",
		absPath,
		"--model", p.model,
		"--output_dir", tempDir,
		"--output_format", "json",
		"--word_timestamps", "True",
		"--fp16", "False",
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w\noutput: %s", err, output)
	}

	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(tempDir, baseName+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading whisper output: %w", err)
	}

	t, err := ParseWhisperOutput(data)
	if err != nil {
		return nil, err
	}
	t.Metadata.Created = time.Now().UTC().Format(time.RFC3339)
	return t, nil
}

// whisperOutput mirrors whisper's JSON output file.
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
		Words []struct {
			Word        string  `json:"word"`
			Start       float64 `json:"start"`
			End         float64 `json:"end"`
			Probability float64 `json:"probability"`
		} `json:"words"`
	} `json:"segments"`
}

// ParseWhisperOutput converts whisper JSON into a single-channel,
// single-alternative transcript. Word-level timestamps are used when the run
// produced them; otherwise segment text is split into bare words.
func ParseWhisperOutput(data []byte) (*transcript.Transcript, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing whisper output: %w", err)
	}

	var words []*transcript.Word
	var duration float64
	for _, seg := range out.Segments {
		if seg.End > duration {
			duration = seg.End
		}
		if len(seg.Words) == 0 {
			for _, tok := range strings.Fields(seg.Text) {
				words = append(words, &transcript.Word{Word: tok})
			}
			continue
		}
		for _, wd := range seg.Words {
			conf := wd.Probability
			words = append(words, &transcript.Word{
				Word:           strings.TrimSpace(wd.Word),
				PunctuatedWord: strings.TrimSpace(wd.Word),
				Confidence:     &conf,
				Start:          transcript.NumberValue(wd.Start),
				End:            transcript.NumberValue(wd.End),
			})
		}
	}
	if words == nil {
		words = []*transcript.Word{}
	}

	return &transcript.Transcript{
		Metadata: &transcript.Metadata{
			Duration: duration,
			Channels: 1,
		},
		Results: &transcript.Results{
			Channels: []transcript.Channel{{
				Alternatives: []transcript.Alternative{{
					Transcript: strings.TrimSpace(out.Text),
					Words:      words,
				}},
			}},
		},
	}, nil
}
