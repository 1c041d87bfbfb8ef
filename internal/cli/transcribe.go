package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"meetcap/internal/config"
	"meetcap/internal/transcribe"
)

func newTranscribeCmd(configPath *string) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			path, err := runTranscribe(cmd.Context(), cfg, args[0], output)
			if err != nil {
				return err
			}
			fmt.Printf("Transcription completed successfully\n")
			fmt.Printf("Transcript saved to: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output filename")
	return cmd
}

// runTranscribe runs the configured backend on audioPath, applies the
// fallback diarization heuristic when the backend produced no speaker ids,
// and writes the transcript JSON. Returns the transcript path.
func runTranscribe(ctx context.Context, cfg *config.Config, audioPath, output string) (string, error) {
	provider, err := transcribe.CreateProvider(transcribe.Settings{
		Provider: cfg.Transcription.Provider,
		Model:    cfg.Transcription.Model,
		Timeout:  cfg.TranscriptionTimeout(),
	})
	if err != nil {
		return "", err
	}

	t, err := provider.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}
	if err := transcribe.AssignSpeakers(t); err != nil {
		return "", err
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
		filename := fmt.Sprintf("%s_%s_transcript.json", time.Now().Format("2006-01-02_1504"), base)
		outputPath, err = cfg.OutputPath("transcription", filename, true)
		if err != nil {
			return "", err
		}
	}
	if err := t.Save(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}
