package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"meetcap/internal/config"
	"meetcap/internal/simplify"
	"meetcap/internal/summary"
	"meetcap/internal/transcript"
)

func newSummarizeCmd(configPath *string) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "summarize <transcript.json>",
		Short: "Generate meeting notes from a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			path, err := runSummarize(cmd.Context(), cfg, args[0], output)
			if err != nil {
				return err
			}
			fmt.Printf("Summary saved to: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output filename")
	return cmd
}

// runSummarize flattens the transcript, writes the plain-text sidecar next to
// it, sends the text to the summarizer and writes the markdown notes.
// Returns the summary path.
func runSummarize(ctx context.Context, cfg *config.Config, transcriptPath, output string) (string, error) {
	t, err := transcript.Load(transcriptPath)
	if err != nil {
		return "", err
	}
	text := simplify.Text(t)

	sidecar := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath)) + ".txt"
	if err := os.WriteFile(sidecar, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("saving simplified transcript: %w", err)
	}

	s, err := summary.NewOpenAISummarizer(os.Getenv("OPENAI_API_KEY"), cfg.Summary.Model, cfg.Summary.Temperature)
	if err != nil {
		return "", err
	}
	notes, err := s.Summarize(ctx, text)
	if err != nil {
		return "", err
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
		filename := fmt.Sprintf("%s_%s_summary.md", time.Now().Format("2006-01-02_1504"), base)
		outputPath, err = cfg.OutputPath("summary", filename, true)
		if err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(outputPath, []byte(notes), 0o644); err != nil {
		return "", fmt.Errorf("saving summary: %w", err)
	}
	return outputPath, nil
}
