package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"meetcap/internal/speaker"
	"meetcap/internal/store"
	"meetcap/internal/transcript"
)

func newPipelineCmd(configPath *string) *cobra.Command {
	var skipSummary bool
	cmd := &cobra.Command{
		Use:   "pipeline <audio-file>",
		Short: "Transcribe, map speakers, and summarize in one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			audioPath := args[0]

			transcriptPath, err := runTranscribe(cmd.Context(), cfg, audioPath, "")
			if err != nil {
				return err
			}
			fmt.Printf("Transcript saved to: %s\n", transcriptPath)

			if _, err := runSpeakerMap(transcriptPath); err != nil {
				return err
			}

			summaryPath := ""
			if !skipSummary {
				summaryPath, err = runSummarize(cmd.Context(), cfg, transcriptPath, "")
				if err != nil {
					return err
				}
				fmt.Printf("Summary saved to: %s\n", summaryPath)
			}

			if err := recordRun(cfg.History.Path, audioPath, transcriptPath, summaryPath); err != nil {
				// The run artifacts already exist on disk; a history failure
				// should not fail the pipeline.
				log.Printf("[pipeline] failed to record history entry: %v", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipSummary, "skip-summary", false, "Stop after speaker mapping")
	return cmd
}

func recordRun(dbPath, audioPath, transcriptPath, summaryPath string) error {
	t, err := transcript.Load(transcriptPath)
	if err != nil {
		return err
	}
	words, err := t.ContextWords()
	if err != nil {
		return err
	}
	speakers, err := speaker.ExtractSpeakers(t)
	if err != nil {
		return err
	}

	h, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.Add(&store.Entry{
		AudioPath:      audioPath,
		TranscriptPath: transcriptPath,
		SummaryPath:    summaryPath,
		WordCount:      len(words),
		SpeakerCount:   len(speakers),
	})
}
