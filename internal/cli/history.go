package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetcap/internal/store"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent pipeline runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			h, err := store.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer h.Close()

			entries, err := h.List(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.ID)
				fmt.Printf("  audio:      %s\n", e.AudioPath)
				fmt.Printf("  transcript: %s (%d words, %d speakers)\n",
					e.TranscriptPath, e.WordCount, e.SpeakerCount)
				if e.SummaryPath != "" {
					fmt.Printf("  summary:    %s\n", e.SummaryPath)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}
