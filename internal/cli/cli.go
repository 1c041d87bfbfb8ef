package cli

import (
	"github.com/spf13/cobra"

	"meetcap/internal/config"
)

// New builds the meetcap command tree. All transcript semantics live in the
// core packages; the commands here only parse arguments and render results.
func New() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "meetcap",
		Short:         "Record, transcribe, and summarize meetings",
		Long:          "meetcap - capture a meeting, resolve who said what, and produce notes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	root.AddCommand(
		newPipelineCmd(&configPath),
		newTranscribeCmd(&configPath),
		newSpeakersCmd(),
		newSummarizeCmd(&configPath),
		newHistoryCmd(&configPath),
	)
	return root
}

func loadConfig(path *string) (*config.Config, error) {
	return config.Load(*path)
}
