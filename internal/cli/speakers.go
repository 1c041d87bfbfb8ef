package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"meetcap/internal/speaker"
)

func newSpeakersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakers",
		Short: "Inspect and resolve speaker labels in a transcript",
	}
	cmd.AddCommand(newSpeakersMapCmd(), newSpeakersIdentifyCmd())
	return cmd
}

func newSpeakersMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <transcript.json>",
		Short: "Interactively map speaker labels to names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := runSpeakerMap(args[0])
			if err != nil {
				return err
			}
			printMapping(mapping)
			return nil
		},
	}
}

// runSpeakerMap resolves speakers in the transcript at path using the
// interactive prompt namer and returns the resulting mapping.
func runSpeakerMap(path string) (map[string]string, error) {
	fmt.Println("\nDetected speakers:")
	mapper := speaker.NewMapper(nil)
	return mapper.CreateMapping(path)
}

func printMapping(mapping map[string]string) {
	labels := make([]string, 0, len(mapping))
	for label := range mapping {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Println("\nSpeaker mapping:")
	for _, label := range labels {
		fmt.Printf("%s => %s\n", label, mapping[label])
	}
}

func newSpeakersIdentifyCmd() *cobra.Command {
	var (
		label        string
		contextWords int
	)
	cmd := &cobra.Command{
		Use:   "identify <transcript.json>",
		Short: "Show context for one or all speakers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapper := speaker.NewMapper(nil)
			if label != "" {
				c, err := mapper.IdentifySpeaker(args[0], label, contextWords)
				if err != nil {
					return err
				}
				printContext(c)
				return nil
			}
			contexts, err := mapper.IdentifyAll(args[0], contextWords)
			if err != nil {
				return err
			}
			for i := range contexts {
				printContext(&contexts[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "speaker", "", "Specific speaker label (e.g. \"Speaker 1\")")
	cmd.Flags().IntVar(&contextWords, "context-words", speaker.DefaultContextWords, "Number of words of context")
	return cmd
}

func printContext(c *speaker.Context) {
	fmt.Println(c.Label)
	fmt.Printf("  words: %s\n", strings.Join(c.Words, " "))
	if c.Start != nil {
		fmt.Printf("  start: %.2fs\n", *c.Start)
	}
	if c.End != nil {
		fmt.Printf("  end:   %.2fs\n", *c.End)
	}
}
