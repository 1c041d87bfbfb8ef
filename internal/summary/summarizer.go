package summary

import (
	"context"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"
)

// Summarizer turns a flattened transcript into meeting notes. The core
// packages never depend on this; it consumes the simplifier's text output.
type Summarizer interface {
	Summarize(ctx context.Context, transcriptText string) (string, error)
}

// OpenAISummarizer generates summaries via the OpenAI chat completion API.
type OpenAISummarizer struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAISummarizer creates a summarizer. model defaults to GPT-4o-mini
// when empty.
func NewOpenAISummarizer(apiKey, model string, temperature float32) (*OpenAISummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISummarizer{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}, nil
}

// Summarize sends the transcript to the model and returns the generated
// markdown notes.
func (s *OpenAISummarizer) Summarize(ctx context.Context, transcriptText string) (string, error) {
	systemPrompt, userPrompt := BuildPrompt(transcriptText)

	log.Printf("[summary] transcript length: %d characters, model: %s", len(transcriptText), s.model)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	log.Printf("[summary] usage - prompt tokens: %d, completion tokens: %d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
