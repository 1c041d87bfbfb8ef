package summary

import "fmt"

// BuildPrompt builds the system and user prompts for meeting-note
// generation. The transcript is expected in the simplifier's flattened
// form, one "<speaker>: <utterance>" line per turn.
func BuildPrompt(transcriptText string) (string, string) {
	systemPrompt := `You are a meeting assistant that writes concise, factual notes.
You must be accurate and neutral.
Do NOT invent information; use only what is in the transcript.
Attribute statements to the speaker names given in the transcript.
Ignore greetings, mic testing and small talk.`

	userPrompt := fmt.Sprintf(`Transcript:
"""
%s
"""

Write meeting notes in markdown with the following sections:
1. "## Summary" - at most 5 bullet points.
2. "## Action items" - tasks with owners where the transcript names one (may be empty).
3. "## Key points" - important facts, figures, names or commitments (may be empty).

Rules:
- Every bullet must be grounded in the transcript.
- Keep each bullet to a single sentence.
- If a section has no content, write "None".`, transcriptText)

	return systemPrompt, userPrompt
}
