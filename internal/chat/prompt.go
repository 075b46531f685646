package chat

import (
	"fmt"
	"strings"

	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
)

// NothingToSummarize is returned by Summary for an empty conversation.
const NothingToSummarize = "No conversation to summarize."

const personaPreamble = `You are a compassionate and empathetic AI therapist. Give supportive, non-judgmental responses and keep professional boundaries. Focus on:

1. Active listening and validation
2. Emotional support and understanding
3. Gentle guidance and coping strategies
4. Safety and professional referral when needed

Guidelines:
* Use a warm, empathetic tone
* Ask clarifying questions
* Validate emotions and experiences
* Suggest practical coping strategies
* Maintain appropriate boundaries

Safety Protocol:
* Suicidal thoughts: direct the user to immediate professional help
* Serious mental health concerns: recommend therapy
* No medical diagnoses
* No prescriptions or medical advice

Reference Examples:`

const closingInstruction = "Respond as a compassionate therapist while following all guidelines above."

const summaryInstruction = `Please provide a concise summary of the following therapy conversation, highlighting:
1. Main topics discussed
2. User's key concerns
3. Your therapeutic approaches used
4. Any action items or recommendations given`

// buildPrompt assembles one outbound message: preamble, retrieved examples,
// the history window, the closing instruction, then the new user message.
func buildPrompt(examples []rag.Example, window []model.Turn, message string) string {
	var b strings.Builder
	b.WriteString(personaPreamble)

	if ctx := formatExamples(examples); ctx != "" {
		b.WriteString("\n")
		b.WriteString(ctx)
	}

	if len(window) > 0 {
		b.WriteString("\n\nConversation History:\n")
		b.WriteString(formatHistory(window))
	}

	b.WriteString("\n\n")
	b.WriteString(closingInstruction)
	b.WriteString("\n\nUser: ")
	b.WriteString(message)
	return b.String()
}

func buildSummaryPrompt(window []model.Turn) string {
	return summaryInstruction + "\n\nConversation:\n" + formatHistory(window)
}

func formatExamples(examples []rag.Example) string {
	parts := make([]string, 0, len(examples))
	for i, ex := range examples {
		parts = append(parts, fmt.Sprintf("Example %d:\n%s", i+1, ex.Text))
	}
	return strings.Join(parts, "\n\n")
}

func formatHistory(turns []model.Turn) string {
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = t.Role.Label() + ": " + t.Content
	}
	return strings.Join(lines, "\n")
}
