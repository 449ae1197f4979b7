package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an empty or unusable OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultSystemPrompt = `You are a non-medical nutrition and lifestyle coach.

You receive the output of a deterministic recommendation engine for a single
user: hard dietary constraints, ranked protocol priorities, daily nutrient
targets, and real-world limits (time, budget, kitchen access). Base your
explanation only on the provided data.

Your goals:
- Explain the top-ranked protocols in plain language and why they rank where
  they do given the user's state.
- Translate the nutrient targets into everyday food terms.
- Respect every hard constraint: forbidden foods must never appear, even as
  examples or "for others" options.
- Keep suggestions inside the stated time, budget, and kitchen limits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus on behavior and routines only.
- Be concise and concrete. Respond in plain prose, no markdown headers.`

const userPromptTemplate = `Here is the engine output for this user.

%s

Explain this plan to the user in a few short paragraphs.`

// CoachLLM turns engine output into a conversational explanation.
type CoachLLM interface {
	Explain(ctx context.Context, planContext string) (string, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI coach client.
// Returns nil if apiKey is empty. systemPrompt overrides the built-in
// prompt when non-empty (it is usually loaded from Langfuse).
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Explain calls OpenAI with the rendered plan context.
func (c *OpenAIClient) Explain(ctx context.Context, planContext string) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, planContext)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrOpenAIResponse)
	}

	return content, nil
}
