// Package aigen generates fresh challenges through the OpenAI chat API.
package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Challenge is a generated two-variant quiz. CorrectAnswer is 1 or 2.
type Challenge struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	TechStack     string `json:"-"`
	Difficulty    string `json:"-"`
	CodeA         string `json:"codeSnippet1"`
	CodeB         string `json:"codeSnippet2"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// Generator wraps an OpenAI client with a fixed model and per-call timeout.
type Generator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// New builds a Generator. Returns nil when apiKey is empty, which callers
// treat as "AI generation disabled".
func New(apiKey, model string, timeout time.Duration) *Generator {
	if apiKey == "" {
		return nil
	}
	return &Generator{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

const systemPrompt = "You are a code quiz author. You respond with a single JSON object and nothing else."

func userPrompt(techStack, difficulty string) string {
	return fmt.Sprintf(`Create a code guessing game for the %s technology, aimed at %s level developers.

Respond with JSON in exactly this shape:
{
    "title": "short title",
    "description": "one sentence description",
    "codeSnippet1": "first code variant",
    "codeSnippet2": "second code variant",
    "correctAnswer": 1 or 2,
    "explanation": "why the correct variant is right"
}

Requirements:
1. One variant must be correct, the other subtly wrong or inefficient.
2. The flaw must be subtle, not an obvious syntax error.
3. Both variants must be realistic, practical code.
4. Focus on mistakes a %s level developer actually makes.

Technology: %s
Difficulty: %s`, techStack, difficulty, difficulty, techStack, difficulty)
}

// Generate asks the model for a new challenge. Any transport or parse
// failure comes back as an error; the caller falls through to the next
// challenge source.
func (g *Generator) Generate(ctx context.Context, techStack, difficulty string) (Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(techStack, difficulty)},
		},
	})
	if err != nil {
		return Challenge{}, fmt.Errorf("aigen: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Challenge{}, fmt.Errorf("aigen: no choices returned")
	}

	ch, err := parseChallenge(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn().Err(err).Str("model", g.model).Msg("discarding unparseable generation")
		return Challenge{}, err
	}
	ch.TechStack = techStack
	ch.Difficulty = difficulty
	return ch, nil
}

// parseChallenge strips an optional markdown code fence and decodes the
// JSON body. Models wrap JSON in ```json fences often enough that this
// is worth handling here.
func parseChallenge(raw string) (Challenge, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var ch Challenge
	if err := json.Unmarshal([]byte(clean), &ch); err != nil {
		return Challenge{}, fmt.Errorf("aigen: decode response: %w", err)
	}
	if ch.CorrectAnswer != 1 && ch.CorrectAnswer != 2 {
		return Challenge{}, fmt.Errorf("aigen: correctAnswer %d out of range", ch.CorrectAnswer)
	}
	if ch.CodeA == "" || ch.CodeB == "" {
		return Challenge{}, fmt.Errorf("aigen: missing code variant")
	}
	return ch, nil
}
