package ai

import "context"

// Provider defines the contract for the LLM collaborator: a system prompt
// and a user message in, HTML-flavored freeform text out. It allows
// swapping providers (Gemini, OpenAI) behind the same planning code.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
