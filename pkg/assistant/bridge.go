package assistant

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// Answer is the bridge's result. Fallback is true when the provider failed
// and the text was built locally from the context summary.
type Answer struct {
	Text     string `json:"answer"`
	Fallback bool   `json:"fallback"`
}

// Bridge forwards free-text questions to a chat provider and degrades to a
// deterministic local answer when the provider is unreachable. The local
// answer is templated purely from the caller's context summary, so it never
// states a number the dashboard did not compute.
type Bridge struct {
	provider Provider
	logger   *zap.Logger
}

// NewBridge wires an explicit provider, mainly for tests.
func NewBridge(provider Provider, logger *zap.Logger) *Bridge {
	return &Bridge{provider: provider, logger: logger}
}

// NewBridgeFromEnv picks OpenAI when OPENAI_API_KEY is set and the local
// Ollama server otherwise.
func NewBridgeFromEnv(logger *zap.Logger) *Bridge {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return NewBridge(NewOpenAI(key), logger)
	}
	return NewBridge(NewOllama(), logger)
}

// Ask sends the question, prefixed by the context summary when present. A
// provider failure is not an error for the caller: the local templated
// answer is returned with Fallback set.
func (b *Bridge) Ask(ctx context.Context, query, contextSummary string) Answer {
	question := query
	if contextSummary != "" {
		question = contextSummary + "\n\nQuestion: " + query
	}

	text, err := b.provider.Chat(ctx, SystemPrompt, question)
	if err == nil && text != "" {
		return Answer{Text: text}
	}
	if err != nil {
		b.logger.Warn("Chat provider failed, using local insight",
			zap.String("provider", b.provider.Name()),
			zap.Error(err))
	}
	return Answer{Text: LocalInsight(contextSummary), Fallback: true}
}

// LocalInsight is the deterministic fallback answer.
func LocalInsight(contextSummary string) string {
	if contextSummary == "" {
		return "Not enough data to answer yet."
	}
	return "Based on the dashboard data: " + contextSummary + " (local insight)"
}
