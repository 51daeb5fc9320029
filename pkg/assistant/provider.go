package assistant

import "context"

// SystemPrompt frames the chat provider as the dashboard's co-pilot.
const SystemPrompt = "You are a helpful energy-data co-pilot embedded in a MER/SEDS dashboard. " +
	"When a user asks for a chart update, confirm that the dashboard view adjusts accordingly " +
	"(e.g., switch the choropleth to NUETB). When the user asks a broader question that is not " +
	"satisfied by the provided summary, answer using your general knowledge—just avoid " +
	"contradicting the summary. Never claim the data is missing if the dashboard could plausibly " +
	"show it; instead, describe how to inspect the view or, for general analytical questions, " +
	"provide the best explanation you can."

// Provider is a chat-completion backend. Chat returns the assistant's answer
// text for a single system+user exchange.
type Provider interface {
	Name() string
	Chat(ctx context.Context, system, user string) (string, error)
}

// chatMessage is the wire shape shared by the OpenAI and Ollama chat APIs.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
