package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v4/json"

	"github.com/gridlens/gridlens/pkg/utils"
)

// Ollama calls a local Ollama server's chat API.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama builds the provider from OLLAMA_URL and OLLAMA_MODEL.
func NewOllama() *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(utils.Env("OLLAMA_URL", "http://localhost:11434"), "/"),
		model:   utils.Env("OLLAMA_MODEL", "llama3"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *Ollama) Name() string { return "ollama" }

type ollamaRequest struct {
	Model    string        `json:"model"`
	Stream   bool          `json:"stream"`
	Messages []chatMessage `json:"messages"`
}

type ollamaResponse struct {
	Message *chatMessage `json:"message"`
	Error   string       `json:"error"`
}

func (o *Ollama) Chat(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(ollamaRequest{
		Model:  o.model,
		Stream: false,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = utils.DrainAndClose(resp.Body) }()

	var decoded ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("ollama: decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return "", fmt.Errorf("ollama: %s", decoded.Error)
		}
		return "", fmt.Errorf("ollama: request failed with status %d", resp.StatusCode)
	}
	if decoded.Message == nil || decoded.Message.Content == "" {
		return "", errors.New("ollama: response contained no message")
	}
	return strings.TrimSpace(decoded.Message.Content), nil
}
