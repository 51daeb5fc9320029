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

const (
	openAIEndpoint  = "https://api.openai.com/v1/chat/completions"
	openAIModel     = "gpt-3.5-turbo"
	openAITemp      = 0.4
	openAIMaxTokens = 180
)

// OpenAI calls the OpenAI chat-completions API.
type OpenAI struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewOpenAI builds the provider. An empty endpoint or model falls back to
// the defaults; the key is required by the caller.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		apiKey:   apiKey,
		model:    utils.Env("OPENAI_MODEL", openAIModel),
		endpoint: utils.Env("OPENAI_ENDPOINT", openAIEndpoint),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenAI) Name() string { return "openai" }

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAI) Chat(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(openAIRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: openAITemp,
		MaxTokens:   openAIMaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = utils.DrainAndClose(resp.Body) }()

	var decoded openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("openai: decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil && decoded.Error.Message != "" {
			return "", fmt.Errorf("openai: %s", decoded.Error.Message)
		}
		return "", fmt.Errorf("openai: request failed with status %d", resp.StatusCode)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("openai: response contained no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
