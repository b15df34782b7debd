package llamacpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rmaulana/llama-chat/internal/llm"
)

// Engine implements llm.Engine against a llama.cpp HTTP server.
type Engine struct {
	host   string
	client *http.Client

	// The server fronts a single model instance; one completion at a time.
	mu sync.Mutex
}

// NewEngine creates an engine talking to a llama.cpp server at host.
func NewEngine(host string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Engine{
		host:   strings.TrimSuffix(host, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Prompt        string   `json:"prompt"`
	NPredict      int      `json:"n_predict"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p"`
	RepeatPenalty float64  `json:"repeat_penalty"`
	Stop          []string `json:"stop,omitempty"`
	Stream        bool     `json:"stream"`
}

type completionResponse struct {
	Content         string `json:"content"`
	TokensPredicted int    `json:"tokens_predicted"`
}

// Complete runs one generation. Calls are serialized so at most one
// completion is in flight against the shared model instance.
func (e *Engine) Complete(ctx context.Context, prompt string, params llm.Params) (*llm.Completion, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	body, err := json.Marshal(completionRequest{
		Prompt:        prompt,
		NPredict:      params.MaxTokens,
		Temperature:   params.Temperature,
		TopP:          params.TopP,
		RepeatPenalty: params.RepeatPenalty,
		Stop:          params.Stop,
		Stream:        false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.host+"/completion", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llama.cpp server returned status %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &llm.Completion{
		Text:       strings.TrimSpace(out.Content),
		TokensUsed: out.TokensPredicted,
	}, nil
}
