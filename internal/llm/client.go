package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when ChatParams.Model is empty.
const DefaultModel = "mistral-large-latest"

// Client talks to Mistral's chat completions API. Mistral exposes an
// OpenAI-compatible surface, so requests go through go-openai pointed at
// the Mistral base URL.
type Client struct {
	BaseURL string
	Model   string
	client  *openai.Client
}

// NewClient creates a new LLM client. Every request is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &errorBodyTransport{base: http.DefaultTransport},
	}

	return &Client{
		BaseURL: baseURL,
		Model:   DefaultModel,
		client:  openai.NewClientWithConfig(cfg),
	}
}

// Chat sends the conversation and returns the first choice's content.
func (c *Client) Chat(ctx context.Context, messages []Message, params ChatParams) (string, error) {
	model := params.Model
	if model == "" {
		model = c.Model
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	}

	ctx, body := withErrorBody(ctx)
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", body.explain(err))
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the ids of the models available to the configured key.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	ctx, body := withErrorBody(ctx)
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models failed: %w", body.explain(err))
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		result[i].Role = m.Role
		result[i].Content = m.Content
	}
	return result
}

// maxErrorBody caps how much of a failed response is kept.
const maxErrorBody = 64 << 10

// StatusError is a failed provider call whose body go-openai could not parse.
// Mistral answers {"object":"error","message":...} rather than OpenAI's
// nested {"error":{...}}.
type StatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error, status code: %d, message: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

type errorBodyKey struct{}

// errorBody receives the text of a failed response for one call.
type errorBody struct {
	text string
}

func withErrorBody(ctx context.Context) (context.Context, *errorBody) {
	body := &errorBody{}
	return context.WithValue(ctx, errorBodyKey{}, body), body
}

// explain replaces a go-openai RequestError, which only knows the status,
// with one carrying the provider's message. API errors in the OpenAI shape
// pass through unchanged.
func (b *errorBody) explain(err error) error {
	var reqErr *openai.RequestError
	if b.text == "" || !errors.As(err, &reqErr) {
		return err
	}
	return &StatusError{StatusCode: reqErr.HTTPStatusCode, Message: b.text, Err: err}
}

// errorBodyTransport copies the body of failed responses into the
// errorBody found in the request context, then hands go-openai an
// identical body.
type errorBodyTransport struct {
	base http.RoundTripper
}

func (t *errorBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || (resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusBadRequest) {
		return resp, err
	}

	body, ok := req.Context().Value(errorBodyKey{}).(*errorBody)
	if !ok {
		return resp, nil
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	if readErr == nil {
		body.text = providerMessage(raw)
	}
	return resp, nil
}

// providerMessage extracts the message of an error body. A string message
// is returned as is, a structured one as its JSON text, and a body that is
// not JSON as trimmed text.
func providerMessage(raw []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Message) > 0 && string(envelope.Message) != "null" {
		var s string
		if err := json.Unmarshal(envelope.Message, &s); err == nil {
			return s
		}
		return string(envelope.Message)
	}
	return strings.TrimSpace(string(raw))
}
