// Package statuscheck probes a running API and reports which providers work.
package statuscheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is where the API listens by default.
const DefaultBaseURL = "http://localhost:5000"

// Per-probe timeouts. Chat waits on both providers.
const (
	probeTimeout = 10 * time.Second
	chatTimeout  = 30 * time.Second
)

// Health mirrors the fields of GET /api/health that the checker reports.
type Health struct {
	Status                   string   `json:"status"`
	ElevenLabsConfigured     bool     `json:"elevenlabs_configured"`
	MistralConfigured        bool     `json:"mistral_configured"`
	MistralClientInitialized bool     `json:"mistral_client_initialized"`
	AvailableMistralModels   []string `json:"available_mistral_models"`
	MistralModelsError       string   `json:"mistral_models_error"`
}

// VoicesResult is the outcome of probing GET /api/voices.
type VoicesResult struct {
	OK         bool
	StatusCode int
	Count      int
	FirstName  string
	FirstID    string
	Detail     string
}

// ChatResult is the outcome of probing POST /api/chat. A rate limited
// reply still counts as OK: the provider answered.
type ChatResult struct {
	OK          bool
	RateLimited bool
	StatusCode  int
	Detail      string
}

// Report collects every probe of one run.
type Report struct {
	Health    *Health
	HealthErr error
	Voices    VoicesResult
	Chat      ChatResult
}

// Reachable reports whether the backend answered the health probe.
func (r *Report) Reachable() bool {
	return r.HealthErr == nil
}

// Checker runs probes against one API base URL.
type Checker struct {
	BaseURL string
	client  *http.Client
}

// New creates a Checker. An empty baseURL means DefaultBaseURL.
func New(baseURL string) *Checker {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Checker{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// Run probes health first and stops there when the backend is unreachable.
func (c *Checker) Run(ctx context.Context) *Report {
	report := &Report{}
	report.Health, report.HealthErr = c.CheckHealth(ctx)
	if report.HealthErr != nil {
		return report
	}
	report.Voices = c.CheckVoices(ctx)
	report.Chat = c.CheckChat(ctx)
	return report
}

// CheckHealth fetches the health report.
func (c *Checker) CheckHealth(ctx context.Context) (*Health, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to backend at %s: %w", c.BaseURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status code %d", resp.StatusCode)
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

// CheckVoices lists voices through the API.
func (c *Checker) CheckVoices(ctx context.Context) VoicesResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, "/api/voices", nil)
	if err != nil {
		return VoicesResult{Detail: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	result := VoicesResult{StatusCode: resp.StatusCode}
	if resp.StatusCode != http.StatusOK {
		result.Detail = errorField(resp.Body, "error")
		return result
	}

	var body struct {
		Voices []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		result.Detail = fmt.Sprintf("decode voices: %v", err)
		return result
	}

	result.OK = true
	result.Count = len(body.Voices)
	if result.Count > 0 {
		result.FirstName = body.Voices[0].Name
		result.FirstID = body.Voices[0].ID
	}
	return result
}

// chatProbe is the request sent by CheckChat.
var chatProbe = map[string]any{
	"message":              "Hello!",
	"voice_id":             "test_voice_id",
	"conversation_history": []any{},
	"personality":          "You are a helpful AI assistant.",
}

// CheckChat sends one short chat turn.
func (c *Checker) CheckChat(ctx context.Context) ChatResult {
	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	payload, err := json.Marshal(chatProbe)
	if err != nil {
		return ChatResult{Detail: err.Error()}
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/chat", bytes.NewReader(payload))
	if err != nil {
		return ChatResult{Detail: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	result := ChatResult{StatusCode: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusOK:
		result.OK = true
	case http.StatusTooManyRequests:
		result.OK = true
		result.RateLimited = true
		result.Detail = errorField(resp.Body, "details")
	default:
		result.Detail = errorField(resp.Body, "error")
	}
	return result
}

func (c *Checker) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.client.Do(req)
}

// errorField pulls one string field out of an error envelope, or "" if the
// body is not one.
func errorField(body io.Reader, field string) string {
	var envelope map[string]any
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	s, _ := envelope[field].(string)
	return s
}
