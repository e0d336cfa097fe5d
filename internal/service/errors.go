package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("configuration error")
	// ErrRateLimited is matched by every RateLimitError.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrModelUnavailable is matched by every ModelUnavailableError.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrExternalService is matched by every ProviderError.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
// Message is the text shown to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// ConfigurationError reports a provider whose API key is missing.
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s API key not configured", e.Provider)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// RateLimitError is returned when the local limiter rejects a call or the
// provider reports a rate or quota problem. RetryAfter is a hint for humans,
// not a duration.
type RateLimitError struct {
	Message    string
	Details    string
	RetryAfter string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// ModelUnavailableError is returned when the provider does not know the
// requested model.
type ModelUnavailableError struct {
	Err error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model unavailable: %v", e.Err)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Err
}

func (e *ModelUnavailableError) Is(target error) bool {
	return target == ErrModelUnavailable
}

// ProviderError wraps any other failure of an external call. Summary, when
// set, replaces the raw text as the headline shown to the caller.
type ProviderError struct {
	Summary string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return e.Summary
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrExternalService
}

// Messages returned for rate limiting and model errors.
const (
	localRateLimitMessage    = "Rate limit exceeded. Please wait a moment before sending another message."
	localRateLimitRetry      = "Please wait about 1 minute before trying again."
	providerRateLimitMessage = "Mistral API rate limit exceeded. Please try again later."
	providerRateLimitDetails = "You have hit the rate limit. Please wait before trying again."
	providerRateLimitRetry   = "Please wait a few minutes before trying again."
	chatFailedSummary        = "Failed to get AI response"
)

// ModelUnavailableMessage is the headline for ModelUnavailableError.
const ModelUnavailableMessage = "Mistral model not available. Please check your API configuration."

func newLocalRateLimitError(limit int) *RateLimitError {
	return &RateLimitError{
		Message:    localRateLimitMessage,
		Details:    fmt.Sprintf("Maximum %d requests per minute allowed.", limit),
		RetryAfter: localRateLimitRetry,
	}
}

// ClassifyLLMError maps a chat provider failure to the error taxonomy by
// inspecting its text: "429", "quota" or "rate" means rate limited, "model"
// together with "not found" means the model is unavailable, anything else is
// a generic provider error.
func ClassifyLLMError(err error) error {
	if err == nil {
		return nil
	}

	text := err.Error()
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(text, "429") || strings.Contains(lower, "quota") || strings.Contains(lower, "rate"):
		return &RateLimitError{
			Message:    providerRateLimitMessage,
			Details:    providerRateLimitDetails,
			RetryAfter: providerRateLimitRetry,
		}
	case strings.Contains(lower, "model") && strings.Contains(lower, "not found"):
		return &ModelUnavailableError{Err: err}
	default:
		return &ProviderError{Summary: chatFailedSummary, Err: err}
	}
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
