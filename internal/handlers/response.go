package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"waifu-maker/internal/contextutil"
	"waifu-maker/internal/service"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// ErrorResponse is the JSON envelope for every failed API call.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	RetryAfter string `json:"retry_after,omitempty"`
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error envelope.
func writeError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	writeJSON(w, statusCode, resp)
}

// decodeJSON reads a JSON body into v and reports whether the handler should
// go on. A missing or unparseable body leaves v zeroed so the service reports
// the missing fields. A body that parses but does not fit v, such as a field
// of the wrong type, is answered with 400 here.
func decodeJSON[T any](ctx context.Context, w http.ResponseWriter, r *http.Request, v *T) bool {
	logger := contextutil.LoggerFromContext(ctx)

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v)
	if err == nil {
		return true
	}

	var syntaxErr *json.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		logger.WarnContext(ctx, "unparseable request body, treating as empty", "error", err)
		var zero T
		*v = zero
		return true
	}

	logger.WarnContext(ctx, "request body does not match the expected shape", "error", err)
	writeError(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
	return false
}

// handleServiceError maps service errors to status codes and envelopes.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	var (
		validationErr *service.ValidationError
		configErr     *service.ConfigurationError
		rateErr       *service.RateLimitError
		modelErr      *service.ModelUnavailableError
		providerErr   *service.ProviderError
	)

	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "validation error", "field", validationErr.Field)
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})

	case errors.As(err, &configErr):
		logger.ErrorContext(ctx, "configuration error", "error", err)
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: configErr.Error()})

	case errors.As(err, &rateErr):
		logger.WarnContext(ctx, "rate limited", "error", err)
		writeError(w, http.StatusTooManyRequests, ErrorResponse{
			Error:      rateErr.Message,
			Details:    rateErr.Details,
			RetryAfter: rateErr.RetryAfter,
		})

	case errors.As(err, &modelErr):
		logger.ErrorContext(ctx, "model unavailable", "error", err)
		resp := ErrorResponse{Error: service.ModelUnavailableMessage}
		if modelErr.Err != nil {
			resp.Details = modelErr.Err.Error()
		}
		writeError(w, http.StatusInternalServerError, resp)

	case errors.As(err, &providerErr):
		logger.ErrorContext(ctx, "provider error", "error", err)
		resp := ErrorResponse{Error: providerErr.Error()}
		if providerErr.Summary != "" {
			resp = ErrorResponse{Error: providerErr.Summary, Details: providerErr.Error()}
		}
		writeError(w, http.StatusInternalServerError, resp)

	default:
		logger.ErrorContext(ctx, "unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// NotFound answers unknown API paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
}

// MethodNotAllowed answers known API paths called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
