package handlers

import (
	"net/http"

	"waifu-maker/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	Status                   string    `json:"status"`
	Message                  string    `json:"message"`
	ElevenLabsConfigured     bool      `json:"elevenlabs_configured"`
	MistralConfigured        bool      `json:"mistral_configured"`
	MistralClientInitialized bool      `json:"mistral_client_initialized"`
	AvailableMistralModels   *[]string `json:"available_mistral_models,omitempty"` // Present when listing ran
	MistralModelsError       string    `json:"mistral_models_error,omitempty"`
}

// ServeHTTP reports provider configuration. It always answers 200; provider
// problems show up in the body.
//
// swagger:route GET /api/health healthCheck
//
// # Health check endpoint
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Provider configuration
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := h.healthService.Check(r.Context())

	var models *[]string
	if report.AvailableMistralModels != nil {
		models = &report.AvailableMistralModels
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:                   report.Status,
		Message:                  report.Message,
		ElevenLabsConfigured:     report.ElevenLabsConfigured,
		MistralConfigured:        report.MistralConfigured,
		MistralClientInitialized: report.MistralClientInitialized,
		AvailableMistralModels:   models,
		MistralModelsError:       report.MistralModelsError,
	})
}
