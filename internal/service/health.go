package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_health_service.go -package=mocks -mock_names=HealthService=MockHealthService waifu-maker/internal/service HealthService

import (
	"context"
	"time"

	"waifu-maker/internal/contextutil"
)

// HealthReport describes which providers are usable.
type HealthReport struct {
	Status                   string
	Message                  string
	ElevenLabsConfigured     bool
	MistralConfigured        bool
	MistralClientInitialized bool
	AvailableMistralModels   []string
	MistralModelsError       string
}

// HealthService reports provider configuration and reachability.
type HealthService interface {
	// Check never fails; provider problems are recorded in the report.
	Check(ctx context.Context) HealthReport
}

type healthService struct {
	llmClient LLMClient
	status    ProviderStatus
	timeout   time.Duration
}

// NewHealthService creates a new HealthService. llmClient may be nil when no
// Mistral key is configured.
func NewHealthService(llmClient LLMClient, status ProviderStatus) HealthService {
	return &healthService{
		llmClient: llmClient,
		status:    status,
		timeout:   5 * time.Second,
	}
}

func (s *healthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:                   "healthy",
		Message:                  "Waifu Maker API is running",
		ElevenLabsConfigured:     s.status.ElevenLabsConfigured,
		MistralConfigured:        s.status.MistralConfigured,
		MistralClientInitialized: s.status.MistralConfigured && s.llmClient != nil,
	}

	if !report.MistralClientInitialized {
		return report
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	models, err := s.llmClient.ListModels(checkCtx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "model listing failed during health check", "error", err)
		report.MistralModelsError = err.Error()
		return report
	}
	// non-nil marks that listing ran, even when it found nothing
	if models == nil {
		models = []string{}
	}
	report.AvailableMistralModels = models
	return report
}
