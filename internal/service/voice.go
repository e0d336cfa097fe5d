package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_voice_service.go -package=mocks -mock_names=VoiceService=MockVoiceService waifu-maker/internal/service VoiceService

import (
	"context"
	"log/slog"

	"waifu-maker/internal/audio"
	"waifu-maker/internal/contextutil"
)

// SynthesisRequest asks for text to be spoken by one voice.
type SynthesisRequest struct {
	Text    string
	VoiceID string
	ModelID string
}

// SynthesisResponse carries base64 encoded speech.
type SynthesisResponse struct {
	Audio   string
	Format  string
	Text    string
	VoiceID string
}

// VoiceDescriptor is a flat projection of one provider voice.
type VoiceDescriptor struct {
	ID          string
	Name        string
	Category    string
	Description string
	Accent      string
	Age         string
	Gender      string
}

// VoiceService provides direct speech synthesis and the voice catalog.
// None of its operations consult the chat rate limiter.
type VoiceService interface {
	// GenerateFile synthesizes speech into a transient file. The caller must Close it.
	GenerateFile(ctx context.Context, req SynthesisRequest) (*audio.TempFile, error)
	// GenerateBase64 synthesizes speech and returns it base64 encoded.
	GenerateBase64(ctx context.Context, req SynthesisRequest) (SynthesisResponse, error)
	// ListVoices returns the provider voice catalog.
	ListVoices(ctx context.Context) ([]VoiceDescriptor, error)
}

type voiceService struct {
	ttsClient  TTSClient
	scratch    *audio.Scratch
	configured bool
}

// NewVoiceService creates a new VoiceService. configured reports whether the
// speech provider key is present.
func NewVoiceService(ttsClient TTSClient, scratch *audio.Scratch, configured bool) VoiceService {
	return &voiceService{
		ttsClient:  ttsClient,
		scratch:    scratch,
		configured: configured,
	}
}

func (s *voiceService) synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.configured {
		return nil, &ConfigurationError{Provider: ProviderElevenLabs}
	}
	if req.Text == "" {
		logger.WarnContext(ctx, "empty text in synthesis request")
		return nil, &ValidationError{Field: "text", Message: "Text is required"}
	}
	if req.VoiceID == "" {
		logger.WarnContext(ctx, "empty voice id in synthesis request")
		return nil, &ValidationError{Field: "voice_id", Message: "Voice ID is required"}
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = SpeechModel
	}

	speech, err := s.ttsClient.Synthesize(ctx, req.Text, req.VoiceID, modelID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to synthesize speech", "error", err, "voice_id", req.VoiceID, "model_id", modelID)
		return nil, &ProviderError{Err: err}
	}

	attrs := append(speechAttrs(speech), slog.Int("text_length", len(req.Text)), slog.String("model_id", modelID))
	logger.InfoContext(ctx, "speech synthesized", attrs...)
	return speech, nil
}

// speechAttrs describes synthesized audio for logging. Audio that does not
// decode is still returned to the caller, it just has no duration.
func speechAttrs(speech []byte) []any {
	attrs := []any{slog.Int("audio_bytes", len(speech))}
	if info, err := audio.Probe(speech); err == nil {
		attrs = append(attrs, slog.Duration("audio_duration", info.Duration))
	}
	return attrs
}

func (s *voiceService) GenerateFile(ctx context.Context, req SynthesisRequest) (*audio.TempFile, error) {
	speech, err := s.synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	f, err := s.scratch.Create(speech)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return f, nil
}

func (s *voiceService) GenerateBase64(ctx context.Context, req SynthesisRequest) (SynthesisResponse, error) {
	speech, err := s.synthesize(ctx, req)
	if err != nil {
		return SynthesisResponse{}, err
	}

	encoded, err := s.scratch.EncodeBase64(speech)
	if err != nil {
		return SynthesisResponse{}, &ProviderError{Err: err}
	}

	return SynthesisResponse{
		Audio:   encoded,
		Format:  audio.Format,
		Text:    req.Text,
		VoiceID: req.VoiceID,
	}, nil
}

func (s *voiceService) ListVoices(ctx context.Context) ([]VoiceDescriptor, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.configured {
		return nil, &ConfigurationError{Provider: ProviderElevenLabs}
	}

	voices, err := s.ttsClient.ListVoices(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list voices", "error", err)
		return nil, &ProviderError{Err: err}
	}

	result := make([]VoiceDescriptor, 0, len(voices))
	for _, v := range voices {
		result = append(result, VoiceDescriptor{
			ID:          v.VoiceID,
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Labels["description"],
			Accent:      v.Labels["accent"],
			Age:         v.Labels["age"],
			Gender:      v.Labels["gender"],
		})
	}
	return result, nil
}
