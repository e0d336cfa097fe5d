package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks waifu-maker/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tts_client.go -package=mocks waifu-maker/internal/service TTSClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_rate_limiter.go -package=mocks waifu-maker/internal/service RateLimiter
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService waifu-maker/internal/service ChatService

import (
	"context"
	"log/slog"

	"waifu-maker/internal/audio"
	"waifu-maker/internal/contextutil"
	"waifu-maker/internal/llm"
	"waifu-maker/internal/tts"
)

// DefaultPersonality is the system prompt used when the caller supplies none.
const DefaultPersonality = "You are a helpful and friendly AI assistant. You respond in a conversational manner and try to be engaging and informative. Keep your responses concise but helpful."

// Fixed generation settings for chat replies.
const (
	ChatModel       = llm.DefaultModel
	ChatMaxTokens   = 500
	ChatTemperature = 0.7
	SpeechModel     = tts.DefaultModel
)

// Provider names used in configuration errors.
const (
	ProviderMistral    = "Mistral"
	ProviderElevenLabs = "ElevenLabs"
)

// LLMClient is an interface for interacting with the chat provider.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends the conversation and returns the reply text.
	Chat(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
	// ListModels returns the model ids available to the configured key.
	ListModels(ctx context.Context) ([]string, error)
}

// TTSClient is an interface for interacting with the speech provider.
type TTSClient interface {
	// Synthesize converts text to mp3 audio.
	Synthesize(ctx context.Context, text, voiceID, modelID string) ([]byte, error)
	// ListVoices returns the provider's voice catalog.
	ListVoices(ctx context.Context) ([]tts.Voice, error)
}

// RateLimiter gates calls to the chat provider.
type RateLimiter interface {
	// Allow reports whether one more call may proceed and records it if so.
	Allow() bool
	// Limit is the number of calls allowed per window.
	Limit() int
}

// HistoryEntry is one earlier turn of the conversation.
type HistoryEntry struct {
	Role    string
	Content string
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message     string
	VoiceID     string
	History     []HistoryEntry
	// Personality is the system prompt. Nil means DefaultPersonality; an
	// explicit empty string is sent as is.
	Personality *string
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	AIResponse  string
	Audio       string
	Format      string
	VoiceID     string
	ModelUsed   string
	Personality string
}

// ChatService provides spoken chat replies.
type ChatService interface {
	// Chat gets a reply from the chat provider and voices it.
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// ProviderStatus records which provider keys are present.
type ProviderStatus struct {
	MistralConfigured    bool
	ElevenLabsConfigured bool
}

// chatService implements ChatService.
type chatService struct {
	llmClient LLMClient
	ttsClient TTSClient
	limiter   RateLimiter
	scratch   *audio.Scratch
	status    ProviderStatus
}

// NewChatService creates a new ChatService.
func NewChatService(llmClient LLMClient, ttsClient TTSClient, limiter RateLimiter, scratch *audio.Scratch, status ProviderStatus) ChatService {
	return &chatService{
		llmClient: llmClient,
		ttsClient: ttsClient,
		limiter:   limiter,
		scratch:   scratch,
		status:    status,
	}
}

// Chat runs one conversation turn: checks, rate limit, completion, speech.
func (s *chatService) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.status.MistralConfigured {
		return ChatResponse{}, &ConfigurationError{Provider: ProviderMistral}
	}
	if !s.status.ElevenLabsConfigured {
		return ChatResponse{}, &ConfigurationError{Provider: ProviderElevenLabs}
	}

	if req.Message == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, &ValidationError{Field: "message", Message: "Message is required"}
	}
	if req.VoiceID == "" {
		logger.WarnContext(ctx, "empty voice id in chat request")
		return ChatResponse{}, &ValidationError{Field: "voice_id", Message: "Voice ID is required"}
	}

	if !s.limiter.Allow() {
		logger.WarnContext(ctx, "chat rate limit exceeded", "limit", s.limiter.Limit())
		return ChatResponse{}, newLocalRateLimitError(s.limiter.Limit())
	}

	personality := DefaultPersonality
	if req.Personality != nil {
		personality = *req.Personality
	}

	reply, err := s.llmClient.Chat(ctx, buildMessages(personality, req.History, req.Message), llm.ChatParams{
		Model:       ChatModel,
		MaxTokens:   ChatMaxTokens,
		Temperature: ChatTemperature,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return ChatResponse{}, ClassifyLLMError(err)
	}

	speech, err := s.ttsClient.Synthesize(ctx, reply, req.VoiceID, SpeechModel)
	if err != nil {
		logger.ErrorContext(ctx, "failed to synthesize reply", "error", err, "voice_id", req.VoiceID)
		return ChatResponse{}, &ProviderError{Err: err}
	}

	encoded, err := s.scratch.EncodeBase64(speech)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode reply audio", "error", err)
		return ChatResponse{}, &ProviderError{Err: err}
	}

	logger.InfoContext(ctx, "chat request processed successfully", append(speechAttrs(speech),
		slog.Int("message_length", len(req.Message)),
		slog.Int("history_length", len(req.History)),
		slog.Int("reply_length", len(reply)),
	)...)

	return ChatResponse{
		AIResponse:  reply,
		Audio:       encoded,
		Format:      audio.Format,
		VoiceID:     req.VoiceID,
		ModelUsed:   ChatModel,
		Personality: personality,
	}, nil
}

// buildMessages lays out the prompt: personality as the system message, the
// history in order, then the new user message. Any role other than
// assistant is sent as user.
func buildMessages(personality string, history []HistoryEntry, message string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: personality})

	for _, h := range history {
		role := llm.RoleUser
		if h.Role == llm.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: h.Content})
	}

	return append(messages, llm.Message{Role: llm.RoleUser, Content: message})
}
