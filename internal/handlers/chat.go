package handlers

import (
	"net/http"

	"waifu-maker/internal/contextutil"
	"waifu-maker/internal/service"
)

// ChatHandler handles HTTP requests for spoken chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// HistoryMessage is one earlier turn sent by the client.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the HTTP request payload for chat.
//
// swagger:model ChatRequest
type ChatRequest struct {
	Message             string           `json:"message"`
	VoiceID             string           `json:"voice_id"`
	ConversationHistory []HistoryMessage `json:"conversation_history"`
	Personality         *string          `json:"personality,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
//
// swagger:model ChatResponse
type ChatResponse struct {
	AIResponse string `json:"ai_response"`

	// Base64 encoded mp3 of AIResponse
	Audio       string `json:"audio"`
	Format      string `json:"format"`
	VoiceID     string `json:"voice_id"`
	ModelUsed   string `json:"model_used"`
	Personality string `json:"personality"`
}

// ServeHTTP handles HTTP requests for chat.
//
// swagger:route POST /api/chat chat
//
// # Spoken chat turn
//
// Sends the message with the earlier turns to Mistral and voices the reply
// with ElevenLabs. Calls are limited to 30 per minute across all clients.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Reply text and audio
//	  schema:
//	    "$ref": "#/definitions/ChatResponse"
//	'400':
//	  description: Message or voice id missing
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'429':
//	  description: Local or provider rate limit
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Missing key or provider failure
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req ChatRequest
	if !decodeJSON(ctx, w, r, &req) {
		return
	}

	// Convert HTTP request to service request
	var history []service.HistoryEntry
	for _, m := range req.ConversationHistory {
		history = append(history, service.HistoryEntry{Role: m.Role, Content: m.Content})
	}
	svcReq := service.ChatRequest{
		Message:     req.Message,
		VoiceID:     req.VoiceID,
		History:     history,
		Personality: req.Personality,
	}

	svcResp, err := h.chatService.Chat(ctx, svcReq)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		AIResponse:  svcResp.AIResponse,
		Audio:       svcResp.Audio,
		Format:      svcResp.Format,
		VoiceID:     svcResp.VoiceID,
		ModelUsed:   svcResp.ModelUsed,
		Personality: svcResp.Personality,
	})
}
