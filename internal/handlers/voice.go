package handlers

import (
	"net/http"
	"time"

	"waifu-maker/internal/contextutil"
	"waifu-maker/internal/service"
)

// DownloadName is the attachment name of generated audio files.
const DownloadName = "generated_voice.mp3"

// VoiceHandler handles direct synthesis and the voice catalog.
type VoiceHandler struct {
	voiceService service.VoiceService
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(voiceService service.VoiceService) *VoiceHandler {
	return &VoiceHandler{voiceService: voiceService}
}

// GenerateVoiceRequest is the payload of both synthesis endpoints.
type GenerateVoiceRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
	ModelID string `json:"model_id,omitempty"`
}

// GenerateVoiceStreamResponse carries base64 encoded speech.
type GenerateVoiceStreamResponse struct {
	Audio   string `json:"audio"`
	Format  string `json:"format"`
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

// Voice is one entry of the voice listing.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
}

// VoicesResponse is the payload of the voice listing.
type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

func (h *VoiceHandler) decode(w http.ResponseWriter, r *http.Request) (service.SynthesisRequest, bool) {
	var req GenerateVoiceRequest
	if !decodeJSON(r.Context(), w, r, &req) {
		return service.SynthesisRequest{}, false
	}
	return service.SynthesisRequest{Text: req.Text, VoiceID: req.VoiceID, ModelID: req.ModelID}, true
}

// Generate returns the synthesized speech as an mp3 attachment.
func (h *VoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	f, err := h.voiceService.GenerateFile(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to remove generated audio", "error", err)
		}
	}()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="`+DownloadName+`"`)
	http.ServeContent(w, r, DownloadName, time.Now(), f)
}

// GenerateStream returns the synthesized speech base64 encoded in JSON.
func (h *VoiceHandler) GenerateStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.voiceService.GenerateBase64(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, GenerateVoiceStreamResponse{
		Audio:   resp.Audio,
		Format:  resp.Format,
		Text:    resp.Text,
		VoiceID: resp.VoiceID,
	})
}

// List returns the provider voice catalog.
func (h *VoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	voices, err := h.voiceService.ListVoices(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}

	resp := VoicesResponse{Voices: make([]Voice, 0, len(voices))}
	for _, v := range voices {
		resp.Voices = append(resp.Voices, Voice{
			ID:          v.ID,
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
			Accent:      v.Accent,
			Age:         v.Age,
			Gender:      v.Gender,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
