package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"waifu-maker/internal/handlers"
	"waifu-maker/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService   service.ChatService
	VoiceService  service.VoiceService
	HealthService service.HealthService
	StaticDir     string // Built front end
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	voiceHandler := handlers.NewVoiceHandler(deps.VoiceService)
	healthHandler := handlers.NewHealthHandler(deps.HealthService)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/voices", voiceHandler.List)
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Post("/generate-voice", voiceHandler.Generate)
		r.Post("/generate-voice-stream", voiceHandler.GenerateStream)
		r.Post("/upload-audio", handlers.UploadAudio)

		// Unknown API paths must not fall through to the front end.
		r.NotFound(handlers.NotFound)
		r.MethodNotAllowed(handlers.MethodNotAllowed)
	})

	r.Handle("/*", NewSPAHandler(deps.StaticDir))

	return r
}
