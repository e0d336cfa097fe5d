package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"waifu-maker/internal/audio"
	"waifu-maker/internal/config"
	"waifu-maker/internal/http"
	"waifu-maker/internal/llm"
	"waifu-maker/internal/ratelimit"
	"waifu-maker/internal/service"
	"waifu-maker/internal/tts"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API turns chat messages into spoken replies: the text answer comes from Mistral and is voiced with ElevenLabs.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Waifu Maker API
//   description: |
//     Voice chat API. Send a message with a voice id and receive the reply text together with base64 encoded mp3 audio.
//     Direct synthesis and the voice catalog are exposed as well.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	status := service.ProviderStatus{
		MistralConfigured:    cfg.MistralConfigured(),
		ElevenLabsConfigured: cfg.ElevenLabsConfigured(),
	}
	if !status.MistralConfigured {
		slog.Warn("MISTRAL_API_KEY not set; chat is disabled")
	}
	if !status.ElevenLabsConfigured {
		slog.Warn("ELEVENLABS_API_KEY not set; speech is disabled")
	}

	// Create provider clients (external service layer)
	llmClient := llm.NewClient(cfg.MistralBaseURL, cfg.MistralAPIKey, cfg.ProviderTimeout)
	ttsClient := tts.NewClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.ProviderTimeout)

	limiter := ratelimit.NewWindow(ratelimit.DefaultLimit, ratelimit.DefaultWindow)
	scratch := audio.NewScratch(afero.NewOsFs(), cfg.AudioTmpDir)

	deps := &http.Deps{
		ChatService:   service.NewChatService(llmClient, ttsClient, limiter, scratch, status),
		VoiceService:  service.NewVoiceService(ttsClient, scratch, status.ElevenLabsConfigured),
		HealthService: service.NewHealthService(llmClient, status),
		StaticDir:     cfg.StaticDir,
	}
	router := http.NewRouter(deps)

	// A chat turn makes two sequential provider calls.
	srv := &nethttp.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2*cfg.ProviderTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", srv.Addr, "static_dir", cfg.StaticDir)
		slog.Debug("Provider configuration",
			"mistral_base_url", cfg.MistralBaseURL,
			"elevenlabs_base_url", cfg.ElevenLabsBaseURL,
			"rate_limit", limiter.Limit(),
			"rate_window", limiter.Window(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
