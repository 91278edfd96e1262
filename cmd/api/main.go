package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nova-assistant/config"
	_ "nova-assistant/docs" // Swagger docs
	"nova-assistant/internal/httpserver"
	"nova-assistant/internal/intent"
	"nova-assistant/internal/session"
	"nova-assistant/internal/voice"
	"nova-assistant/pkg/gemini"
	"nova-assistant/pkg/llmprovider"
	"nova-assistant/pkg/log"
	"nova-assistant/pkg/speech"
	"nova-assistant/pkg/timephrase"
)

// @title       Nova Assistant API
// @description Conversational assistant with canned intents, date/time resolution, voice, and Gemini-backed answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Nova Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client, constructed once and shared
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}

	// 4. Provider manager with retry and fallback
	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, err)
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, disabling: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotalTimeout = 0
	}
	generator := llmprovider.NewManager(
		[]llmprovider.Provider{llmprovider.NewGeminiAdapter(geminiClient)},
		&llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotalTimeout,
		},
		logger,
	)

	// 5. Date/time resolver and intent classifier
	resolver, err := timephrase.New(cfg.Gemini.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, err)
		resolver, _ = timephrase.New("UTC")
	}
	classifier := intent.New(resolver)

	// 6. Speech capabilities (optional)
	var recognizer speech.Recognizer
	var synthesizer speech.Synthesizer
	if cfg.Speech.Enabled && cfg.Speech.CredentialsPath != "" {
		recCfg := speech.DefaultRecognitionConfig()
		if cfg.Speech.LanguageCode != "" {
			recCfg.LanguageCode = cfg.Speech.LanguageCode
		}

		rec, recErr := speech.NewGoogleRecognizerFromCredentialsFile(ctx, cfg.Speech.CredentialsPath, recCfg)
		if recErr != nil {
			logger.Warnf(ctx, "Speech recognition not available (optional): %v", recErr)
		} else {
			recognizer = rec
			logger.Info(ctx, "Speech recognition initialized")
		}

		syn, synErr := speech.NewGoogleSynthesizerFromCredentialsFile(ctx, cfg.Speech.CredentialsPath, cfg.Speech.Voice)
		if synErr != nil {
			logger.Warnf(ctx, "Speech synthesis not available (optional): %v", synErr)
		} else {
			synthesizer = syn
			logger.Info(ctx, "Speech synthesis initialized")
		}
	} else {
		logger.Info(ctx, "Speech disabled, voice endpoints will report unavailable")
	}

	// 7. Session store and voice controller
	store, err := session.NewStore(cfg.Chat.SessionCacheSize, session.Config{
		Logger:      logger,
		Classifier:  classifier,
		Generator:   generator,
		Synthesizer: synthesizer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create session store: ", err)
		return
	}
	voiceController := voice.New(logger, recognizer)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AppConfig:       cfg,
		SessionStore:    store,
		VoiceController: voiceController,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
