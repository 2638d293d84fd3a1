package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nextact/config"
	_ "nextact/docs" // Swagger docs
	"nextact/internal/classifier"
	"nextact/internal/httpserver"
	"nextact/internal/middleware"
	"nextact/internal/nextact/usecase"
	"nextact/pkg/gemini"
	"nextact/pkg/log"
	"nextact/pkg/textclf"
)

// @title       NextAct Task Intent API
// @description Classifies Vietnamese task text, resolves relative deadlines and answers questions about a task.
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

	logger.Info(ctx, "Starting NextAct...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model artifact. A missing model keeps the server up: /ready and /classify report it.
	artifact, err := textclf.LoadArtifact(cfg.Model.ArtifactPath)
	if err != nil {
		logger.Errorf(ctx, "Model not loaded from %s: %v", cfg.Model.ArtifactPath, err)
		logger.Warn(ctx, "→ Run `go run ./cmd/train train` to build the model artifact")
	} else {
		logger.Infof(ctx, "✅ Model loaded: %d labels, %d terms, trained %s",
			len(artifact.Labels), len(artifact.Pipeline.Vectorizer.Vocabulary), artifact.CreatedAt.Format("2006-01-02"))
	}

	clf := classifier.New(artifact)
	if cfg.Model.CacheSize > 0 {
		cached, cacheErr := classifier.NewCached(clf, cfg.Model.CacheSize)
		if cacheErr != nil {
			logger.Warnf(ctx, "Classification cache disabled: %v", cacheErr)
		} else {
			clf = cached
		}
	}

	// 4. Task assistant (optional)
	var assistant gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		assistant, err = gemini.New(gemini.Config{
			APIKey:        cfg.Gemini.APIKey,
			Model:         cfg.Gemini.Model,
			APIURL:        cfg.Gemini.APIURL,
			Timeout:       cfg.Gemini.Timeout,
			RetryAttempts: cfg.Gemini.RetryAttempts,
			RetryDelay:    cfg.Gemini.RetryDelay,
		})
		if err != nil {
			logger.Warnf(ctx, "Task assistant not available: %v", err)
		} else {
			logger.Infof(ctx, "✅ Task assistant initialized (%s)", assistant.Model())
		}
	} else {
		logger.Warn(ctx, "Task assistant skipped: GEMINI_API_KEY is missing")
	}

	// 5. Use case
	uc := usecase.New(logger, clf, assistant)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		NextActUseCase: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
