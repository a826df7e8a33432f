package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multilingual-tool-router/config"
	_ "multilingual-tool-router/docs" // Swagger docs
	"multilingual-tool-router/internal/handlers"
	"multilingual-tool-router/internal/httpserver"
	"multilingual-tool-router/internal/middleware"
	routingHTTP "multilingual-tool-router/internal/routing/delivery/http"
	"multilingual-tool-router/internal/routing/repository/memory"
	"multilingual-tool-router/internal/routing/usecase"
	"multilingual-tool-router/internal/tool"
	"multilingual-tool-router/pkg/intentmodel"
	"multilingual-tool-router/pkg/log"
	"multilingual-tool-router/pkg/voyage"
)

// @title       Multilingual Tool Router API
// @description Hybrid Hindi/English/Hinglish utterance router with intent classification, semantic fallback and tool execution.
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

	logger.Info(ctx, "Starting Multilingual Tool Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tool registry
	registry, err := tool.NewRegistry(cfg.Routing.BaseThreshold)
	if err != nil {
		logger.Errorf(ctx, "Failed to build tool registry: %v", err)
		return
	}
	logger.Infof(ctx, "Tool registry ready with %d tools", registry.Len())

	// 4. Oracles
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Errorf(ctx, "Failed to create Voyage client: %v", err)
		return
	}
	embedder.WithModel(cfg.Voyage.Model)

	var classifier intentmodel.IClassifier
	if cfg.IntentModel.Enabled && cfg.IntentModel.URL != "" {
		classifier, err = intentmodel.New(cfg.IntentModel.URL)
		if err != nil {
			logger.Errorf(ctx, "Failed to create intent classifier client: %v", err)
			return
		}
		logger.Infof(ctx, "Intent classifier at %s", cfg.IntentModel.URL)
	} else {
		logger.Warn(ctx, "Intent classifier disabled, running semantic-only")
	}

	// 5. Routing engine
	decisionLog := memory.New()

	routingUC, err := usecase.New(ctx, logger, registry, embedder, classifier, decisionLog, usecase.Config{
		ClassifierThreshold: cfg.Routing.ClassifierThreshold,
		HinglishFactor:      cfg.Routing.HinglishFactor,
		HindiFactor:         cfg.Routing.HindiFactor,
		ClassifierTimeout:   cfg.Routing.ClassifierTimeout,
		EmbeddingTimeout:    cfg.Routing.EmbeddingTimeout,
		EmbeddingCacheSize:  cfg.Routing.EmbeddingCacheSize,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize routing engine: %v", err)
		return
	}

	// 6. Tool dispatcher
	dispatcher, err := handlers.NewDispatcher(logger, handlers.DefaultHandlers()...)
	if err != nil {
		logger.Errorf(ctx, "Failed to build dispatcher: %v", err)
		return
	}

	// 7. Delivery + middleware
	routingHandler := routingHTTP.New(logger, routingUC, dispatcher)
	mw := middleware.New(logger, cfg)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RoutingHandler: routingHandler,
		Middleware:     mw,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
