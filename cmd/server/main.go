package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dealscope/internal/config"
	"dealscope/internal/engine"
	"dealscope/internal/handler"
	"dealscope/internal/hub"
	"dealscope/internal/service"
	"dealscope/internal/watcher"
)

func main() {
	configPath := flag.String("config", "", "explicit config file path")
	flag.Parse()

	var cfg *config.Config
	var path string
	var err error
	if *configPath != "" {
		cfg, path, err = config.LoadFromPath(*configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := cfg.Logging.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if path != "" {
		logger.Info("config loaded", zap.String("path", path))
	} else {
		logger.Info("no config file found, using defaults")
	}

	// Event bus and SSE hub
	eventBus := service.NewEventBus()
	sseHub := hub.New(logger)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go sseHub.Run(hubCtx)

	// Connect event bus to SSE hub
	eventChan := make(chan service.Event, 100)
	eventBus.Subscribe(eventChan)
	go func() {
		for event := range eventChan {
			sseHub.Broadcast(event)
		}
	}()

	// Evaluation service and HTTP surface
	svc := service.NewEvaluationService(engine.NewEvaluator(), eventBus, logger, cfg.History.Keep)
	evalHandler := handler.NewEvaluationHandler(svc, logger)
	routes := handler.Routes(evalHandler, sseHub)

	// Optional snapshot intake directory
	if cfg.Intake.Dir != "" {
		intake := watcher.New(cfg.Intake.Dir, svc, logger)
		go func() {
			if err := intake.Watch(hubCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("intake watcher stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      routes,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	hubCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
