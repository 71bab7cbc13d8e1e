package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"answerbox/internal/config"
	"answerbox/internal/handler"
	apphttp "answerbox/internal/http"
	"answerbox/internal/network"
	"answerbox/internal/ratelimit"
	"answerbox/internal/service"
	"answerbox/internal/service/ai"
	"answerbox/internal/service/search"
	"answerbox/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	clients := network.NewClientFactory()
	searcher, err := search.NewSerpAPIClient(cfg.SerpAPIKey, "", cfg.SearchResultCount, clients.NewHTTPClient(cfg.SearchTimeout))
	if err != nil {
		logger.Error("search provider setup failed", "error", err)
		os.Exit(1)
	}

	synthesizer, err := ai.NewProvider(ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIAPIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
	})
	if err != nil {
		logger.Error("ai provider setup failed", "error", err)
		os.Exit(1)
	}

	store := ratelimit.NewMemoryStore(cfg.RateLimitWindow, cfg.RateLimitMax)
	svc := service.NewSearchService(store, searcher, synthesizer, ai.NewRateLimiter(cfg.AIRateLimit), cfg.MaxQueryLength)

	e := apphttp.NewRouter(handler.NewSearchHandler(svc))

	go func() {
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("listening", "addr", cfg.Addr, "provider", synthesizer.Name(), "model", cfg.AIModel)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
