package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/clients"
	"github.com/spacesedan/sentiscope/internal/logging"
	"github.com/spacesedan/sentiscope/internal/monitoring"
	"github.com/spacesedan/sentiscope/internal/pipeline"
	"github.com/spacesedan/sentiscope/internal/sentiment"
	"github.com/spacesedan/sentiscope/internal/server"
	"github.com/spacesedan/sentiscope/internal/translation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translator := buildTranslator(cfg)
	if translator != nil && cfg.ValkeyAddress != "" {
		cache, err := clients.InitValkey()
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, translations will not be cached",
				slog.String("error", err.Error()))
		} else {
			defer clients.CloseValkey()
			translator = translation.NewCachedTranslator(translator, cache, cfg.TranslationCacheTTL)
		}
	}

	scorer, err := sentiment.NewScorer(cfg.SentimentBackend)
	if err != nil {
		slog.Error("[Main] Failed to build scorer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzer := pipeline.NewAnalyzer(translator, scorer, cfg.SourceLang, cfg.TargetLang)

	translatorHealthy := &atomic.Bool{}
	translatorHealthy.Store(true)
	go monitoring.MonitorTranslatorHealth(ctx, translator, translatorHealthy, cfg.HealthcheckInterval)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(analyzer, translatorHealthy, cfg.MaxUploadBytes).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Main] Serving",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("translator", analyzer.TranslatorName()),
		slog.String("scorer", scorer.Name()))

	if err := serve(ctx, srv, srv.ListenAndServe, shutdownTimeout); err != nil {
		slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Main] Shut down")
}

// serve runs listen until ctx is done, then shuts srv down and waits for
// in-flight requests to finish or for timeout to pass.
func serve(ctx context.Context, srv *http.Server, listen func() error, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- listen()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("[Main] Shutting down, draining in-flight requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func buildTranslator(cfg config.Config) translation.Translator {
	switch cfg.TranslatorBackend {
	case config.TranslatorGoogle:
		return clients.GetGoogleTranslator()
	case config.TranslatorLibre:
		return clients.NewLibreTranslator(cfg.LibreTranslateURL, cfg.LibreTranslateKey)
	case config.TranslatorOpenAI:
		return clients.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return nil
	}
}
