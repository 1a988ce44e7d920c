package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentiscope/internal/translation"
)

// CheckTranslatorHealth probes t once. Backends without a probe count as healthy.
func CheckTranslatorHealth(ctx context.Context, t translation.Translator) bool {
	checker, ok := t.(translation.HealthChecker)
	if !ok {
		return true
	}
	if err := checker.CheckHealth(ctx); err != nil {
		slog.Warn("[HealthCheck] Translator is unhealthy",
			slog.String("backend", t.Name()),
			slog.String("error", err.Error()))
		return false
	}
	return true
}

// MonitorTranslatorHealth stores the result of a probe every interval until ctx is done.
func MonitorTranslatorHealth(ctx context.Context, t translation.Translator, healthy *atomic.Bool, interval time.Duration) {
	if t == nil {
		healthy.Store(true)
		return
	}

	healthy.Store(CheckTranslatorHealth(ctx, t))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			healthy.Store(CheckTranslatorHealth(ctx, t))
		}
	}
}
