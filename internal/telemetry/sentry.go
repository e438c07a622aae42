package telemetry

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryConfig holds configuration for Sentry error tracking.
type SentryConfig struct {
	// DSN is the Sentry Data Source Name. Empty disables tracking.
	DSN string

	// Environment identifies the deployment environment (dev, prod).
	Environment string

	// SampleRate controls the share of errors captured (0.0 to 1.0).
	// Zero means capture everything.
	SampleRate float64
}

var sentryEnabled bool

// InitSentry initializes Sentry error tracking. The returned cleanup
// flushes pending events and should run on shutdown.
func InitSentry(cfg SentryConfig, logger *slog.Logger) (func(), error) {
	if cfg.DSN == "" {
		logger.Info("Sentry disabled, DSN not configured")
		return func() {}, nil
	}

	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = 1.0
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		SampleRate:  sampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentryEnabled = true
	logger.Info("Sentry initialized",
		"environment", cfg.Environment,
		"sample_rate", sampleRate,
	)

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

// CaptureError reports an error with optional extra context. Safe to
// call when Sentry is disabled.
func CaptureError(err error, extras map[string]any) {
	if !sentryEnabled || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range extras {
			scope.SetExtra(key, value)
		}
		sentry.CaptureException(err)
	})
}
