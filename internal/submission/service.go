package submission

import (
	"context"
	"errors"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/config"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	"github.com/flannelman48/whirly-rentals-website/internal/common/resilience"
	"github.com/flannelman48/whirly-rentals-website/internal/observability/metrics"
)

const tokenField = "token"

type ServiceDeps struct {
	Config    config.WebhookConfig
	Forwarder Forwarder
	Log       *logger.Logger
}

type Service struct {
	cfg       config.WebhookConfig
	forwarder Forwarder
	breaker   *resilience.CircuitBreaker
	log       *logger.Logger
}

func NewService(deps ServiceDeps) *Service {
	fwd := deps.Forwarder
	if fwd == nil {
		fwd = NewHTTPForwarder(nil)
	}
	return &Service{
		cfg:       deps.Config,
		forwarder: fwd,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Threshold:  int32(deps.Config.BreakerThreshold),
			Timeout:    deps.Config.Timeout,
			ResetAfter: deps.Config.BreakerReset,
			Name:       "webhook",
			IsFailure: func(err error) bool {
				return !errors.Is(err, context.Canceled)
			},
			Logger: deps.Log,
		}),
		log: deps.Log,
	}
}

// Submit forwards payload with the shared secret added as "token". A caller
// supplied token is overwritten.
func (s *Service) Submit(ctx context.Context, payload map[string]any) error {
	if s.cfg.URL == "" {
		s.log.Error("GS_WEBHOOK_URL environment variable not set")
		metrics.WebhookSubmissionsTotal.WithLabelValues("config_error").Inc()
		return commonerrors.ErrServerConfiguration
	}
	if s.cfg.Secret == "" {
		s.log.Error("WHIRLY_SECRET environment variable not set")
		metrics.WebhookSubmissionsTotal.WithLabelValues("config_error").Inc()
		return commonerrors.ErrServerConfiguration
	}

	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body[tokenField] = s.cfg.Secret

	start := time.Now()
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		return s.forwarder.Forward(ctx, s.cfg.URL, body)
	})
	if err != nil {
		fields := logger.Fields{
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
			"action":      "webhook_submit",
		}
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			fields["status"] = upstream.StatusCode
		}
		s.log.WithFields(ctx, fields).Error("webhook submission failed")

		result := "upstream_error"
		if errors.Is(err, commonerrors.ErrCircuitOpen) {
			result = "circuit_open"
		}
		metrics.WebhookSubmissionsTotal.WithLabelValues(result).Inc()
		return commonerrors.ErrSubmissionFailed.WithCause(err)
	}

	metrics.WebhookSubmissionsTotal.WithLabelValues("success").Inc()
	s.log.WithFields(ctx, logger.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"action":      "webhook_submit",
	}).Info("form submitted")
	return nil
}
