package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/observability/metrics"
)

// Forwarder delivers one submission payload to the upstream webhook.
type Forwarder interface {
	Forward(ctx context.Context, url string, payload map[string]any) error
}

// UpstreamError reports a webhook response outside the 2xx range.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook responded %s", e.Status)
}

type HTTPForwarder struct {
	client *http.Client
}

func NewHTTPForwarder(client *http.Client) *HTTPForwarder {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPForwarder{client: client}
}

func (f *HTTPForwarder) Forward(ctx context.Context, url string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	metrics.WebhookRequestDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
