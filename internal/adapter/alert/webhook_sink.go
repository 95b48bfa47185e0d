package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"budget-planner/internal/core/port"
)

// WebhookSink delivers alerts as JSON POSTs to an external channel
// (chat bridge, pager, etc.). Delivery is at-least-once; the receiver
// owns deduplication and rate limiting.
type WebhookSink struct {
	url        string
	secret     string
	httpClient *http.Client
}

// NewWebhookSink returns a sink posting to url. The secret, when set,
// is sent in the X-Webhook-Secret header.
func NewWebhookSink(url, secret string) *WebhookSink {
	return &WebhookSink{
		url:        url,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Emit posts the alert. A non-2xx response is an error so the caller
// can count the failed delivery.
func (s *WebhookSink) Emit(ctx context.Context, a port.Alert) error {
	body, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set("X-Webhook-Secret", s.secret)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver alert: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
