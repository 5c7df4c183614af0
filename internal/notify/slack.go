package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Webhook posts benchmark report summaries to a Slack incoming webhook.
type Webhook struct {
	URL    string
	Client *http.Client
}

// NewWebhook creates a Webhook poster for the given URL.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Post sends text to the configured webhook. It is fire-and-forget from the
// caller's perspective; a failed post should not fail the CI step that
// produced the report.
func (w *Webhook) Post(ctx context.Context, text string) error {
	if w.URL == "" {
		return fmt.Errorf("webhook URL is not configured")
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook post failed with status: %s", resp.Status)
	}
	return nil
}
