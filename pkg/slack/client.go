// Package slack posts messages to a Slack-compatible incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

type Client struct {
	webhookURL string
	httpc      *http.Client
}

// NewClient builds a client. An empty webhookURL yields an unconfigured
// client; callers must check Configured before PostMessage.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpc:      &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

type webhookPayload struct {
	Text string `json:"text"`
}

// PostMessage delivers text to the webhook. Any non-2xx response is an error;
// there is exactly one attempt per call.
func (c *Client) PostMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %s", resp.Status)
	}
	return nil
}
