package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

type webhookPayload struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CC        []string  `json:"cc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookMailer posts each notification as JSON to a URL.
type WebhookMailer struct {
	from   string
	url    string
	token  string
	client *http.Client
}

func NewWebhookMailer(from, url, token string, timeout time.Duration) *WebhookMailer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookMailer{from: from, url: url, token: token, client: &http.Client{Timeout: timeout}}
}

func (m *WebhookMailer) Name() string { return "webhook" }

func (m *WebhookMailer) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(webhookPayload{
		ID:        n.ID,
		From:      m.from,
		To:        n.To,
		CC:        n.CC,
		Subject:   n.Subject,
		Body:      n.Body,
		Timestamp: n.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
