// Package notify sends best-effort push notifications through an
// external gateway (e.g. an Expo or FCM relay). Delivery is fire and
// forget: failures are logged and never block or fail the caller.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskhive/taskhive/pkg/slogx"
)

type Client struct {
	endpoint string
	http     *http.Client
}

// New builds a push client. An empty endpoint disables delivery.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *Client) SendNotification(ctx context.Context, pushToken, title, body string) {
	log := slogx.FromContext(ctx)

	if c.endpoint == "" || pushToken == "" {
		return
	}

	payload, err := json.Marshal(pushMessage{To: pushToken, Title: title, Body: body})
	if err != nil {
		log.Error("failed to marshal push notification", slog.Any("error", err))
		return
	}

	go func() {
		req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			log.Error("failed to build push request", slog.Any("error", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			log.Error("failed to send push notification", slog.Any("error", err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			log.Warn("push gateway rejected notification", slog.Int("status", resp.StatusCode))
		}
	}()
}
