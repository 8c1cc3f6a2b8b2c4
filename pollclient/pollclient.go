// Package pollclient is the Go counterpart of the cashier UI's payment
// confirmation loop: after creating a pending UPI payment it polls
// GET /payment/status/:orderId on a fixed interval until the payment
// settles. The server side stays a plain idempotent status read.
package pollclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultInterval    = 3 * time.Second
	DefaultMaxAttempts = 40
)

var ErrAttemptsExhausted = errors.New("pollclient: payment did not settle within the attempt budget")

type Poller struct {
	BaseURL    string
	HTTPClient *http.Client
	// Interval between polls; defaults to the UI's 3 seconds.
	Interval time.Duration
	// MaxAttempts bounds the loop; 0 means DefaultMaxAttempts.
	MaxAttempts int
}

func New(baseURL string) *Poller {
	return &Poller{
		BaseURL:     baseURL,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		Interval:    DefaultInterval,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// WaitForPayment polls the latest payment status for an order until it
// reaches a terminal state ("success" or "failed"), the context is
// cancelled, or the attempt budget runs out.
func (p *Poller) WaitForPayment(ctx context.Context, orderID uint) (string, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}

		status, err := p.fetchStatus(ctx, orderID)
		if err != nil {
			return "", err
		}
		if status == "success" || status == "failed" {
			return status, nil
		}
	}
	return "", ErrAttemptsExhausted
}

func (p *Poller) fetchStatus(ctx context.Context, orderID uint) (string, error) {
	url := fmt.Sprintf("%s/payment/status/%d", p.BaseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pollclient: unexpected status %d for order %d", resp.StatusCode, orderID)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Status, nil
}
