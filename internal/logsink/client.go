package logsink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-retry"
)

var (
	ErrTokenExpired     = errors.New("log sink token expired")
	ErrUnexpectedStatus = errors.New("unexpected log sink response status")
)

const (
	maxRetries   = 2
	retryBackoff = 100 * time.Millisecond
)

// Client отправляет события в удаленный приемник логов
type Client struct {
	url        string
	token      string
	expiresAt  time.Time
	httpClient *http.Client
	backoff    time.Duration
	now        func() time.Time
}

// NewClient создает клиент приемника логов.
// Срок действия токена читается из claim exp без проверки подписи.
func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		token:      token,
		expiresAt:  tokenExpiry(token),
		httpClient: &http.Client{Timeout: timeout},
		backoff:    retryBackoff,
		now:        time.Now,
	}
}

func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Непрозрачный токен: срок действия неизвестен
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// Send проверяет событие и отправляет его, повторяя попытку при сетевых ошибках и ответах 5xx
func (c *Client) Send(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if !c.expiresAt.IsZero() && !c.now().Before(c.expiresAt) {
		return ErrTokenExpired
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(c.backoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return c.post(ctx, body)
	})
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(fmt.Errorf("failed to send event: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return retry.RetryableError(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
