package grantservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с GrantService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GrantService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Verify проверяет грант доступа к бронированию
// Возвращает время истечения гранта при успехе; три причины отказа
// транслируются в различимые ошибки: ErrGrantExpired, ErrAlreadyBooked,
// ErrAccessDenied
func (c *Client) Verify(ctx context.Context, token string, userID int64, ticketNumber string) (time.Time, error) {
	payload := VerifyRequest{
		Token:        token,
		UserID:       userID,
		TicketNumber: ticketNumber,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/internal/booking-access/verify", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusForbidden, http.StatusNotFound, http.StatusBadRequest:
		c.log.Warn("Verify: access denied for ticket=%s user=%d", ticketNumber, userID)
		return time.Time{}, ErrAccessDenied
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return time.Time{}, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Причины отказа различаются и дальше по стеку не смешиваются
	switch {
	case result.Expired:
		return time.Time{}, ErrGrantExpired
	case result.AlreadyBooked:
		return time.Time{}, ErrAlreadyBooked
	case !result.Success:
		return time.Time{}, ErrAccessDenied
	}

	expiresAt, err := time.Parse(time.RFC3339, result.ExpiresAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to parse expiresAt %q: %v", ErrInvalidResponse, result.ExpiresAt, err)
	}

	return expiresAt, nil
}
