package calendarservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CalendarService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CalendarService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEvents получает события календаря за период [from, to] включительно
// typeFilter опционально ограничивает типы событий
func (c *Client) GetEvents(ctx context.Context, from, to time.Time, typeFilter []domain.EventType) ([]domain.CalendarEvent, error) {
	params := url.Values{}
	params.Set("from", from.Format(domain.DateFormat))
	params.Set("to", to.Format(domain.DateFormat))
	if len(typeFilter) > 0 {
		names := make([]string, len(typeFilter))
		for i, t := range typeFilter {
			names[i] = string(t)
		}
		params.Set("types", strings.Join(names, ","))
	}

	reqURL := fmt.Sprintf("%s/internal/events?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wireEvents []Event
	if err := json.NewDecoder(resp.Body).Decode(&wireEvents); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	events := make([]domain.CalendarEvent, 0, len(wireEvents))
	for i := range wireEvents {
		event, err := wireEvents[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse event %s: %v", ErrInvalidResponse, wireEvents[i].ID, err)
		}
		events = append(events, event)
	}

	return events, nil
}

// CreateConsultation создает событие консультации, привязанное к тикету
// При конкурирующем бронировании того же интервала сервис отвечает 409,
// что транслируется в ErrSlotConflict
func (c *Client) CreateConsultation(ctx context.Context, ticketNumber string, userID int64, start, end time.Time, mode domain.ConsultationMode) (*domain.CalendarEvent, error) {
	payload := CreateEventRequest{
		ID:           uuid.NewString(),
		Type:         string(domain.EventConsultation),
		Title:        fmt.Sprintf("Консультация по обращению %s", ticketNumber),
		Start:        start.Format(time.RFC3339),
		End:          end.Format(time.RFC3339),
		TicketNumber: ticketNumber,
		UserID:       userID,
		Mode:         string(mode),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/internal/events", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		c.log.Warn("CreateConsultation: slot conflict for ticket=%s start=%s", ticketNumber, payload.Start)
		return nil, ErrSlotConflict
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrInvalidEvent, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var created CreateEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !created.Success {
		return nil, fmt.Errorf("%w: service reported failure", ErrInvalidResponse)
	}

	event, err := created.Data.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse created event: %v", ErrInvalidResponse, err)
	}

	return &event, nil
}
