package razorpay

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

// Client клиент Orders API, совместимого с Razorpay
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ в платежном шлюзе
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*Order, error) {
	url := fmt.Sprintf("%s/orders", c.baseURL)

	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	c.log.Info("Razorpay: creating order amount=%d currency=%s receipt=%s", order.Amount, order.Currency, order.Receipt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, readErrorDescription(resp.Body))
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var created Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if created.ID == "" {
		return nil, fmt.Errorf("%w: order id is empty", ErrInvalidResponse)
	}

	c.log.Info("Razorpay: order id=%s created", created.ID)
	return &created, nil
}

func readErrorDescription(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil || errResp.Error.Description == "" {
		return "request rejected"
	}
	return errResp.Error.Description
}
