package apiclient

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
	"go.uber.org/zap"
)

// Client — клиент удалённого REST API, где живёт всё состояние приложения
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// errorBody — формат тела ошибки сервера
type errorBody struct {
	Detail string `json:"detail"`
}

// Get выполняет GET запрос с опциональными query параметрами
func (c *Client) Get(ctx context.Context, token, endpoint string, params url.Values) (json.RawMessage, error) {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	return c.do(req, token)
}

// Send выполняет POST/PUT/DELETE запрос с JSON телом
func (c *Client) Send(ctx context.Context, token, method, endpoint string, body any) (json.RawMessage, error) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("unsupported HTTP method: %s", method)}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: fmt.Sprintf("marshal request body: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	return c.do(req, token)
}

func (c *Client) do(req *http.Request, token string) (json.RawMessage, error) {
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("API request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	// 200 и 201 — успех, всё остальное — ошибка API с detail из тела
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		message := "An error occurred."
		var body errorBody
		if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
			message = body.Detail
		}

		c.logger.Error("API error response",
			zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.String("detail", message),
		)
		return nil, &Error{Kind: KindAPI, Status: resp.StatusCode, Message: message}
	}

	if len(raw) == 0 {
		return json.RawMessage("null"), nil
	}

	if !json.Valid(raw) {
		return nil, &Error{Kind: KindDecode, Message: "response is not valid JSON"}
	}

	return json.RawMessage(raw), nil
}

// GetJSON выполняет GET и декодирует ответ в out
func (c *Client) GetJSON(ctx context.Context, token, endpoint string, out any) error {
	raw, err := c.Get(ctx, token, endpoint, nil)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// SendJSON выполняет запрос с телом и декодирует ответ в out (nil — ответ не нужен)
func (c *Client) SendJSON(ctx context.Context, token, method, endpoint string, body, out any) error {
	raw, err := c.Send(ctx, token, method, endpoint, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
