package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
	"github.com/rohithreddygundreddy/flask-frontend/internal/logging"
)

// HTTPClient talks JSON over HTTP to the portal backend. It is stateless:
// the credential is passed per call, never cached here.
//
// No timeout is enforced beyond the transport defaults and no request is
// ever retried.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", "", nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, *models.User, error) {
	body := map[string]string{"username": username, "password": string(password)}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &out); err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (string, *models.User, error) {
	body := map[string]string{"username": username, "email": email, "password": string(password)}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", body, &out); err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}

func (c *HTTPClient) Profile(ctx context.Context, credential string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile", credential, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// do performs one request and normalizes every failure before returning:
// transport faults wrap ErrUnavailable, non-2xx responses become
// *ServerError, and decode failures are reported as plain errors.
func (c *HTTPClient) do(ctx context.Context, method, path, credential string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.mapRejection(ctx, resp, requestID)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapRejection converts a non-2xx response into a *ServerError, extracting
// the server's {"message": ...} body when present.
func (c *HTTPClient) mapRejection(ctx context.Context, resp *http.Response, requestID string) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Message == "" {
		body.Message = resp.Status
	}

	c.log.Warn(ctx, "api request rejected",
		"status", resp.StatusCode, "message", body.Message, "request_id", requestID)

	return &ServerError{Status: resp.StatusCode, Message: body.Message}
}
