package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/percentile"
	"github.com/okian/hoopscout/internal/domain/prospect"
	"github.com/okian/hoopscout/internal/domain/report"
)

// Client calls a running hoopscout server.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d %s: %s", e.Status, e.Code, e.Message)
}

// Unwrap maps the server's error code back onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "bad_request":
		return model.ErrInvalidInput
	case "unprocessable":
		return report.ErrParseReport
	case "no_ratings":
		return report.ErrNoRatings
	}
	return nil
}

// Athleticism calls POST /athleticism.
func (c *Client) Athleticism(ctx context.Context, in model.AthleticismInput) (percentile.Result, error) {
	var out percentile.Result
	err := c.postJSON(ctx, "/athleticism", in, &out)
	return out, err
}

// Prospect calls POST /prospect. Lengths are sent as plain inches so the
// server rates exactly what was given.
func (c *Client) Prospect(ctx context.Context, in model.ProspectInput) (prospect.Rating, error) {
	body := map[string]any{
		"age":      in.Age,
		"height":   in.Height,
		"wingspan": in.Wingspan,
		"position": string(in.Position),
	}
	var out prospect.Rating
	err := c.postJSON(ctx, "/prospect", body, &out)
	return out, err
}

// Report calls POST /report with the raw text.
func (c *Client) Report(ctx context.Context, text string) (report.Averages, error) {
	var out report.Averages
	err := c.do(ctx, http.MethodPost, "/report", "text/plain; charset=utf-8", strings.NewReader(text), &out)
	return out, err
}

// Template calls GET /report/template.
func (c *Client) Template(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/report/template", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET /report/template: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp.StatusCode, body)
	}
	return string(body), nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(jsonData), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return b, nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code, apiErr.Message = payload.Code, payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
