// Package mlclient talks to the external ML forecasting service.
// It is a strict store-and-forward client: one outbound call per request,
// no retries, no caching.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"stockcast/internal/models"
)

// Failure classes for upstream calls.
var (
	// ErrUnavailable covers transport-level failures: connection refused,
	// DNS errors, timeouts. The raw cause is wrapped, never relayed to clients.
	ErrUnavailable = errors.New("ml service unreachable")
	// ErrInvalidResponse means the upstream body was not valid JSON,
	// regardless of its status code.
	ErrInvalidResponse = errors.New("ml service returned invalid response")
)

// StatusError is a non-2xx upstream reply. Body holds the upstream JSON
// body verbatim when it was a JSON object, nil otherwise (callers substitute
// a generic error body in that case).
type StatusError struct {
	Code int
	Body json.RawMessage
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ml service returned status %d", e.Code)
}

// ForecastResult carries the raw success body (relayed byte-for-byte) and
// its decoded typed view.
type ForecastResult struct {
	Raw     json.RawMessage
	Payload models.ForecastResponse
}

// AnalysisResult is the /analysis counterpart of ForecastResult.
type AnalysisResult struct {
	Raw     json.RawMessage
	Payload models.AnalysisResponse
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for the given base URL, e.g. "http://127.0.0.1:5001".
// A nil httpc means http.DefaultClient (transport-default timeouts only).
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Forecast posts {ticker, target_date} to /forecast.
func (c *Client) Forecast(ctx context.Context, req models.ForecastRequest) (*ForecastResult, error) {
	raw, err := c.post(ctx, "/forecast", req)
	if err != nil {
		return nil, err
	}
	res := &ForecastResult{Raw: raw}
	// Lenient decode: missing fields are tolerated so the relay stays
	// transparent; only structural mismatches fail.
	if err := json.Unmarshal(raw, &res.Payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return res, nil
}

// Analysis posts {ticker} to /analysis.
func (c *Client) Analysis(ctx context.Context, ticker string) (*AnalysisResult, error) {
	raw, err := c.post(ctx, "/analysis", map[string]string{"ticker": ticker})
	if err != nil {
		return nil, err
	}
	res := &AnalysisResult{Raw: raw}
	if err := json.Unmarshal(raw, &res.Payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return res, nil
}

// post issues one synchronous call and classifies the outcome per the
// taxonomy above. A 2xx JSON body is returned untouched.
func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request for %s: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		// Relay the body only when it is a JSON object.
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err == nil {
			se.Body = raw
		}
		return nil, se
	}

	return raw, nil
}
