package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/korpuslab/patmin/sentence"
)

// ---- JSON request/response types ----------------------------------------

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Tokens []sentence.Token `json:"tokens"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPClient talks to an annotation sidecar service (a spaCy wrapper)
// over a small JSON API:
//
//	GET  /api/health
//	POST /api/parse    body: {"text":"..."}  -> {"tokens":[...]}
//	POST /api/render   body: {"text":"..."}  -> {"html":"..."}
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Provider = (*HTTPClient)(nil)
var _ Pinger = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// Ping checks service availability. Callers must treat an error as fatal
// at startup; there is no degraded mode without annotation.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &UnavailableError{Addr: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UnavailableError{Addr: c.baseURL, Err: fmt.Errorf("health check returned %s", resp.Status)}
	}

	return nil
}

func (c *HTTPClient) Parse(ctx context.Context, text string) (sentence.Sentence, error) {
	var out parseResponse
	if err := c.post(ctx, "/api/parse", text, &out); err != nil {
		return sentence.Sentence{}, err
	}

	return sentence.Sentence{Text: text, Tokens: out.Tokens}, nil
}

func (c *HTTPClient) Render(ctx context.Context, text string) (string, error) {
	var out renderResponse
	if err := c.post(ctx, "/api/render", text, &out); err != nil {
		return "", err
	}

	return out.HTML, nil
}

func (c *HTTPClient) post(ctx context.Context, path, text string, out interface{}) error {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &UnavailableError{Addr: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("annotation service %s: %s", path, apiErr.Error)
		}
		return fmt.Errorf("annotation service %s returned %s", path, resp.Status)
	}

	return json.Unmarshal(data, out)
}
