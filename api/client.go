package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clementus360/propalyst/types"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	chatPath    = "/api/propalyst/chat"
	summaryPath = "/api/propalyst/summary"
	areasPath   = "/api/propalyst/areas"
)

// Client talks to the Propalyst backend. It is stateless: every call builds
// one request, sends it once, and decodes the reply. No retries, no caching,
// and no timeout of its own; a caller that wants a deadline injects an
// http.Client that has one.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP is NewClient with an injected http.Client, mostly for
// callers that want to set transport options or a timeout.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// SendChat posts one chat turn and returns the assistant's reply.
func (c *Client) SendChat(req types.ChatRequest) (types.ChatResponse, error) {
	var resp types.ChatResponse
	if err := c.post(chatPath, req, &resp); err != nil {
		return types.ChatResponse{}, err
	}
	return resp, nil
}

// FetchSummary returns the backend's summary of a session.
func (c *Client) FetchSummary(req types.SummaryRequest) (types.SummaryResponse, error) {
	var resp types.SummaryResponse
	if err := c.post(summaryPath, req, &resp); err != nil {
		return types.SummaryResponse{}, err
	}
	return resp, nil
}

// FetchAreas returns the recommended areas for a session.
func (c *Client) FetchAreas(req types.AreasRequest) (types.AreasResponse, error) {
	var resp types.AreasResponse
	if err := c.post(areasPath, req, &resp); err != nil {
		return types.AreasResponse{}, err
	}
	return resp, nil
}

// post is the single request policy shared by all three operations: marshal,
// send once, fail typed on a non-2xx status or an undecodable body.
func (c *Client) post(path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
