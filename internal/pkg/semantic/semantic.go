// Package semantic is a thin client for the external vector index that
// serves nearest-neighbor lookups over course descriptions. Embedding
// generation and index maintenance happen entirely in that service; this
// client only sends query text and receives catalog record ids.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds the index endpoint settings.
type Config struct {
	Endpoint string `yaml:"endpoint" env:"SEMANTIC_ENDPOINT"`
	Timeout  string `yaml:"timeout" env:"SEMANTIC_TIMEOUT"`
}

// Client queries the index over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a semantic index client, or nil when no endpoint is
// configured so callers can treat the index as absent.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		return nil
	}
	timeout := 10 * time.Second
	if cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err == nil {
			timeout = d
		}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Text string `json:"text"`
	K    int    `json:"k"`
}

type queryResponse struct {
	IDs []int64 `json:"ids"`
}

// Query returns the ids of the k catalog records nearest to the query text.
func (c *Client) Query(ctx context.Context, text string, k int) ([]int64, error) {
	payload, err := json.Marshal(queryRequest{Text: text, K: k})
	if err != nil {
		return nil, fmt.Errorf("failed to encode index query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create index request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("semantic index unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("semantic index returned status %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode index response: %w", err)
	}
	return out.IDs, nil
}
