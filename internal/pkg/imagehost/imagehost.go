// Package imagehost uploads rendered calendar documents to a temporary
// image host and returns retrievable URLs. Hosted files expire after a
// bounded window, so URLs are handed to the conversation immediately and
// never stored.
package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/selim/coursepilot/internal/pkg/logger"
)

// Config holds the upload endpoint settings.
type Config struct {
	Endpoint string `yaml:"endpoint" env:"IMAGEHOST_ENDPOINT"`
	Expiry   string `yaml:"expiry" env:"IMAGEHOST_EXPIRY"`
	Timeout  string `yaml:"timeout" env:"IMAGEHOST_TIMEOUT"`
}

// Client uploads documents over HTTP as multipart form data.
type Client struct {
	endpoint string
	expiry   string
	http     *http.Client
}

// NewClient creates an image host client. expiry selects the host-side
// retention window (e.g. "24h"); the host enforces the actual bound.
func NewClient(cfg Config) *Client {
	timeout := 15 * time.Second
	if cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err == nil {
			timeout = d
		}
	}
	expiry := cfg.Expiry
	if expiry == "" {
		expiry = "24h"
	}
	return &Client{
		endpoint: cfg.Endpoint,
		expiry:   expiry,
		http:     &http.Client{Timeout: timeout},
	}
}

// Upload posts the document and returns the hosted URL. Callers treat any
// returned error as non-fatal: the schedule view degrades to text.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("no image host endpoint configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("reqtype", "fileupload"); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.WriteField("time", c.expiry); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("fileToUpload", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("failed to read image host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	url := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(url, "http") {
		return "", fmt.Errorf("image host returned unexpected body %q", url)
	}

	logger.Debug().Str("url", url).Int("bytes", len(data)).Msg("Calendar image uploaded")
	return url, nil
}
