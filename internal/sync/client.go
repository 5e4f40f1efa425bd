package sync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
)

// APIError represents a non-2xx HTTP response from a source endpoint.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Client fetches file listings and raw log files from a source's HTTP
// endpoints. Requests are synchronous with no retry; a failed request
// surfaces as an error to the caller.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client using the transport's default timeout
// behavior.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

type listResponse struct {
	Files []string `json:"files"`
}

// ListFiles fetches the filenames available at a source's listing
// endpoint. An empty but successful listing returns an empty slice and
// nil error; a failed listing returns a non-nil error.
func (c *Client) ListFiles(ctx context.Context, listURL, authKey string) ([]string, error) {
	body, err := c.get(ctx, listURL, authKey)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode file listing: %w", err)
	}
	if resp.Files == nil {
		return []string{}, nil
	}
	return resp.Files, nil
}

// DownloadFile fetches the raw content of one log file from a source's
// download endpoint.
func (c *Client) DownloadFile(ctx context.Context, downloadURL, filename, authKey string) ([]byte, error) {
	fileURL := strings.TrimRight(downloadURL, "/") + "/" + url.PathEscape(filename)
	return c.get(ctx, fileURL, authKey)
}

func (c *Client) get(ctx context.Context, fullURL, authKey string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	if authKey != "" {
		req.Header.Set("Authorization", "Bearer "+authKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyStr := string(body)
		if len(bodyStr) > 512 {
			bodyStr = bodyStr[:512]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: bodyStr}
	}

	return body, nil
}
