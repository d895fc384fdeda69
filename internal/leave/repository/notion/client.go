package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public Notion API root.
const DefaultBaseURL = "https://api.notion.com/v1"

// DefaultVersion is the Notion-Version header the database schema was built
// against.
const DefaultVersion = "2021-08-16"

// Client is the HTTP wrapper for the Notion REST API.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
}

// NewClient creates a new Notion HTTP client. Empty baseURL and version
// fall back to the defaults.
func NewClient(baseURL, token, version string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if version == "" {
		version = DefaultVersion
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		version:    version,
		httpClient: &http.Client{},
	}
}

// APIError is a non-2xx answer from Notion.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// CreatePage creates a database row via POST /pages.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	var page Page
	if err := c.do(ctx, "create", http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// QueryDatabase runs one page of POST /databases/{id}/query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.do(ctx, "query", http.MethodPost, fmt.Sprintf("/databases/%s/query", databaseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ArchivePage soft-deletes a page via PATCH /pages/{id} {"archived": true}.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	body := map[string]bool{"archived": true}
	if err := c.do(ctx, "archive", http.MethodPatch, fmt.Sprintf("/pages/%s", pageID), body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal notion %s request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build notion %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Notion-Version", c.version)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notion %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notion %s response: %w", op, err)
	}
	return nil
}
