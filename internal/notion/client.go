// Package notion is a thin client for the hierarchical document service
// REST API. It carries no decision logic: every method is one endpoint,
// attempted exactly once, with pagination hidden behind the listing
// helpers.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	// DefaultPageSize is the listing page size used when none is configured.
	DefaultPageSize = 100
)

// Client talks to the document service with one workspace's credential.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithPageSize sets the listing page size (1..100).
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 && n <= 100 {
			c.pageSize = n
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client authenticated with the given integration token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		pageSize:   DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listPage is one page of a cursor-paginated listing response.
type listPage[T any] struct {
	Results    []T    `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// fetchAll drains a cursor-paginated listing, preserving source order.
// Any single page's failure fails the whole call; callers treat that as
// "no items available".
func fetchAll[T any](ctx context.Context, fetch func(ctx context.Context, cursor string) (*listPage[T], error)) ([]T, error) {
	var all []T
	cursor := ""
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// QueryDatabase returns every row of a database, in listing order.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string) ([]Page, error) {
	rows, err := fetchAll(ctx, func(ctx context.Context, cursor string) (*listPage[Page], error) {
		body := map[string]any{"page_size": c.pageSize}
		if cursor != "" {
			body["start_cursor"] = cursor
		}
		var page listPage[Page]
		err := c.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", body, &page)
		if err != nil {
			return nil, err
		}
		return &page, nil
	})
	if err != nil {
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}
	return rows, nil
}

// GetPage retrieves a single page record.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, "/v1/pages/"+pageID, nil, &page); err != nil {
		return nil, fmt.Errorf("get page %s: %w", pageID, err)
	}
	return &page, nil
}

// UpdatePage applies a property patch to a page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]Property) error {
	body := map[string]any{"properties": properties}
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, body, nil); err != nil {
		return fmt.Errorf("update page %s: %w", pageID, err)
	}
	return nil
}

// CreateComment posts a comment on a page.
func (c *Client) CreateComment(ctx context.Context, pageID string, richText []RichText) error {
	body := map[string]any{
		"parent":    map[string]string{"page_id": pageID},
		"rich_text": richText,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/comments", body, nil); err != nil {
		return fmt.Errorf("create comment on %s: %w", pageID, err)
	}
	return nil
}

// ListBlockChildren returns every child block of a page or block, in
// listing order.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	blocks, err := fetchAll(ctx, func(ctx context.Context, cursor string) (*listPage[Block], error) {
		q := url.Values{}
		q.Set("page_size", strconv.Itoa(c.pageSize))
		if cursor != "" {
			q.Set("start_cursor", cursor)
		}
		var page listPage[Block]
		err := c.do(ctx, http.MethodGet, "/v1/blocks/"+blockID+"/children?"+q.Encode(), nil, &page)
		if err != nil {
			return nil, err
		}
		return &page, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list children of %s: %w", blockID, err)
	}
	return blocks, nil
}

// UpdateBlock replaces a block's rich-text payload. blockType selects
// the content key (paragraph, heading_1, ...).
func (c *Client) UpdateBlock(ctx context.Context, blockID, blockType string, richText []RichText) error {
	body := map[string]any{
		blockType: map[string]any{"rich_text": richText},
	}
	if err := c.do(ctx, http.MethodPatch, "/v1/blocks/"+blockID, body, nil); err != nil {
		return fmt.Errorf("update block %s: %w", blockID, err)
	}
	return nil
}

// AppendBlockChildren appends blocks as the last children of a page.
func (c *Client) AppendBlockChildren(ctx context.Context, pageID string, blocks []Block) error {
	body := map[string]any{"children": blocks}
	if err := c.do(ctx, http.MethodPatch, "/v1/blocks/"+pageID+"/children", body, nil); err != nil {
		return fmt.Errorf("append children to %s: %w", pageID, err)
	}
	return nil
}

// UpdateDatabaseSchema applies a property patch to a database schema.
func (c *Client) UpdateDatabaseSchema(ctx context.Context, databaseID string, properties map[string]SchemaProperty) error {
	body := map[string]any{"properties": properties}
	if err := c.do(ctx, http.MethodPatch, "/v1/databases/"+databaseID, body, nil); err != nil {
		return fmt.Errorf("update database schema %s: %w", databaseID, err)
	}
	return nil
}

// do executes one API call. No retries: a failed call is rediscovered
// on the next scheduled run.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: status %d: %s (%s)", method, path, resp.StatusCode, apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
