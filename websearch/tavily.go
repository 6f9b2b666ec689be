package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/answerit/core"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyClient implements Client against the Tavily Search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Client = (*TavilyClient)(nil)

// TavilyOption configures a TavilyClient.
type TavilyOption func(*TavilyClient)

// WithBaseURL overrides the Tavily API base URL.
// Used by tests to point at a local server.
func WithBaseURL(baseURL string) TavilyOption {
	return func(c *TavilyClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
// Default has a 30 second timeout.
func WithHTTPClient(client *http.Client) TavilyOption {
	return func(c *TavilyClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) TavilyOption {
	return func(c *TavilyClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewTavilyClient creates a web search client for the Tavily Search API.
func NewTavilyClient(apiKey string, opts ...TavilyOption) (*TavilyClient, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &TavilyClient{
		apiKey:     apiKey,
		baseURL:    defaultTavilyBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "tavily"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// tavilyRequest is the Tavily /search request body.
type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// tavilyResponse is the subset of the Tavily /search response we consume.
type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Search runs the query against Tavily and wraps each result into its own
// document with source metadata.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]*core.Document, error) {
	reqBody, err := json.Marshal(tavilyRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating tavily request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling tavily: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("tavily returned non-success status", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var result tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding tavily response: %w", err)
	}

	docs := make([]*core.Document, 0, len(result.Results))
	for _, r := range result.Results {
		if r.Content == "" {
			continue
		}
		docs = append(docs, &core.Document{
			Content: r.Content,
			Metadata: map[string]string{
				core.MetadataSource: "tavily",
				core.MetadataURL:    r.URL,
				core.MetadataTitle:  r.Title,
			},
		})
	}

	c.logger.Debug("web search completed", "query", query, "results", len(docs))
	return docs, nil
}
