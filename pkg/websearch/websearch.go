// Package websearch queries the Google Custom Search JSON API.
package websearch

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const (
	DefaultNumResults = 5
	maxNumResults     = 10 // API limit per request
)

var ErrMissingCredentials = errors.New("websearch: api key and engine id are required")

// Result is one search hit.
type Result struct {
	Title       string
	Description string
	Link        string
}

// Searcher returns the top results for a query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}

type Config struct {
	APIKey   string
	EngineID string
}

type Client struct {
	svc      *customsearch.Service
	engineID string
}

var _ Searcher = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, ErrMissingCredentials
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("websearch: create service: %w", err)
	}

	return &Client{svc: svc, engineID: cfg.EngineID}, nil
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	resp, err := c.svc.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(int64(clampLimit(limit))).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("websearch: %q: %w", query, err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, Result{
			Title:       item.Title,
			Description: item.Snippet,
			Link:        item.Link,
		})
	}
	return results, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultNumResults
	case limit > maxNumResults:
		return maxNumResults
	default:
		return limit
	}
}

// Disabled is used when no credentials are configured. It never returns
// results, so callers answer from the model alone.
type Disabled struct{}

var _ Searcher = Disabled{}

func (Disabled) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	return nil, nil
}
