// Package animalapi talks to the API Ninjas animal endpoint: one GET per
// lookup with the free-text query in a query parameter and the API key in an
// X-Api-Key header.
package animalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	datasetloader "github.com/goliatone/go-animalgen/internal/dataset/loader"
	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/dataset"
)

const (
	// DefaultBaseURL is the API Ninjas animals endpoint.
	DefaultBaseURL = "https://api.api-ninjas.com/v1/animals"
	// DefaultQueryParam carries the free-text animal name.
	DefaultQueryParam = "name"

	apiKeyHeader = "X-Api-Key"
)

// Config collects the remote endpoint settings. Zero values fall back to the
// API Ninjas defaults.
type Config struct {
	BaseURL    string
	QueryParam string
	APIKey     string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client performs remote animal lookups.
type Client struct {
	baseURL    string
	queryParam string
	loader     dataset.Loader
	logger     *zap.Logger
}

// New constructs a Client. A nil logger falls back to a no-op logger.
func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	queryParam := cfg.QueryParam
	if queryParam == "" {
		queryParam = DefaultQueryParam
	}

	options := dataset.NewLoaderOptions()
	options.HTTPClient = cfg.HTTPClient
	if cfg.APIKey != "" {
		options.Header = http.Header{apiKeyHeader: []string{cfg.APIKey}}
	}

	return &Client{
		baseURL:    baseURL,
		queryParam: queryParam,
		loader:     datasetloader.New(options),
		logger:     logger,
	}
}

// Fetch performs one lookup and decodes the response into records.
func (c *Client) Fetch(ctx context.Context, query string) ([]animal.Record, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("animalapi: parse base url: %w", err)
	}
	values := endpoint.Query()
	values.Set(c.queryParam, query)
	endpoint.RawQuery = values.Encode()

	data, err := c.loader.Load(ctx, dataset.SourceFromURL(endpoint.String()))
	if err != nil {
		return nil, fmt.Errorf("animalapi: fetch %q: %w", query, err)
	}

	records, err := animal.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("animalapi: decode response for %q: %w", query, err)
	}
	return records, nil
}

// FetchOrEmpty is the collaborator boundary the pipeline consumes: transport
// failures, error statuses, and malformed payloads are logged and mapped to
// an empty record slice, indistinguishable from zero results.
func (c *Client) FetchOrEmpty(ctx context.Context, query string) []animal.Record {
	records, err := c.Fetch(ctx, query)
	if err != nil {
		c.logger.Warn("animalapi: lookup failed, treating as zero results",
			zap.String("query", query),
			zap.Error(err))
		return nil
	}
	return records
}
