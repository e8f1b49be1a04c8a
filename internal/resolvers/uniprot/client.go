package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
)

// maxErrorBodyBytes bounds how much of an error response body is kept for
// the error message.
const maxErrorBodyBytes = 512

// Ensure Client implements the interface.
var _ driven.RegistrySearcher = (*Client)(nil)

// Client is the HTTP transport for the UniProt REST search API.
// It issues exactly two query shapes: by secondary accession and by
// primary accession. "No match" is an empty result list, never an error.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	pageSize    int
	rateLimiter *RateLimiter
}

// NewClient creates a registry search client from cfg.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		pageSize:    DefaultPageSize,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// SearchBySecondary returns entries whose secondary-accession list contains
// any of the given accessions.
func (c *Client) SearchBySecondary(ctx context.Context, accessions []string) ([]driven.RegistryEntry, error) {
	return c.search(ctx, FieldSecondaryAccession, accessions)
}

// SearchByPrimary returns entries whose primary accession equals one of the
// given accessions.
func (c *Client) SearchByPrimary(ctx context.Context, accessions []string) ([]driven.RegistryEntry, error) {
	return c.search(ctx, FieldPrimaryAccession, accessions)
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// searchResponse mirrors the registry's JSON response shape.
type searchResponse struct {
	Results []searchEntry `json:"results"`
}

type searchEntry struct {
	PrimaryAccession    string   `json:"primaryAccession"`
	SecondaryAccessions []string `json:"secondaryAccessions"`
}

// search runs one OR-combined field query against the registry.
func (c *Client) search(ctx context.Context, field string, accessions []string) ([]driven.RegistryEntry, error) {
	if len(accessions) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", buildQuery(field, accessions))
	params.Set("fields", "accession,sec_acc")
	params.Set("format", "json")
	params.Set("size", strconv.Itoa(c.pageSize))
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", field, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.rateLimiter.CheckResponse(resp); err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			URL:        reqURL,
		}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	entries := make([]driven.RegistryEntry, len(parsed.Results))
	for i, r := range parsed.Results {
		entries[i] = driven.RegistryEntry{
			PrimaryAccession:    r.PrimaryAccession,
			SecondaryAccessions: r.SecondaryAccessions,
		}
	}
	return entries, nil
}
