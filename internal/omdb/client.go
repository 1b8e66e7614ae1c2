package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"watchlog/internal/models"
)

// ErrNotFound is returned when OMDb answers with Response "False".
var ErrNotFound = errors.New("omdb: title not found")

// CanonicalRatingSource is the rating entry used as the critics rating.
const CanonicalRatingSource = "Internet Movie Database"

// Rating is one entry of the Ratings array.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Title models the OMDb lookup-by-title response.
type Title struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Ratings    []Rating `json:"Ratings"`
	IMDBRating string   `json:"imdbRating"`
	IMDBID     string   `json:"imdbID"`
	Type       string   `json:"Type"`
	Production string   `json:"Production"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error"`
}

// LookupOptions narrows a lookup.
type LookupOptions struct {
	Year string
	Type string
}

// Lookuper is the lookup surface used by the upsert and backfill paths.
type Lookuper interface {
	Lookup(ctx context.Context, title string, opts LookupOptions) (*Title, error)
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches a single title.
func (c *Client) Lookup(ctx context.Context, title string, opts LookupOptions) (*Title, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}
	if year := strings.TrimSpace(opts.Year); year != "" {
		params.Set("y", year)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from OMDb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("OMDb API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result Title
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode OMDb response: %w", err)
	}
	if result.Response != "True" {
		if result.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, result.Error)
		}
		return nil, ErrNotFound
	}
	return &result, nil
}

// CriticsRating returns the numeric part of the canonical rating, or nil when
// there is no usable canonical entry.
func (t *Title) CriticsRating() *float64 {
	for _, rating := range t.Ratings {
		if rating.Source != CanonicalRatingSource {
			continue
		}
		value, _, _ := strings.Cut(rating.Value, "/")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &parsed
	}
	return nil
}

// RuntimeMinutes parses values such as "139 min".
func (t *Title) RuntimeMinutes() *int {
	value, _, _ := strings.Cut(t.Runtime, " min")
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &minutes
}

// GenreList returns the genres comma-joined without padding.
func (t *Title) GenreList() string {
	parts := strings.Split(t.Genre, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}

// Catalog converts the response into catalog fields. Text fields absent from
// the payload stay nil; OMDb's "N/A" placeholders are kept verbatim.
func (t *Title) Catalog() models.CatalogFields {
	return models.CatalogFields{
		Period:        optional(t.Year),
		CriticsRating: t.CriticsRating(),
		Genres:        optional(t.GenreList()),
		Director:      optional(t.Director),
		Stars:         optional(t.Actors),
		Studio:        optional(t.Production),
		Runtime:       t.RuntimeMinutes(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
