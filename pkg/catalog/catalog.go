package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	mhttp "github.com/harwood/mediamap/pkg/http"
	"github.com/harwood/mediamap/pkg/logger"
	"go.uber.org/zap"
)

// ReleaseDateFormat is the date layout used by the catalog service
const ReleaseDateFormat = "2006-01-02"

// Client queries the external metadata catalog
type Client interface {
	SearchByTitle(ctx context.Context, title string, year *int) ([]SearchResult, error)
}

// SearchResult is one canonical record returned by the catalog
type SearchResult struct {
	ExternalID int     `json:"externalID"`
	Title      string  `json:"title"`
	Year       *int    `json:"year,omitempty"`
	PosterPath *string `json:"posterPath,omitempty"`
	Popularity float32 `json:"popularity"`
	VoteCount  int     `json:"voteCount"`
}

type searchResponse struct {
	Page         *int            `json:"page,omitempty"`
	TotalPages   *int            `json:"total_pages,omitempty"`
	TotalResults *int            `json:"total_results,omitempty"`
	Results      []*searchResult `json:"results,omitempty"`
}

type searchResult struct {
	ID          *int     `json:"id,omitempty"`
	Title       *string  `json:"title,omitempty"`
	ReleaseDate *string  `json:"release_date,omitempty"`
	PosterPath  *string  `json:"poster_path,omitempty"`
	Popularity  *float32 `json:"popularity,omitempty"`
	VoteCount   *int     `json:"vote_count,omitempty"`
}

// HTTPClient talks to a TMDB-style metadata catalog over HTTP
type HTTPClient struct {
	client  mhttp.HTTPClient
	baseURL string
	apiKey  string
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// New creates a catalog client for the given base url and api key
func New(baseURL, apiKey string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}

	c := &HTTPClient{
		client:  mhttp.NewRateLimitedHTTPClient(),
		baseURL: baseURL,
		apiKey:  apiKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SearchByTitle issues a title search against the catalog. A year, if given,
// is passed through as a query hint; scoring against it happens in the matcher.
func (c *HTTPClient) SearchByTitle(ctx context.Context, title string, year *int) ([]SearchResult, error) {
	log := logger.FromCtx(ctx)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	u.Path = "/3/search/movie"
	q := u.Query()
	q.Set("query", title)
	if year != nil {
		q.Set("year", strconv.Itoa(*year))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		log.Debug("catalog search request failed", zap.Error(err))
		return nil, err
	}
	defer res.Body.Close()

	return parseSearchResponse(res)
}

func parseSearchResponse(res *http.Response) ([]SearchResult, error) {
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected catalog query status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	response := new(searchResponse)
	if err := json.Unmarshal(b, response); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		if r == nil || r.ID == nil || r.Title == nil {
			continue
		}

		result := SearchResult{
			ExternalID: *r.ID,
			Title:      *r.Title,
			PosterPath: r.PosterPath,
		}
		if r.Popularity != nil {
			result.Popularity = *r.Popularity
		}
		if r.VoteCount != nil {
			result.VoteCount = *r.VoteCount
		}
		if r.ReleaseDate != nil {
			if release, err := time.Parse(ReleaseDateFormat, *r.ReleaseDate); err == nil {
				y := release.Year()
				result.Year = &y
			}
		}

		results = append(results, result)
	}

	return results, nil
}
