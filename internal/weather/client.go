package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Visual Crossing timeline endpoint.
const DefaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// timeFormat matches the date strings the timeline API accepts.
const timeFormat = "2006-01-02T15:04:05"

// Classified upstream failures. The HTTP surface maps each to a distinct
// outward status.
var (
	ErrUpstreamClient       = fmt.Errorf("upstream rejected the request")
	ErrUpstreamUnavailable  = fmt.Errorf("upstream service unavailable")
	ErrUpstreamUnclassified = fmt.Errorf("unexpected upstream response")
	ErrMalformedResponse    = fmt.Errorf("malformed upstream response")
)

// Fetcher abstracts the upstream weather-history provider so the service
// layer can be tested without network access.
type Fetcher interface {
	FetchTimeline(ctx context.Context, place string, start, end time.Time) (*QueryResult, error)
}

// Client queries the Visual Crossing timeline API. A single attempt per
// call: no retries, no caching, timeout comes from the injected http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchTimeline requests weather history for the place between start and
// end, in metric units as JSON. The place is free text and is path-escaped
// so delimiter characters in location names cannot break the request line.
func (c *Client) FetchTimeline(ctx context.Context, place string, start, end time.Time) (*QueryResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key is not configured")
	}

	values := url.Values{}
	values.Set("unitGroup", "metric")
	values.Set("key", c.apiKey)
	values.Set("contentType", "json")

	u := fmt.Sprintf("%s/%s/%s/%s?%s",
		c.baseURL,
		url.PathEscape(place),
		start.Format(timeFormat),
		end.Format(timeFormat),
		values.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// parsed below
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamClient, resp.StatusCode)
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnclassified, resp.StatusCode)
	}

	var result QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &result, nil
}
