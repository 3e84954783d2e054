package journey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
)

// Client talks to the external journey-search backend. The engine only
// consumes this interface; when the backend is unreachable callers fall
// back to the local catalog.

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	httpClient HTTPClient
	baseURL    string
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "http://127.0.0.1:5000",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type SearchRequest struct {
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	Day           string `json:"day"`
	DepartureTime string `json:"departure_time"`
}

type Segment struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Day           string `json:"day"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      int    `json:"duration"`
	Cost          int    `json:"cost"`
	Distance      int    `json:"distance"`
}

type Journey struct {
	TotalCost     int       `json:"total_cost"`
	TotalDuration int       `json:"total_duration"`
	Segments      []Segment `json:"segments"`
}

type SearchResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDay  string `json:"departure_day"`
	DepartureTime string `json:"departure_time"`
	Journeys      struct {
		Cheapest Journey `json:"cheapest"`
		Fastest  Journey `json:"fastest"`
		Optimal  Journey `json:"optimal"`
	} `json:"journeys"`
}

// Search asks the backend for cheapest/fastest/optimal itineraries. Day is
// the lowercase weekday name. An unreachable or misbehaving backend maps to
// ErrRemoteUnavailable so callers can show a message and keep serving the
// local catalog.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/data", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteUnavailable, err)
	}
	return &out, nil
}
