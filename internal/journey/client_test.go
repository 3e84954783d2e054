package journey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClient_Search_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/data", r.URL.Path)

		var req SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "JFK", req.Source)
		assert.Equal(t, "tuesday", req.Day)

		json.NewEncoder(w).Encode(SearchResponse{
			Origin:       "JFK",
			Destination:  "LHR",
			DepartureDay: "tuesday",
			Journeys: struct {
				Cheapest Journey `json:"cheapest"`
				Fastest  Journey `json:"fastest"`
				Optimal  Journey `json:"optimal"`
			}{
				Cheapest: Journey{TotalCost: 450, TotalDuration: 720, Segments: []Segment{{From: "JFK", To: "LHR", Duration: 720, Cost: 450}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	resp, err := client.Search(context.Background(), SearchRequest{
		Source: "JFK", Destination: "LHR", Day: "tuesday", DepartureTime: "08:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "JFK", resp.Origin)
	assert.Equal(t, 450, resp.Journeys.Cheapest.TotalCost)
	assert.Len(t, resp.Journeys.Cheapest.Segments, 1)
}

func TestClient_Search_BackendDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), SearchRequest{Source: "JFK", Destination: "LHR"})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestClient_Search_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), SearchRequest{Source: "JFK", Destination: "LHR"})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestClient_Search_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), SearchRequest{Source: "JFK", Destination: "LHR"})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}
