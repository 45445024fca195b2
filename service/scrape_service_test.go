package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWardrobeURL = "https://www.vinted.com/member/12345-closetqueen"

func TestScrapeRejectsInvalidURLWithoutNetworkCall(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := NewScrapeService(server.URL, "")
	_, err := svc.Scrape(context.Background(), "https://example.com/catalog")

	require.ErrorIs(t, err, ErrInvalidWardrobeURL)
	assert.Equal(t, 0, requests, "validation failures must not hit the network")
}

func TestScrapeParsesSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scrape-wardrobe", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"username": "closetqueen",
			"userId": "98765",
			"items": [
				{"id": "1", "title": "Denim jacket", "price": "25.00", "imageUrl": "https://img/1.jpg", "brand": "Levi's"},
				{"id": "2", "title": "Silk scarf", "price": "8.50", "imageUrl": "https://img/2.jpg"}
			]
		}`))
	}))
	defer server.Close()

	svc := NewScrapeService(server.URL, "secret-key")
	snapshot, err := svc.Scrape(context.Background(), validWardrobeURL)
	require.NoError(t, err)

	assert.Equal(t, "closetqueen", snapshot.Username)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "Denim jacket", snapshot.Items[0].Title)
	assert.False(t, snapshot.ScrapedAt.IsZero())

	item, ok := snapshot.Item("2")
	require.True(t, ok)
	assert.Equal(t, "Silk scarf", item.Title)
}

func TestScrapeOmitsAPIKeyHeaderWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Api-Key"]
		assert.False(t, present, "header must be omitted, not sent empty")
		w.Write([]byte(`{"username": "u", "userId": "1", "items": []}`))
	}))
	defer server.Close()

	svc := NewScrapeService(server.URL, "")
	_, err := svc.Scrape(context.Background(), validWardrobeURL)
	require.NoError(t, err)
}

func TestScrapeSurfacesUpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"success": false, "error": "profile is private"}`))
	}))
	defer server.Close()

	svc := NewScrapeService(server.URL, "")
	_, err := svc.Scrape(context.Background(), validWardrobeURL)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, ErrorKindService, upstream.Kind)
	assert.Equal(t, "profile is private", upstream.Message)
}

func TestScrapeClassifiesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	svc := NewScrapeService(server.URL, "")
	_, err := svc.Scrape(context.Background(), validWardrobeURL)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, ErrorKindNetwork, upstream.Kind)
	assert.Contains(t, upstream.Message, "connection")
}
