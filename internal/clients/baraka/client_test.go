package baraka

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mattcarrick/folio/internal/models"
)

func TestGetHistoricalPrices(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"date": "2025-01-02", "close": 101.5},
			{"date": "2025-01-01", "close": 100.25},
			{"date": "bogus", "close": 99},
			{"date": "2025-01-03", "close": 0}
		]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	series, err := client.GetHistoricalPrices(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("GetHistoricalPrices failed: %v", err)
	}

	if gotPath != "/v1/finance_market/quotes/AAPL/historical" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "interval=day&range=month" {
		t.Errorf("query = %q", gotQuery)
	}

	// Bad date and zero close dropped.
	if len(series) != 2 {
		t.Fatalf("series has %d points, want 2", len(series))
	}
	if series[0].Close != 101.5 || models.DayKey(series[0].Date) != "2025-01-02" {
		t.Errorf("first point = %+v", series[0])
	}
}

func TestGetHistoricalPrices_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "symbol not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.GetHistoricalPrices(context.Background(), "AAPL")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %T (%v), want *APIError", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
}

func TestGetHistoricalPrices_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GetHistoricalPrices(ctx, "AAPL"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient()

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}
