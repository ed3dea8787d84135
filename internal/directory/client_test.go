package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tamonkoch/drink-shop-backend/internal/notify"
)

func TestClient_OfflineModeServesFallbacks(t *testing.T) {
	c := NewClient("", &notify.Recorder{})

	cities := c.Cities(context.Background())
	if len(cities) == 0 {
		t.Fatalf("expected built-in cities")
	}

	quarters := c.QuartersByCity(context.Background(), "douala")
	if len(quarters) == 0 {
		t.Fatalf("expected built-in quarters for douala")
	}
	for _, q := range quarters {
		if q.CityValue != "douala" {
			t.Fatalf("quarter %q scoped to %q, want douala", q.Value, q.CityValue)
		}
	}
}

func TestClient_EmptyCityYieldsEmptyResultWithoutRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &notify.Recorder{})
	quarters := c.QuartersByCity(context.Background(), "")
	if len(quarters) != 0 {
		t.Fatalf("expected empty result for empty city")
	}
	if requests != 0 {
		t.Fatalf("expected no request for empty city, got %d", requests)
	}
}

func TestClient_RemoteFailureFallsBackAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := &notify.Recorder{}
	c := NewClient(srv.URL, rec)

	cities := c.Cities(context.Background())
	if len(cities) == 0 {
		t.Fatalf("expected fallback cities on remote failure")
	}
	quarters := c.QuartersByCity(context.Background(), "yaounde")
	if len(quarters) == 0 {
		t.Fatalf("expected fallback quarters on remote failure")
	}

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 error notifications, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Kind != notify.KindError {
			t.Fatalf("expected error kind, got %s", ev.Kind)
		}
	}
}

func TestClient_RemoteSuccessAndScopeFiltering(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/cities":
			w.Write([]byte(`[{"value":"douala","label":"Douala"}]`))
		case "/cities/douala/quarters":
			// the second entry is mis-scoped and must be dropped
			w.Write([]byte(`[{"value":"akwa","label":"Akwa","cityValue":"douala"},{"value":"bastos","label":"Bastos","cityValue":"yaounde"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &notify.Recorder{})

	cities := c.Cities(context.Background())
	if len(cities) != 1 || cities[0].Value != "douala" {
		t.Fatalf("unexpected cities: %+v", cities)
	}

	quarters := c.QuartersByCity(context.Background(), "douala")
	if len(quarters) != 1 || quarters[0].Value != "akwa" {
		t.Fatalf("expected mis-scoped quarter dropped, got %+v", quarters)
	}
}
