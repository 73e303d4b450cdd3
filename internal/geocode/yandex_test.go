package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func yandexBody(pos string) string {
	return `{
		"response": {
			"GeoObjectCollection": {
				"featureMember": [
					{"GeoObject": {"Point": {"pos": "` + pos + `"}}}
				]
			}
		}
	}`
}

func TestYandexClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "secret" {
			t.Errorf("expected apikey to be forwarded, got %q", got)
		}
		if got := r.URL.Query().Get("geocode"); got != "Moscow, Lva Tolstogo 16" {
			t.Errorf("unexpected geocode query %q", got)
		}
		w.Write([]byte(yandexBody("37.587093 55.733969")))
	}))
	defer server.Close()

	client := NewYandexClientWithBaseURL(server.URL)

	point, err := client.Geocode(context.Background(), "secret", "Moscow, Lva Tolstogo 16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Point{Lon: 37.587093, Lat: 55.733969}
	if point != want {
		t.Fatalf("expected %v, got %v", want, point)
	}
}

func TestYandexClient_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"GeoObjectCollection": {"featureMember": []}}}`))
	}))
	defer server.Close()

	client := NewYandexClientWithBaseURL(server.URL)

	_, err := client.Geocode(context.Background(), "secret", "Unknown St 999")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestYandexClient_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewYandexClientWithBaseURL(server.URL)

	_, err := client.Geocode(context.Background(), "bad-key", "anywhere")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestYandexClient_MalformedPosition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(yandexBody("not-a-number")))
	}))
	defer server.Close()

	client := NewYandexClientWithBaseURL(server.URL)

	_, err := client.Geocode(context.Background(), "secret", "anywhere")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
