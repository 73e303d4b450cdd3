package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultYandexBaseURL = "https://geocode-maps.yandex.ru/1.x/"

// YandexClient calls the Yandex geocoder HTTP API.
type YandexClient struct {
	baseURL string
	http    *http.Client
}

func NewYandexClient() *YandexClient {
	return &YandexClient{
		baseURL: defaultYandexBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewYandexClientWithBaseURL points the client at a non-default endpoint.
func NewYandexClientWithBaseURL(baseURL string) *YandexClient {
	client := NewYandexClient()
	client.baseURL = baseURL
	return client
}

func (y *YandexClient) Geocode(ctx context.Context, apiKey, address string) (Point, error) {
	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("geocode", address)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		y.baseURL+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := y.http.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("%w: geocoder returned status %d", ErrUnavailable, resp.StatusCode)
	}

	// Yandex geocoder response shape
	var result struct {
		Response struct {
			GeoObjectCollection struct {
				FeatureMember []struct {
					GeoObject struct {
						Point struct {
							Pos string `json:"pos"`
						} `json:"Point"`
					} `json:"GeoObject"`
				} `json:"featureMember"`
			} `json:"GeoObjectCollection"`
		} `json:"response"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	members := result.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return Point{}, fmt.Errorf("%w: no match for %q", ErrUnavailable, address)
	}

	point, err := parsePos(members[0].GeoObject.Point.Pos)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return point, nil
}

// parsePos decodes the "lon lat" pair the geocoder returns.
func parsePos(pos string) (Point, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("malformed position %q", pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed longitude %q", fields[0])
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed latitude %q", fields[1])
	}

	return Point{Lon: lon, Lat: lat}, nil
}
