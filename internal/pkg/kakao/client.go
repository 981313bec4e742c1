package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	localAPIBaseURL    = "https://dapi.kakao.com"
	mobilityAPIBaseURL = "https://apis-navi.kakaomobility.com"
)

// Client calls the Kakao Local (geocoding) and Kakao Mobility (directions)
// REST APIs. Kakao does not publish a Go SDK, so requests are issued
// directly against the documented endpoints.
type Client struct {
	restAPIKey string
	httpClient *http.Client
}

func NewClient(restAPIKey string) *Client {
	return &Client{
		restAPIKey: restAPIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError represents a non-2xx response from a Kakao API.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kakao API error [%d] %s", e.StatusCode, e.Endpoint)
}

type addressSearchResponse struct {
	Documents []struct {
		X string `json:"x"` // longitude
		Y string `json:"y"` // latitude
	} `json:"documents"`
}

// ErrNoResult is returned when an address resolves to no coordinates.
var ErrNoResult = fmt.Errorf("kakao: no result for query")

// Geocode resolves a street address to WGS84 coordinates using the Kakao
// Local address search API.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	endpoint := localAPIBaseURL + "/v2/local/search/address.json?query=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, &APIError{StatusCode: resp.StatusCode, Endpoint: "/v2/local/search/address.json"}
	}

	var body addressSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, err
	}
	if len(body.Documents) == 0 {
		return 0, 0, ErrNoResult
	}

	doc := body.Documents[0]
	lat, err = strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("kakao: invalid latitude %q: %w", doc.Y, err)
	}
	lng, err = strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("kakao: invalid longitude %q: %w", doc.X, err)
	}
	return lat, lng, nil
}

type directionsResponse struct {
	Routes []struct {
		ResultCode int `json:"result_code"`
		Summary    struct {
			Distance int `json:"distance"` // meters
			Fare     struct {
				Toll int `json:"toll"`
			} `json:"fare"`
		} `json:"summary"`
	} `json:"routes"`
}

// DrivingDistance resolves a driving route between two coordinates using
// the Kakao Mobility directions API. Returns the distance in kilometers
// and whether the route includes a tolled section.
func (c *Client) DrivingDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (km float64, hasToll bool, err error) {
	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", fromLng, fromLat))
	q.Set("destination", fmt.Sprintf("%f,%f", toLng, toLat))
	endpoint := mobilityAPIBaseURL + "/v1/directions?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, false, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, &APIError{StatusCode: resp.StatusCode, Endpoint: "/v1/directions"}
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, false, err
	}
	if len(body.Routes) == 0 || body.Routes[0].ResultCode != 0 {
		return 0, false, ErrNoResult
	}

	summary := body.Routes[0].Summary
	km = float64(summary.Distance) / 1000.0
	hasToll = summary.Fare.Toll > 0
	return km, hasToll, nil
}
