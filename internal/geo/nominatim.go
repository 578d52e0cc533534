// Package geo resolves coordinates to countries.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrNoCountry = errors.New("no country found for the coordinates")

// Geocoder returns the ISO 3166-1 alpha-2 code of the country at a location.
type Geocoder interface {
	Country(ctx context.Context, latitude, longitude float64) (string, error)
}

// Nominatim is a client for the reverse geocoding API of Nominatim.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatim(baseURL, userAgent string) *Nominatim {
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseResponse struct {
	Error   string `json:"error"`
	Address struct {
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Country queries at zoom level 3, which is the country level.
func (n *Nominatim) Country(ctx context.Context, latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("coordinates out of range: %f, %f", latitude, longitude)
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("zoom", "3")
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding: unexpected status %d", resp.StatusCode)
	}

	var r reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("reverse geocoding: %w", err)
	}

	if r.Error != "" || r.Address.CountryCode == "" {
		return "", ErrNoCountry
	}

	return strings.ToUpper(r.Address.CountryCode), nil
}
