package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"foodatlas/internal/config"
	"foodatlas/internal/geo"
)

// Geocoder resolves a free-text location to a coordinate. A false return
// means the text did not resolve; resolution failures never surface as
// errors because the pipeline just skips geofiltering without a coordinate.
type Geocoder interface {
	Resolve(ctx context.Context, text string) (geo.Coordinate, bool)
}

// GeoapifyClient is the Geoapify forward-geocoding implementation.
type GeoapifyClient struct {
	cfg        *config.GeocoderConfig
	httpClient *http.Client
}

// NewGeoapifyClient creates a geocoding client.
func NewGeoapifyClient(cfg *config.GeocoderConfig) *GeoapifyClient {
	return &GeoapifyClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// geocodeResponse is the subset of the Geoapify response we read.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// Resolve geocodes a location query, biased toward the configured city
// center so short queries like "District 1" land in the right place.
func (c *GeoapifyClient) Resolve(ctx context.Context, text string) (geo.Coordinate, bool) {
	if !c.cfg.Enabled {
		return geo.Coordinate{}, false
	}

	query := text
	if c.cfg.RegionSuffix != "" {
		query = text + ", " + c.cfg.RegionSuffix
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("apiKey", c.cfg.APIKey)
	params.Set("limit", "1")
	params.Set("bias", fmt.Sprintf("proximity:%f,%f", c.cfg.BiasLon, c.cfg.BiasLat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("geocoder: building request failed: %v", err)
		return geo.Coordinate{}, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("geocoder: request failed: %v", err)
		return geo.Coordinate{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocoder: unexpected status %d for %q", resp.StatusCode, text)
		return geo.Coordinate{}, false
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("geocoder: decoding response failed: %v", err)
		return geo.Coordinate{}, false
	}

	if len(data.Features) == 0 {
		return geo.Coordinate{}, false
	}
	g := data.Features[0].Geometry
	if g.Type != "Point" || len(g.Coordinates) < 2 {
		return geo.Coordinate{}, false
	}
	// GeoJSON order is [lon, lat].
	return geo.Coordinate{Lat: g.Coordinates[1], Lon: g.Coordinates[0]}, true
}
