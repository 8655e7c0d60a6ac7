// Package routes looks up driving distance and duration between an
// extracted origin and destination through a directions-style HTTP API.
// Lookups are best-effort: every failure degrades to an empty route.
package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"dispatch-move-logger/internal/logging"
	"dispatch-move-logger/internal/models"
)

// Planner is the lookup surface the processor depends on.
type Planner interface {
	Lookup(ctx context.Context, origin, destination string) models.Route
}

// Place text that means "we don't know yet" and must never be geocoded.
var placeholderTokens = []string{"tbc", "to be confirmed", "unknown"}

// UK-style postcode shape; a place carrying one is already specific enough
// and is not augmented with the regional suffix.
var postcodeRe = regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d[A-Z0-9]?\s*\d[A-Z]{2}\b`)

// Eligible reports whether a route lookup makes sense for this pair: both
// places present and neither a placeholder.
func Eligible(origin, destination string) bool {
	if origin == "" || destination == "" {
		return false
	}
	for _, place := range []string{origin, destination} {
		lower := strings.ToLower(place)
		for _, token := range placeholderTokens {
			if strings.Contains(lower, token) {
				return false
			}
		}
	}
	return true
}

// Client calls a Google-Directions-compatible endpoint.
type Client struct {
	httpClient *http.Client
	cfg        models.RouteConfig
}

func NewClient(cfg models.RouteConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
	}
}

// augment appends the configured regional suffix unless the place already
// carries a comma-separated qualifier or a postcode-shaped token.
func (c *Client) augment(place string) string {
	if c.cfg.RegionSuffix == "" || strings.Contains(place, ",") || postcodeRe.MatchString(place) {
		return place
	}
	return place + ", " + c.cfg.RegionSuffix
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Lookup resolves distance, duration and a canonical map link for the
// pair. The zero Route is returned on any failure or missing data.
func (c *Client) Lookup(ctx context.Context, origin, destination string) models.Route {
	origin = c.augment(origin)
	destination = c.augment(destination)

	route, err := c.lookup(ctx, origin, destination)
	if err != nil {
		logging.Log.Warnf("Route lookup %q -> %q failed: %v", origin, destination, err)
		return models.Route{}
	}
	return route
}

func (c *Client) lookup(ctx context.Context, origin, destination string) (models.Route, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("mode", c.cfg.Mode)
	if c.cfg.APIKey != "" {
		query.Set("key", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.cfg.BaseURL, "/")+"/maps/api/directions/json?"+query.Encode(), nil)
	if err != nil {
		return models.Route{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Route{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.Route{}, fmt.Errorf("directions API returned %s", resp.Status)
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.Route{}, err
	}
	if parsed.Status != "OK" || len(parsed.Routes) == 0 || len(parsed.Routes[0].Legs) == 0 {
		return models.Route{}, fmt.Errorf("directions API status %q with no usable route", parsed.Status)
	}

	leg := parsed.Routes[0].Legs[0]
	return models.Route{
		Distance: leg.Distance.Text,
		Duration: leg.Duration.Text,
		MapURL:   MapLink(origin, destination, c.cfg.Mode),
	}, nil
}

// MapLink builds the canonical shareable directions URL for the pair.
func MapLink(origin, destination, mode string) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("travelmode", mode)
	return "https://www.google.com/maps/dir/?" + query.Encode()
}
