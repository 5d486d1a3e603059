// Package geo resolves the approximate location of the machine from its
// public IP address
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultURL is the geojs lookup endpoint.
	DefaultURL = "https://get.geojs.io/v1/ip/geo.json"

	// Placeholder is displayed when the location cannot be resolved.
	Placeholder = "WORLDWIDE"

	// Pending is displayed while a lookup is in flight.
	Pending = "Wait..."

	timeout = 5 * time.Second
)

type response struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Client looks up locations.
type Client struct {
	HTTP *http.Client
	URL  string
}

// NewClient returns a client for the public geojs service.
func NewClient() *Client {
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
		URL:  DefaultURL,
	}
}

// Lookup returns "City, Country". It never fails: any error is logged and
// yields Placeholder.
func (c *Client) Lookup(ctx context.Context) string {
	loc, err := c.lookup(ctx)
	if err != nil {
		slog.Warn("location lookup failed", slog.Any("error", err))
		return Placeholder
	}

	return loc
}

func (c *Client) lookup(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, http.NoBody)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var r response

	err = json.NewDecoder(resp.Body).Decode(&r)
	if err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	parts := make([]string, 0, 2)

	for _, s := range []string{r.City, r.Country} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("response has no location")
	}

	return strings.Join(parts, ", "), nil
}
