package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tamonkoch/drink-shop-backend/internal/notify"
)

// Client fetches cities and quarters from the remote address directory.
// Every failure degrades to the built-in lists: checkout proceeds with
// fallback data rather than blocking on the directory.
type Client struct {
	baseURL  string
	http     *http.Client
	notifier notify.Notifier
}

// NewClient builds a directory client. An empty baseURL means fallback
// data only (offline mode).
func NewClient(baseURL string, notifier notify.Notifier) *Client {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 5 * time.Second},
		notifier: notifier,
	}
}

// Cities returns the selectable city list, falling back to the built-in
// major cities on any transport or decode failure.
func (c *Client) Cities(ctx context.Context) []City {
	if c.baseURL == "" {
		return copyCities(fallbackCities)
	}

	var cities []City
	if err := c.getJSON(ctx, c.baseURL+"/cities", &cities); err != nil {
		c.notifier.Notify("Error loading cities", err.Error(), notify.KindError)
		return copyCities(fallbackCities)
	}
	if len(cities) == 0 {
		return copyCities(fallbackCities)
	}
	return cities
}

// QuartersByCity returns the quarter list for cityValue. An empty city
// yields an empty result with no request; failures fall back to the
// built-in quarters scoped to that city.
func (c *Client) QuartersByCity(ctx context.Context, cityValue string) []Quarter {
	if cityValue == "" {
		return []Quarter{}
	}
	if c.baseURL == "" {
		return genericQuarters(cityValue)
	}

	var quarters []Quarter
	endpoint := fmt.Sprintf("%s/cities/%s/quarters", c.baseURL, url.PathEscape(cityValue))
	if err := c.getJSON(ctx, endpoint, &quarters); err != nil {
		c.notifier.Notify("Error loading quarters", err.Error(), notify.KindError)
		return genericQuarters(cityValue)
	}
	if len(quarters) == 0 {
		return genericQuarters(cityValue)
	}
	// drop entries the remote mis-scoped to another city
	out := quarters[:0]
	for _, q := range quarters {
		if q.CityValue == cityValue {
			out = append(out, q)
		}
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("directory returned status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(v)
}

func copyCities(cities []City) []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}
