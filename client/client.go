// Package client is a typed HTTP client for the voyagecms API, used by the
// importer and other in-house tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/voyagehq/voyagecms/internal/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
	token   string
}

// New returns a client for the API at baseURL. token is sent as a bearer
// credential on every request; pass "" for read-only access.
func New(baseURL, token string) *Client {
	return &Client{
		client:  &http.Client{Timeout: defaultTimeout},
		cache:   cache.New(10*time.Minute, 15*time.Minute),
		baseURL: baseURL,
		token:   token,
	}
}

func (c *Client) request(ctx context.Context, method, path string, body any, result any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status code %d", method, path, resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

// ListLookup returns the records of one lookup kind, cached in-process.
func (c *Client) ListLookup(ctx context.Context, kind string) ([]domain.LookupRecord, error) {
	cacheKey := "lookup:" + kind
	if x, found := c.cache.Get(cacheKey); found {
		return x.([]domain.LookupRecord), nil
	}

	var rows []domain.LookupRecord
	if err := c.request(ctx, "GET", "/api/"+kind, nil, &rows); err != nil {
		return nil, err
	}
	c.cache.Set(cacheKey, rows, cache.DefaultExpiration)
	return rows, nil
}

func (c *Client) CreateLookup(ctx context.Context, kind, name string) (domain.LookupRecord, error) {
	var rec domain.LookupRecord
	err := c.request(ctx, "POST", "/api/"+kind, map[string]string{"name": name}, &rec)
	if err != nil {
		return domain.LookupRecord{}, err
	}
	c.cache.Delete("lookup:" + kind)
	return rec, nil
}

// EnsureLookup returns the id of the named record, creating it if absent.
// Matching is exact; imports are expected to normalize names themselves.
func (c *Client) EnsureLookup(ctx context.Context, kind, name string) (int64, error) {
	rows, err := c.ListLookup(ctx, kind)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if row.Name == name {
			return row.ID, nil
		}
	}
	rec, err := c.CreateLookup(ctx, kind, name)
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (c *Client) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := c.request(ctx, "GET", "/api/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *Client) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	var created domain.Trip
	if err := c.request(ctx, "POST", "/api/trips", trip, &created); err != nil {
		return domain.Trip{}, err
	}
	return created, nil
}

func (c *Client) ReplaceItinerary(ctx context.Context, tripID int64, stops []domain.ItineraryStop) error {
	return c.request(ctx, "PUT", fmt.Sprintf("/api/trips/%d/itinerary", tripID), stops, nil)
}

func (c *Client) ReplaceInfoSections(ctx context.Context, tripID int64, sections []domain.InfoSection) error {
	return c.request(ctx, "PUT", fmt.Sprintf("/api/trips/%d/info-sections", tripID), sections, nil)
}

func (c *Client) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	var created domain.Event
	if err := c.request(ctx, "POST", "/api/events", event, &created); err != nil {
		return domain.Event{}, err
	}
	return created, nil
}

func (c *Client) ListTalent(ctx context.Context) ([]domain.Talent, error) {
	var talent []domain.Talent
	if err := c.request(ctx, "GET", "/api/talent", nil, &talent); err != nil {
		return nil, err
	}
	return talent, nil
}

func (c *Client) CreateTalent(ctx context.Context, talent domain.Talent) (domain.Talent, error) {
	var created domain.Talent
	if err := c.request(ctx, "POST", "/api/talent", talent, &created); err != nil {
		return domain.Talent{}, err
	}
	return created, nil
}

func (c *Client) CreatePartyTheme(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error) {
	var created domain.PartyTheme
	if err := c.request(ctx, "POST", "/api/party-themes", theme, &created); err != nil {
		return domain.PartyTheme{}, err
	}
	return created, nil
}

func (c *Client) CreateFAQ(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	var created domain.FAQ
	if err := c.request(ctx, "POST", "/api/faqs", faq, &created); err != nil {
		return domain.FAQ{}, err
	}
	return created, nil
}

func (c *Client) CreateSetting(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	var created domain.Setting
	if err := c.request(ctx, "POST", "/api/settings", setting, &created); err != nil {
		return domain.Setting{}, err
	}
	return created, nil
}

func (c *Client) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	var created domain.Location
	if err := c.request(ctx, "POST", "/api/locations", location, &created); err != nil {
		return domain.Location{}, err
	}
	return created, nil
}

func (c *Client) LookupCounts(ctx context.Context) (domain.LookupCounts, error) {
	var counts domain.LookupCounts
	if err := c.request(ctx, "GET", "/api/admin/lookup-tables/counts", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
