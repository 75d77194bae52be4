// Package rates fetches the vendor rate sheet and holds the last good
// batch behind an explicit TTL cache. The matching core never reaches in
// here; it receives the already-fetched, immutable record list.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/service"
)

// ErrUnavailable: the upstream rate source could not be reached or answered
// with an unsuccessful status. No partial matching runs on a stale or empty
// set; callers surface this to the user.
var ErrUnavailable = errors.New("vendor rate source unavailable")

type Client struct {
	url   string
	ttl   time.Duration
	httpc *http.Client
	log   zerolog.Logger

	mu        sync.Mutex
	cached    []model.RateRecord
	fetchedAt time.Time
}

func New(url string, ttl time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:   url,
		ttl:   ttl,
		httpc: &http.Client{Timeout: 30 * time.Second},
		log:   log,
	}
}

// Get returns the current rate set, fetching when the cache is cold or past
// its TTL. The returned slice is shared and must be treated as read-only.
func (c *Client) Get(ctx context.Context) ([]model.RateRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	recs, err := c.fetch(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("url", c.url).Msg("vendor rates fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.cached = recs
	c.fetchedAt = time.Now()
	c.log.Info().Int("records", len(recs)).Msg("vendor rates refreshed")
	return recs, nil
}

// Invalidate drops the cached batch; the next Get refetches.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

type ratesResponse struct {
	Success bool                     `json:"success"`
	Rates   []map[string]interface{} `json:"rates"`
	Error   string                   `json:"error"`
}

func (c *Client) fetch(ctx context.Context) ([]model.RateRecord, error) {
	if c.url == "" {
		return nil, errors.New("no rates url configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var rr ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, err
	}
	if !rr.Success {
		if rr.Error != "" {
			return nil, errors.New(rr.Error)
		}
		return nil, errors.New("source reported failure")
	}

	raw := make([]map[string]string, 0, len(rr.Rates))
	for _, m := range rr.Rates {
		raw = append(raw, toStringMap(m))
	}
	return service.ToRecords(raw), nil
}

// toStringMap flattens JSON values to strings so the schema normalizer can
// treat API batches and uploaded sheets alike.
func toStringMap(m map[string]interface{}) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}
