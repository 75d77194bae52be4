// Package pincode standardizes location names through an external Indian
// pincode directory. It is a best-effort enrichment: every failure path
// degrades to "no standardized name available" and is never surfaced as an
// error to the matching pipeline.
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Place is the official record behind a pincode.
type Place struct {
	OfficeName   string  `json:"office_name"`
	DistrictName string  `json:"district_name"`
	StateName    string  `json:"state_name"`
	Taluk        string  `json:"taluk"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Standardizer supplies an officially standardized place for a city name
// and pincode, or nil when it cannot. Any implementation qualifies: HTTP
// client, cache, or no-op.
type Standardizer interface {
	Standardize(ctx context.Context, city, pin string) *Place
}

// Noop never standardizes anything; used when no directory is configured.
type Noop struct{}

func (Noop) Standardize(context.Context, string, string) *Place { return nil }

// Client queries the pinlookup.in pincode API.
type Client struct {
	base  string
	httpc *http.Client
	log   zerolog.Logger
}

func NewClient(base string, log zerolog.Logger) *Client {
	return &Client{
		base:  base,
		httpc: &http.Client{Timeout: 5 * time.Second},
		log:   log,
	}
}

type lookupResponse struct {
	Data *Place `json:"data"`
}

// Standardize resolves a 6-digit pincode to its official place record.
// Timeouts and bad responses log a warning and return nil; one attempt per
// call, no retries.
func (c *Client) Standardize(ctx context.Context, city, pin string) *Place {
	if len(pin) != 6 {
		return nil
	}

	url := fmt.Sprintf("%s?pincode=%s", c.base, pin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("pincode", pin).Msg("pincode lookup failed, falling back to local matching")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("pincode", pin).Msg("pincode lookup bad status")
		return nil
	}

	var lr lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		c.log.Warn().Err(err).Str("pincode", pin).Msg("pincode lookup bad body")
		return nil
	}
	if lr.Data == nil || lr.Data.OfficeName == "" {
		return nil
	}
	c.log.Debug().Str("pincode", pin).Str("city", city).Str("office", lr.Data.OfficeName).Msg("pincode standardized")
	return lr.Data
}
