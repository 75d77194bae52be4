package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const ratesBody = `{
	"success": true,
	"rates": [
		{"Vendor Name": "ABC Transport", "From-Origin": "Kolkata", "Area": "Budge Budge",
		 "Vehicle Type": "407LPT", "Vehicle No": "WB-23-1234", "Rate": 1200},
		{"Vendor Name": "XYZ Carriers", "From-Origin": "Kolkata", "Area": "Salt Lake",
		 "Vehicle Type": "", "Vehicle No": "WB-1109-X", "Rate": "1,500"}
	]
}`

func TestGetFetchesAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute, zerolog.Nop())

	recs, err := c.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].VendorName != "ABC Transport" || recs[0].Rate != 1200 {
		t.Errorf("record 0 = %+v", recs[0])
	}
	if recs[1].Rate != 1500 {
		t.Errorf("record 1 rate = %v, want comma-stripped 1500", recs[1].Rate)
	}
	if recs[1].ExtractedType != "1109" {
		t.Errorf("record 1 extracted type = %q, want 1109", recs[1].ExtractedType)
	}

	// second call inside the TTL comes from cache
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("upstream hits = %d, want 1", n)
	}

	c.Invalidate()
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("upstream hits after invalidate = %d, want 2", n)
	}
}

func TestGetUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute, zerolog.Nop())
	if _, err := c.Get(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestGetSourceReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "sheet locked"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute, zerolog.Nop())
	if _, err := c.Get(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestToStringMap(t *testing.T) {
	m := toStringMap(map[string]interface{}{
		"a": "x",
		"b": 1200.0,
		"c": 1200.5,
		"d": nil,
		"e": true,
	})
	want := map[string]string{"a": "x", "b": "1200", "c": "1200.5", "d": "", "e": "true"}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("toStringMap[%q] = %q, want %q", k, m[k], v)
		}
	}
}
