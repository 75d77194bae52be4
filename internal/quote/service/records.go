package service

import (
	"sort"

	"quotation-service/internal/quote/model"
)

// DistinctOrigins returns the distinct non-empty origin names in first-seen
// order, as the index build expects.
func DistinctOrigins(records []model.RateRecord) []string {
	return distinct(records, func(r model.RateRecord) string { return r.FromOrigin })
}

// DistinctAreas returns the distinct non-empty area names in first-seen
// order.
func DistinctAreas(records []model.RateRecord) []string {
	return distinct(records, func(r model.RateRecord) string { return r.Area })
}

func distinct(records []model.RateRecord, field func(model.RateRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, rec := range records {
		v := field(rec)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Locations lists the known vendor locations for lookup UIs.
type Locations struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
	All          []string `json:"all_locations"`
}

func ListLocations(records []model.RateRecord) Locations {
	origins := DistinctOrigins(records)
	areas := DistinctAreas(records)

	all := make([]string, 0, len(origins)+len(areas))
	seen := make(map[string]struct{}, cap(all))
	for _, v := range append(append([]string{}, origins...), areas...) {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			all = append(all, v)
		}
	}

	sort.Strings(origins)
	sort.Strings(areas)
	sort.Strings(all)
	return Locations{Origins: origins, Destinations: areas, All: all}
}

// ListVendors returns the distinct vendor names, sorted.
func ListVendors(records []model.RateRecord) []string {
	vendors := distinct(records, func(r model.RateRecord) string { return r.VendorName })
	sort.Strings(vendors)
	return vendors
}
