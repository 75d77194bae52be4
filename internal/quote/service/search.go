package service

import (
	"context"
	"strings"

	"quotation-service/internal/quote/match"
	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/pincode"
	"quotation-service/internal/quote/vehicle"
)

// standardized names come from official data, so they must clear a stricter
// bar than user-entered ones
const strictThreshold = 0.7

// Search resolves one route query against the rate set: fuzzy-match the
// origin and destination onto canonical vendor locations, filter the
// records, and report the governing (max) rate plus the remaining options.
// Rates are raw; no percentage adjustment applies here.
func Search(ctx context.Context, q model.SearchQuery, records []model.RateRecord, idx *match.Index, std pincode.Standardizer, threshold float64) model.SearchResult {
	origins := DistinctOrigins(records)
	areas := DistinctAreas(records)

	originBest := resolveLocation(ctx, q.FromLocation, q.FromPincode, origins, idx, std, threshold)
	destBest := resolveLocation(ctx, q.ToLocation, q.ToPincode, areas, idx, std, threshold)

	var found []model.RateRecord
	for _, rec := range records {
		if rec.Rate <= 0 {
			continue
		}
		originOK := originBest != "" && rec.FromOrigin == originBest
		if !originOK && q.FromPincode != "" && strings.TrimSpace(rec.Pincode) == q.FromPincode {
			originOK = true // pincode equality as the final fallback
		}
		destOK := destBest != "" && rec.Area == destBest
		if !destOK && q.ToPincode != "" && strings.TrimSpace(rec.Pincode) == q.ToPincode {
			destOK = true
		}
		if !originOK || !destOK {
			continue
		}
		if q.VehicleType != "" && !vehicle.MatchesColumn(rec.ExtractedType, q.VehicleType) {
			continue
		}
		found = append(found, rec)
	}

	res := model.SearchResult{TotalFound: len(found)}
	if len(found) == 0 {
		return res
	}

	max := pickMax(found)
	res.MaxRate = &max
	for _, rec := range found {
		if rec != max {
			res.OtherRates = append(res.OtherRates, rec)
		}
	}
	return res
}

// resolveLocation maps a query city onto a canonical vendor location. When
// a pincode is available the officially standardized name is tried first at
// the stricter threshold; enrichment failure silently falls back to the
// raw name.
func resolveLocation(ctx context.Context, name, pin string, candidates []string, idx *match.Index, std pincode.Standardizer, threshold float64) string {
	if name == "" && pin == "" {
		return ""
	}
	if std != nil && pin != "" {
		if place := std.Standardize(ctx, name, pin); place != nil {
			if m := idx.Best(place.OfficeName, candidates, strictThreshold); m != "" {
				return m
			}
		}
	}
	return idx.Best(name, candidates, threshold)
}
