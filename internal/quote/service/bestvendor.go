package service

import (
	"math"
	"strings"

	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/vehicle"
)

// BestVendors ranks, for every distinct route in the grid and every
// canonical vehicle column, the cheapest qualifying vendor (min mode) and
// the spread against the most expensive one. Rates are reported raw, with
// no percentage adjustment. Routes with no qualifying vendor are omitted.
func BestVendors(grid [][]string, records []model.RateRecord) ([]model.RouteVendors, error) {
	headerIdx, err := FindHeaderRow(grid)
	if err != nil {
		return nil, err
	}
	header := grid[headerIdx]

	dcIdx := findColIdx(header, "dc city")
	custIdx := findColIdx(header, "customer city")
	if custIdx == -1 {
		custIdx = findColIdx(header, "customer")
	}

	var out []model.RouteVendors
	seen := make(map[string]struct{})
	for r := headerIdx + 1; r < len(grid); r++ {
		dc := strings.TrimSpace(cellAt(grid[r], dcIdx))
		cust := strings.TrimSpace(cellAt(grid[r], custIdx))
		if dc == "" || cust == "" {
			continue
		}
		key := dc + "-" + cust
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		routeMatches := routeCandidates(records, NormalizeKey(dc), NormalizeKey(cust))
		best := make(map[string]model.BestVendor)
		for _, col := range vehicle.Columns {
			cands := filterByColumn(routeMatches, col)
			if len(cands) == 0 {
				continue
			}
			lowest := pickMin(cands)
			highest := pickMax(cands).Rate
			best[col] = model.BestVendor{
				VendorName:     lowest.VendorName,
				VehicleType:    col,
				Rate:           lowest.Rate,
				HighestRate:    highest,
				SavingsPercent: savingsPercent(highest, lowest.Rate),
				Contact:        lowest.Contact,
			}
		}
		if len(best) == 0 {
			continue
		}
		out = append(out, model.RouteVendors{
			DCCity:       dc,
			CustomerCity: cust,
			BestVendors:  best,
		})
	}
	return out, nil
}

// savingsPercent is (highest-lowest)/highest as a percentage, one decimal.
func savingsPercent(highest, lowest float64) float64 {
	if highest <= 0 {
		return 0
	}
	return math.Round((highest-lowest)/highest*1000) / 10
}
