package service

import (
	"math"
	"sort"

	"quotation-service/internal/quote/model"
)

// Analytics aggregates the loaded rate set for the dashboard. Only records
// with a positive rate count.
func Analytics(records []model.RateRecord) model.Analytics {
	var valid []model.RateRecord
	for _, rec := range records {
		if rec.Rate > 0 {
			valid = append(valid, rec)
		}
	}

	a := model.Analytics{
		TotalRoutes:  len(valid),
		TotalVendors: len(ListVendors(valid)),
	}
	if len(valid) == 0 {
		return a
	}

	sum := 0.0
	for _, rec := range valid {
		sum += rec.Rate
	}
	a.AvgRate = round2(sum / float64(len(valid)))

	a.RouteVolumeByDestination = topDestinations(valid, 10)
	a.AvgRatesByVehicleType = avgRatesByType(valid)
	a.VendorPerformance = vendorPerformance(valid, 8)
	a.VehicleAreaDeliveries = vehicleAreaDeliveries(valid)
	return a
}

func topDestinations(records []model.RateRecord, limit int) []model.AreaCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Area != "" {
			counts[rec.Area]++
		}
	}
	out := make([]model.AreaCount, 0, len(counts))
	for area, n := range counts {
		out = append(out, model.AreaCount{Area: area, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Area < out[j].Area
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func avgRatesByType(records []model.RateRecord) []model.VehicleRate {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.VehicleType == "" {
			continue
		}
		sums[rec.VehicleType] += rec.Rate
		counts[rec.VehicleType]++
	}
	out := make([]model.VehicleRate, 0, len(sums))
	for vt, s := range sums {
		out = append(out, model.VehicleRate{VehicleType: vt, AvgRate: round2(s / float64(counts[vt]))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRate != out[j].AvgRate {
			return out[i].AvgRate > out[j].AvgRate
		}
		return out[i].VehicleType < out[j].VehicleType
	})
	return out
}

func vendorPerformance(records []model.RateRecord, limit int) []model.VendorStats {
	type agg struct {
		n   int
		sum float64
	}
	byVendor := make(map[string]*agg)
	for _, rec := range records {
		if rec.VendorName == "" {
			continue
		}
		a, ok := byVendor[rec.VendorName]
		if !ok {
			a = &agg{}
			byVendor[rec.VendorName] = a
		}
		a.n++
		a.sum += rec.Rate
	}
	out := make([]model.VendorStats, 0, len(byVendor))
	for v, a := range byVendor {
		out = append(out, model.VendorStats{
			Vendor:       v,
			TotalRoutes:  a.n,
			TotalRevenue: round2(a.sum),
			AvgRate:      round2(a.sum / float64(a.n)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].Vendor < out[j].Vendor
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// vehicleAreaDeliveries reports vehicles serving more than one area from
// the same origin.
func vehicleAreaDeliveries(records []model.RateRecord) []model.VehicleAreaStat {
	type key struct{ origin, vno string }
	areas := make(map[key]map[string]struct{})
	var order []key
	for _, rec := range records {
		if rec.FromOrigin == "" || rec.VehicleNo == "" || rec.Area == "" {
			continue
		}
		k := key{rec.FromOrigin, rec.VehicleNo}
		if _, ok := areas[k]; !ok {
			areas[k] = make(map[string]struct{})
			order = append(order, k)
		}
		areas[k][rec.Area] = struct{}{}
	}
	var out []model.VehicleAreaStat
	for _, k := range order {
		if n := len(areas[k]); n > 1 {
			out = append(out, model.VehicleAreaStat{FromOrigin: k.origin, VehicleNo: k.vno, UniqueAreas: n})
		}
	}
	return out
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
