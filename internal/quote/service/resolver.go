package service

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"quotation-service/internal/quote/match"
	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/vehicle"
)

// ErrMalformedInput: the uploaded grid is empty or no row looks like a
// header. Surfaced to the caller; processing stops before matching.
var ErrMalformedInput = errors.New("spreadsheet is empty or has no detectable header row")

// FindHeaderRow returns the index of the first row with at least three
// non-empty cells.
func FindHeaderRow(grid [][]string) (int, error) {
	for i, row := range grid {
		n := 0
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				n++
			}
		}
		if n >= 3 {
			return i, nil
		}
	}
	return 0, ErrMalformedInput
}

// BuildLocationIndex indexes the distinct vendor locations of a rate set.
// Must be rebuilt whenever the records change, before any lookup runs.
func BuildLocationIndex(records []model.RateRecord) *match.Index {
	return match.BuildIndex(DistinctOrigins(records), DistinctAreas(records))
}

// FillGrid resolves vendor rates for every vehicle-type column of every
// data row and returns a filled copy of the grid plus per-cell match
// metadata. Row resolution only reads the record list, so rows are
// independent of each other. Rates are written in max mode: the highest
// qualifying vendor rate governs, adjusted by percent.
func FillGrid(grid [][]string, records []model.RateRecord, percent float64) (*model.FillResult, error) {
	headerIdx, err := FindHeaderRow(grid)
	if err != nil {
		return nil, err
	}
	header := grid[headerIdx]

	out := make([][]string, len(grid))
	for i, row := range grid {
		c := make([]string, len(row))
		copy(c, row)
		out[i] = c
	}

	dcIdx := findColIdx(header, "dc city")
	custIdx := findColIdx(header, "customer city")
	if custIdx == -1 {
		custIdx = findColIdx(header, "customer")
	}

	type vcol struct {
		name string
		idx  int
	}
	var vcols []vcol
	for i, cell := range header {
		if c := vehicle.CanonicalColumn(cell); c != "" {
			vcols = append(vcols, vcol{name: c, idx: i})
		}
	}

	res := &model.FillResult{HeaderRow: headerIdx}
	for r := headerIdx + 1; r < len(grid); r++ {
		if isDuplicateHeader(out[r], header) {
			continue
		}
		for len(out[r]) < len(header) {
			out[r] = append(out[r], "")
		}
		res.Summary.Rows++

		nd := NormalizeKey(cellAt(out[r], dcIdx))
		nc := NormalizeKey(cellAt(out[r], custIdx))
		var routeMatches []model.RateRecord
		if nd != "" && nc != "" {
			routeMatches = routeCandidates(records, nd, nc)
		}

		for _, vc := range vcols {
			res.Summary.TotalCells++
			cands := filterByColumn(routeMatches, vc.name)
			if len(cands) == 0 {
				continue // expected, silent; shows up only in the counters
			}
			best := pickMax(cands)
			written := ApplyPercent(best.Rate, percent)
			out[r][vc.idx] = strconv.Itoa(written)
			res.Summary.FilledCells++
			res.Matches = append(res.Matches, model.CellMatch{
				Row:           r,
				Col:           vc.idx,
				VehicleColumn: vc.name,
				BaseRate:      best.Rate,
				Written:       written,
				Candidates:    toCandidates(cands),
			})
		}
	}

	res.Grid = out
	return res, nil
}

// routeCandidates returns the records whose origin and area both equal the
// row's cities under the strict normalization. Fuzzy matching establishes
// canonical names up front; the per-row rule during bulk processing is
// exact-after-normalization.
func routeCandidates(records []model.RateRecord, normFrom, normTo string) []model.RateRecord {
	var out []model.RateRecord
	for _, rec := range records {
		if rec.FromOrigin == "" || rec.Area == "" {
			continue
		}
		if NormalizeKey(rec.FromOrigin) == normFrom && NormalizeKey(rec.Area) == normTo {
			out = append(out, rec)
		}
	}
	return out
}

func filterByColumn(records []model.RateRecord, column string) []model.RateRecord {
	var out []model.RateRecord
	for _, rec := range records {
		if vehicle.MatchesColumn(rec.ExtractedType, column) {
			out = append(out, rec)
		}
	}
	return out
}

// pickMax selects the record with the highest rate; on ties the first one
// in input order wins. pickMin mirrors it for best-vendor ranking.
func pickMax(records []model.RateRecord) model.RateRecord {
	best := records[0]
	for _, rec := range records[1:] {
		if rec.Rate > best.Rate {
			best = rec
		}
	}
	return best
}

func pickMin(records []model.RateRecord) model.RateRecord {
	best := records[0]
	for _, rec := range records[1:] {
		if rec.Rate < best.Rate {
			best = rec
		}
	}
	return best
}

func toCandidates(records []model.RateRecord) []model.Candidate {
	out := make([]model.Candidate, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Candidate{
			VendorName:  rec.VendorName,
			Rate:        rec.Rate,
			VehicleType: rec.ExtractedType,
			FromOrigin:  rec.FromOrigin,
			Area:        rec.Area,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rate > out[j].Rate })
	return out
}

// findColIdx locates a header column by strict-normalized equality.
func findColIdx(header []string, name string) int {
	want := NormalizeKey(name)
	for i, cell := range header {
		if NormalizeKey(cell) == want {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isDuplicateHeader: spreadsheets glued from several sheets repeat the
// header mid-file; those rows carry no shipment.
func isDuplicateHeader(row, header []string) bool {
	if len(row) == 0 {
		return false
	}
	for i := range header {
		var v string
		if i < len(row) {
			v = row[i]
		}
		if strings.TrimSpace(v) != strings.TrimSpace(header[i]) {
			return false
		}
	}
	return true
}
