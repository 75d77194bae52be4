package service

import (
	"errors"
	"testing"

	"quotation-service/internal/quote/model"
)

func rateRec(vendor, from, area, vtype string, rate float64) model.RateRecord {
	return model.RateRecord{
		VendorName:    vendor,
		FromOrigin:    from,
		Area:          area,
		VehicleType:   vtype,
		ExtractedType: vtype,
		Rate:          rate,
	}
}

func quoteHeader() []string {
	return []string{"Sl No", "DC City", "Customer City", "407LPT", "1109"}
}

func TestFindHeaderRow(t *testing.T) {
	grid := [][]string{
		{"Quotation Sheet"},
		{"", "August 2026"},
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge"},
	}
	idx, err := FindHeaderRow(grid)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 2 {
		t.Errorf("header row = %d, want 2", idx)
	}

	if _, err := FindHeaderRow([][]string{{"only"}, {"", "two"}}); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("sparse grid err = %v, want ErrMalformedInput", err)
	}
	if _, err := FindHeaderRow(nil); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("empty grid err = %v, want ErrMalformedInput", err)
	}
}

func TestFillGridSingleVendor(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge", "", ""},
	}

	res, err := FillGrid(grid, records, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Grid[1][3]; got != "1200" {
		t.Errorf("407LPT cell = %q, want 1200", got)
	}
	if got := res.Grid[1][4]; got != "" {
		t.Errorf("1109 cell = %q, want empty (no qualifying vendor)", got)
	}
	if res.Summary.Rows != 1 || res.Summary.FilledCells != 1 || res.Summary.TotalCells != 2 {
		t.Errorf("summary = %+v", res.Summary)
	}
	// input grid untouched
	if grid[1][3] != "" {
		t.Errorf("input grid mutated: %q", grid[1][3])
	}
}

func TestFillGridMaxMode(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
		rateRec("XYZ Carriers", "Kolkata", "Budge Budge", "407LPT", 1500),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge", "", ""},
	}

	res, err := FillGrid(grid, records, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Grid[1][3]; got != "1500" {
		t.Errorf("407LPT cell = %q, want the higher 1500", got)
	}
	if len(res.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(res.Matches))
	}
	m := res.Matches[0]
	if m.BaseRate != 1500 || m.Written != 1500 || m.VehicleColumn != "407LPT" {
		t.Errorf("match = %+v", m)
	}
	if len(m.Candidates) != 2 || m.Candidates[0].Rate != 1500 || m.Candidates[1].Rate != 1200 {
		t.Errorf("candidates not sorted by rate desc: %+v", m.Candidates)
	}
}

func TestFillGridPercent(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge", "", ""},
	}

	res, err := FillGrid(grid, records, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Grid[1][3]; got != "1320" {
		t.Errorf("adjusted cell = %q, want 1320", got)
	}

	// a second run from the same input with a different percent starts from
	// the base rate again
	res2, err := FillGrid(grid, records, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got := res2.Grid[1][3]; got != "1440" {
		t.Errorf("re-adjusted cell = %q, want 1440", got)
	}
}

func TestFillGridNoRouteMatch(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Siliguri", "", ""},
		{"2", "", "", "", ""}, // blank cities, still a counted row
	}

	res, err := FillGrid(grid, records, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.FilledCells != 0 {
		t.Errorf("filled = %d, want 0", res.Summary.FilledCells)
	}
	if res.Summary.Rows != 2 || res.Summary.TotalCells != 4 {
		t.Errorf("summary = %+v", res.Summary)
	}
	if len(res.Matches) != 0 {
		t.Errorf("matches = %+v, want none", res.Matches)
	}
}

func TestFillGridSkipsDuplicateHeader(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge", "", ""},
		quoteHeader(), // sheets glued together repeat the header
		{"2", "Kolkata", "Budge Budge", "", ""},
	}

	res, err := FillGrid(grid, records, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.Rows != 2 {
		t.Errorf("rows = %d, want 2 (duplicate header not counted)", res.Summary.Rows)
	}
	if got := res.Grid[2][3]; got != "407LPT" {
		t.Errorf("duplicate header overwritten: %q", got)
	}
	if res.Grid[1][3] != "1200" || res.Grid[3][3] != "1200" {
		t.Errorf("data rows not filled: %q, %q", res.Grid[1][3], res.Grid[3][3])
	}
}

func TestFillGridPadsShortRows(t *testing.T) {
	records := []model.RateRecord{
		rateRec("ABC Transport", "Kolkata", "Budge Budge", "407LPT", 1200),
	}
	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge"}, // vehicle columns absent in the row
	}

	res, err := FillGrid(grid, records, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Grid[1]) != len(quoteHeader()) {
		t.Fatalf("row not padded: %d cells", len(res.Grid[1]))
	}
	if got := res.Grid[1][3]; got != "1200" {
		t.Errorf("padded cell = %q, want 1200", got)
	}
}

func TestPickMaxMinFirstWinsOnTie(t *testing.T) {
	records := []model.RateRecord{
		rateRec("First Vendor", "Kolkata", "Budge Budge", "407LPT", 1000),
		rateRec("Second Vendor", "Kolkata", "Budge Budge", "407LPT", 1000),
	}
	if got := pickMax(records).VendorName; got != "First Vendor" {
		t.Errorf("pickMax tie winner = %q, want First Vendor", got)
	}
	if got := pickMin(records).VendorName; got != "First Vendor" {
		t.Errorf("pickMin tie winner = %q, want First Vendor", got)
	}
}
