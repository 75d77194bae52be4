package service

import (
	"errors"
	"testing"

	"quotation-service/internal/quote/model"
)

func TestBestVendors(t *testing.T) {
	cheap := rateRec("Cheap Carrier", "Kolkata", "Budge Budge", "407LPT", 1000)
	cheap.Contact = "9000000001"
	dear := rateRec("Dear Carrier", "Kolkata", "Budge Budge", "407LPT", 1200)
	dear.Contact = "9000000002"
	records := []model.RateRecord{dear, cheap}

	grid := [][]string{
		quoteHeader(),
		{"1", "Kolkata", "Budge Budge", "", ""},
		{"2", "Kolkata", "Budge Budge", "", ""}, // duplicate route reported once
		{"3", "Kolkata", "Siliguri", "", ""},    // no vendor, omitted
	}

	routes, err := BestVendors(grid, records)
	if err != nil {
		t.Fatal(err)
	}
	if len(routes) != 1 {
		t.Fatalf("routes = %d, want 1", len(routes))
	}
	rv := routes[0]
	if rv.DCCity != "Kolkata" || rv.CustomerCity != "Budge Budge" {
		t.Errorf("route = %+v", rv)
	}

	bv, ok := rv.BestVendors["407LPT"]
	if !ok {
		t.Fatalf("no 407LPT pick in %+v", rv.BestVendors)
	}
	if bv.VendorName != "Cheap Carrier" || bv.Rate != 1000 {
		t.Errorf("pick = %+v, want the cheaper vendor at 1000", bv)
	}
	if bv.HighestRate != 1200 {
		t.Errorf("highest = %v, want 1200", bv.HighestRate)
	}
	if bv.SavingsPercent != 16.7 {
		t.Errorf("savings = %v, want 16.7", bv.SavingsPercent)
	}
	if bv.Contact != "9000000001" {
		t.Errorf("contact = %q, want the cheap vendor's", bv.Contact)
	}
}

func TestBestVendorsMalformedGrid(t *testing.T) {
	if _, err := BestVendors([][]string{{"x"}}, nil); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestSavingsPercent(t *testing.T) {
	cases := []struct {
		highest, lowest, want float64
	}{
		{1200, 1000, 16.7},
		{1000, 1000, 0},
		{0, 0, 0}, // guard against division by zero
		{1500, 1200, 20},
	}
	for _, c := range cases {
		if got := savingsPercent(c.highest, c.lowest); got != c.want {
			t.Errorf("savingsPercent(%v, %v) = %v, want %v", c.highest, c.lowest, got, c.want)
		}
	}
}
