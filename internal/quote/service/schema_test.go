package service

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"DC City", "dccity"},
		{"  From-Origin ", "fromorigin"},
		{"VEHICLE TYE", "vehicletye"},
		{"407LPT", "407lpt"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := NormalizeKey(c.in); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToRecords(t *testing.T) {
	raw := []map[string]string{
		{
			"Vendor Name": "ABC Transport",
			"From-Origin": "Kolkata",
			"AREA":        "Budge Budge",
			"VEHICLE TYE": "407LPT",
			"Vehicle No":  "WB-23-1234",
			"Rate":        "1,200",
			"Pincode":     "700137",
		},
		{
			// blank origin inherits Kolkata from the previous row
			"Vendor Name": "XYZ Carriers",
			"From-Origin": "",
			"AREA":        "Salt Lake",
			"VEHICLE TYE": "",
			"Vehicle No":  "WB-1109-X",
			"Rate":        "1500",
			"Pincode":     "#REF!",
		},
		{
			// fully blank row is dropped
			"Vendor Name": "",
			"From-Origin": "",
			"AREA":        "",
			"VEHICLE TYE": "",
			"Vehicle No":  "",
			"Rate":        "",
			"Pincode":     "",
		},
	}

	recs := ToRecords(raw)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	r0 := recs[0]
	if r0.VendorName != "ABC Transport" || r0.FromOrigin != "Kolkata" || r0.Area != "Budge Budge" {
		t.Errorf("record 0 fields wrong: %+v", r0)
	}
	if r0.Rate != 1200 {
		t.Errorf("record 0 rate = %v, want 1200 (comma stripped)", r0.Rate)
	}
	if r0.ExtractedType != "407LPT" {
		t.Errorf("record 0 extracted type = %q, want 407LPT", r0.ExtractedType)
	}

	r1 := recs[1]
	if r1.FromOrigin != "Kolkata" {
		t.Errorf("record 1 origin = %q, want forward-filled Kolkata", r1.FromOrigin)
	}
	if r1.Pincode != "" {
		t.Errorf("record 1 pincode = %q, want scrubbed empty", r1.Pincode)
	}
	if r1.ExtractedType != "1109" {
		t.Errorf("record 1 extracted type = %q, want 1109 from vehicle no", r1.ExtractedType)
	}
}

func TestToRecordsEmpty(t *testing.T) {
	if got := ToRecords(nil); got != nil {
		t.Errorf("ToRecords(nil) = %v, want nil", got)
	}
}

func TestParseRate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"1,200", 1200},
		{" 1 200 ", 1200},
		{"\u00A01,200\u00A0", 1200},
		{"₹1200", 1200},
		{"1200.50", 1200.5},
		{"", 0},
		{"-", 0},
		{"n/a", 0},
		{"#REF!", 0},
	}
	for _, c := range cases {
		if got := parseRate(c.in); got != c.want {
			t.Errorf("parseRate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
