package fileio

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadAnyGridCSV(t *testing.T) {
	csv := "DC City,Customer City,407LPT\nKolkata,Budge Budge,\nKolkata, Salt Lake ,1200\n"
	grid, err := ReadAnyGrid(strings.NewReader(csv), "upload.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 3 {
		t.Fatalf("rows = %d, want 3", len(grid))
	}
	if grid[0][0] != "DC City" || grid[1][1] != "Budge Budge" {
		t.Errorf("grid = %v", grid)
	}
	if grid[2][1] != "Salt Lake" {
		t.Errorf("cell padding not trimmed: %q", grid[2][1])
	}
}

func TestReadAnyGridUnsupported(t *testing.T) {
	if _, err := ReadAnyGrid(strings.NewReader("x"), "notes.txt"); err == nil {
		t.Error("expected an error for unsupported extension")
	}
}

func TestReadAnyMaps(t *testing.T) {
	csv := "Vendor Name,Area,,Rate\nABC,Budge Budge,x,1200\n,,,\nXYZ,Salt Lake,,1500\n"
	maps, err := ReadAnyMaps(strings.NewReader(csv), "rates.csv", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(maps) != 2 {
		t.Fatalf("rows = %d, want 2 (empty row dropped)", len(maps))
	}
	if maps[0]["Vendor Name"] != "ABC" || maps[0]["Rate"] != "1200" {
		t.Errorf("row 0 = %v", maps[0])
	}
	if maps[0]["Column 3"] != "x" {
		t.Errorf("blank header not substituted: %v", maps[0])
	}
	if maps[1]["Area"] != "Salt Lake" {
		t.Errorf("row 1 = %v", maps[1])
	}
}

func TestWriteXLSXGridRoundTrip(t *testing.T) {
	grid := [][]string{
		{"DC City", "Customer City", "407LPT"},
		{"Kolkata", "Budge Budge", "1200"},
	}
	data, err := WriteXLSXGrid(grid, "Quotation")
	if err != nil {
		t.Fatal(err)
	}

	back, err := ReadAnyGrid(bytes.NewReader(data), "out.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 {
		t.Fatalf("rows = %d, want 2", len(back))
	}
	if back[0][0] != "DC City" || back[1][0] != "Kolkata" {
		t.Errorf("grid = %v", back)
	}
	if back[1][2] != "1200" {
		t.Errorf("rate cell = %q, want numeric 1200", back[1][2])
	}
}

func TestNormalizeCell(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Kolkata  ", "Kolkata"},
		{"\u00A0 1200\u00A0 ", "1200"},
		{"Budge\u202FBudge", "Budge Budge"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeCell(c.in); got != c.want {
			t.Errorf("normalizeCell(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
