package model

// RateRecord is one vendor rate row after schema normalization. The raw
// source columns vary in naming and casing; records are reshaped once per
// batch and immutable afterwards.
type RateRecord struct {
	VendorName   string  `json:"vendor_name"`
	FromOrigin   string  `json:"from_origin"`
	Area         string  `json:"area"`
	VehicleType  string  `json:"vehicle_type"`
	VehicleNo    string  `json:"vehicle_no"`
	Pincode      string  `json:"pincode"`
	Contact      string  `json:"contact"`
	ReceiverName string  `json:"receiver_name"`
	Rate         float64 `json:"rate"`

	// ExtractedType is the authoritative vehicle type for alias matching,
	// computed once per record when the batch is normalized.
	ExtractedType string `json:"extracted_type,omitempty"`
}

// Candidate is one vendor option considered for a grid cell, kept for the
// per-cell audit view.
type Candidate struct {
	VendorName  string  `json:"vendor_name"`
	Rate        float64 `json:"rate"`
	VehicleType string  `json:"vehicle_type"`
	FromOrigin  string  `json:"from_origin"`
	Area        string  `json:"area"`
}

// CellMatch is the resolved outcome for one (row, vehicle column) cell.
type CellMatch struct {
	Row           int         `json:"row"`
	Col           int         `json:"col"`
	VehicleColumn string      `json:"vehicle_column"`
	BaseRate      float64     `json:"base_rate"`
	Written       int         `json:"written"`
	Candidates    []Candidate `json:"candidates"`
}

// Summary aggregates fill counters for the user-facing message.
type Summary struct {
	Rows        int `json:"rows"`
	TotalCells  int `json:"total_cells"`
	FilledCells int `json:"filled_cells"`
}

// FillResult is the filled grid plus match metadata for one bulk run.
type FillResult struct {
	Grid      [][]string  `json:"grid"`
	HeaderRow int         `json:"header_row"`
	Matches   []CellMatch `json:"matches"`
	Summary   Summary     `json:"summary"`
}

// SearchQuery is a single-route quotation lookup.
type SearchQuery struct {
	FromLocation string `json:"from_location"`
	FromPincode  string `json:"from_pincode"`
	ToLocation   string `json:"to_location"`
	ToPincode    string `json:"to_pincode"`
	VehicleType  string `json:"vehicle_type"`
}

// SearchResult reports the governing (max) rate and the remaining options.
type SearchResult struct {
	MaxRate    *RateRecord  `json:"max_rate"`
	OtherRates []RateRecord `json:"other_rates"`
	TotalFound int          `json:"total_found"`
}

// BestVendor is the cheapest option for one route and vehicle column, with
// the spread against the most expensive one.
type BestVendor struct {
	VendorName     string  `json:"vendor_name"`
	VehicleType    string  `json:"vehicle_type"`
	Rate           float64 `json:"rate"`
	HighestRate    float64 `json:"highest_rate"`
	SavingsPercent float64 `json:"savings_percent"`
	Contact        string  `json:"contact"`
}

// RouteVendors groups best-vendor picks for one origin-destination pair,
// keyed by canonical vehicle column.
type RouteVendors struct {
	DCCity       string                `json:"dc_city"`
	CustomerCity string                `json:"customer_city"`
	BestVendors  map[string]BestVendor `json:"best_vendors"`
}

// Analytics summarises the loaded rate set for the dashboard.
type Analytics struct {
	TotalRoutes              int               `json:"total_routes"`
	TotalVendors             int               `json:"total_vendors"`
	AvgRate                  float64           `json:"avg_rate"`
	RouteVolumeByDestination []AreaCount       `json:"route_volume_by_destination"`
	AvgRatesByVehicleType    []VehicleRate     `json:"avg_rates_by_vehicle_type"`
	VendorPerformance        []VendorStats     `json:"vendor_performance"`
	VehicleAreaDeliveries    []VehicleAreaStat `json:"vehicle_area_deliveries"`
}

type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

type VehicleRate struct {
	VehicleType string  `json:"vehicle_type"`
	AvgRate     float64 `json:"avg_rate"`
}

type VendorStats struct {
	Vendor       string  `json:"vendor"`
	TotalRoutes  int     `json:"total_routes"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRate      float64 `json:"avg_rate"`
}

type VehicleAreaStat struct {
	FromOrigin  string `json:"from_origin"`
	VehicleNo   string `json:"vehicle_no"`
	UniqueAreas int    `json:"unique_areas"`
}
