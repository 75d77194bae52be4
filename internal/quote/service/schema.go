package service

import (
	"regexp"
	"strconv"
	"strings"

	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/vehicle"
)

// NormalizeKey is the strict normalizer: lowercase alphanumerics only.
// It keys header lookups and exact route equality. Distinct from
// match.NormalizeLocation, which strips road/area suffixes for fuzzy
// search; conflating the two either over- or under-matches.
func NormalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveKey finds the real key in a raw record for any of the wanted
// names: exact normalized match first, then substring either way.
func resolveKey(rec map[string]string, wants ...string) string {
	for _, w := range wants {
		nw := NormalizeKey(w)
		if nw == "" {
			continue
		}
		for k := range rec {
			if NormalizeKey(k) == nw {
				return k
			}
		}
	}
	for _, w := range wants {
		nw := NormalizeKey(w)
		if nw == "" {
			continue
		}
		for k := range rec {
			nk := NormalizeKey(k)
			if nk != "" && (strings.Contains(nk, nw) || strings.Contains(nw, nk)) {
				return k
			}
		}
	}
	return ""
}

// fieldKeys is the per-batch resolution of the wandering source column
// names onto our fixed record shape.
type fieldKeys struct {
	vendor, origin, area, vtype, vno, rate, pincode, contact, receiver string
}

func resolveFields(rec map[string]string) fieldKeys {
	return fieldKeys{
		vendor:   resolveKey(rec, "vendor name", "vendor", "name"),
		origin:   resolveKey(rec, "from-origin", "from origin"),
		area:     resolveKey(rec, "area"),
		vtype:    resolveKey(rec, "vehicle type", "vehicle tye"), // source sheet carries the misspelling
		vno:      resolveKey(rec, "vehicle no"),
		rate:     resolveKey(rec, "rate"),
		pincode:  resolveKey(rec, "pincode"),
		contact:  resolveKey(rec, "contact", "phone", "email"),
		receiver: resolveKey(rec, "receiver name"),
	}
}

// ToRecords reshapes a raw batch into fixed-shape rate records. Header keys
// are resolved once for the batch; blank origins are forward-filled from
// the previous row (merged cells in the source sheet); placeholder junk is
// scrubbed; the authoritative vehicle type is extracted once per record.
func ToRecords(raw []map[string]string) []model.RateRecord {
	if len(raw) == 0 {
		return nil
	}
	keys := resolveFields(raw[0])

	out := make([]model.RateRecord, 0, len(raw))
	lastOrigin := ""
	for _, rec := range raw {
		r := model.RateRecord{
			VendorName:   cleanField(rec[keys.vendor]),
			FromOrigin:   cleanField(rec[keys.origin]),
			Area:         cleanField(rec[keys.area]),
			VehicleType:  cleanField(rec[keys.vtype]),
			VehicleNo:    cleanField(rec[keys.vno]),
			Pincode:      cleanField(rec[keys.pincode]),
			Contact:      cleanField(rec[keys.contact]),
			ReceiverName: cleanField(rec[keys.receiver]),
			Rate:         parseRate(rec[keys.rate]),
		}
		if r.FromOrigin == "" {
			r.FromOrigin = lastOrigin
		} else {
			lastOrigin = r.FromOrigin
		}

		if r.FromOrigin == "" && r.Area == "" && r.Rate <= 0 {
			continue
		}
		r.ExtractedType = vehicle.ExtractType(r.VehicleType, r.VehicleNo)
		out = append(out, r)
	}
	return out
}

// cleanField trims and drops spreadsheet artifacts.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "nan", "NaN", "#REF!", "#N/A":
		return ""
	}
	return s
}

var rateJunk = regexp.MustCompile(`[^0-9.\-]`)

// parseRate reads a currency amount tolerating thousand separators, NBSP
// padding and stray currency symbols. Unparseable input yields 0.
func parseRate(s string) float64 {
	s = strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", ",", "").Replace(strings.TrimSpace(s))
	s = rateJunk.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
