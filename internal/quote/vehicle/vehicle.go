// Package vehicle holds the canonical vehicle-type columns and the alias
// table used to reconcile vendor spellings against them.
package vehicle

import "strings"

// Columns are the customer-facing rate columns, in output order. PER CASE
// RATE is deliberately not one of them.
var Columns = []string{
	"TATA ACE", "Bolero-Pkup", "407SFC", "407LPT", "1109",
	"22FT - 9 MT", "32FT -SXL", "32FT -MXL",
}

// Aliases maps a canonical column to the vendor spellings seen in the wild.
// Matching is symmetric substring containment, not exact equality, so one
// extracted type may legitimately satisfy several columns.
var Aliases = map[string][]string{
	"TATA ACE":    {"TATA ACE", "ACE"},
	"Bolero-Pkup": {"Bolero-Pkup", "Pikup", "pick up", "pickup", "Bolero"},
	"407SFC":      {"407SFC", "407", "SFC", "407-SFC"},
	"407LPT":      {"407LPT", "LPT", "407", "407-LPT", "407 LPT"},
	"1109":        {"1109"},
	"22FT - 9 MT": {"22FT - 9 MT"},
	"32FT -SXL":   {"32FT -SXL"},
	"32FT -MXL":   {"32FT -MXL"},
}

// squash strips all whitespace and uppercases, the comparison form for
// alias checks.
func squash(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// IsColumn reports whether a header cell names a canonical rate column.
func IsColumn(header string) bool {
	h := strings.ToUpper(strings.TrimSpace(header))
	for _, c := range Columns {
		if strings.ToUpper(c) == h {
			return true
		}
	}
	return false
}

// CanonicalColumn returns the canonical spelling for a header cell, or "".
func CanonicalColumn(header string) string {
	h := strings.ToUpper(strings.TrimSpace(header))
	for _, c := range Columns {
		if strings.ToUpper(c) == h {
			return c
		}
	}
	return ""
}

// MatchesColumn reports whether an extracted vendor type is alias-equivalent
// to a canonical column: after squashing both sides, the type equals,
// contains, or is contained in any alias of the column.
func MatchesColumn(extracted, column string) bool {
	if strings.TrimSpace(extracted) == "" {
		return false
	}
	e := squash(extracted)
	aliases := Aliases[column]
	if len(aliases) == 0 {
		aliases = []string{column}
	}
	for _, a := range aliases {
		al := squash(a)
		if e == al || strings.Contains(e, al) || strings.Contains(al, e) {
			return true
		}
	}
	return false
}

// ExtractType derives the authoritative vehicle type for a vendor record.
// An explicit vehicle-type field wins; otherwise the vehicle number is split
// on '-' and each token tested against the canonical columns, exact first,
// then symmetric substring. Empty string when nothing matches.
func ExtractType(vehicleType, vehicleNo string) string {
	if t := strings.TrimSpace(vehicleType); t != "" {
		return strings.ToUpper(t)
	}
	for _, part := range strings.Split(strings.ToUpper(vehicleNo), "-") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		for _, c := range Columns {
			if strings.ToUpper(c) == p {
				return p
			}
		}
		for _, c := range Columns {
			sq := squash(c)
			if strings.Contains(p, sq) || strings.Contains(sq, p) {
				return strings.ToUpper(c)
			}
		}
	}
	return ""
}
