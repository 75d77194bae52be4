package match

import (
	"strings"
	"unicode"
)

// road/area suffixes that carry no signal when comparing locations
var suffixTokens = map[string]struct{}{
	"road": {}, "rd": {}, "street": {}, "st": {}, "avenue": {}, "avn": {},
	"lane": {}, "ln": {}, "drive": {}, "dr": {}, "colony": {}, "col": {},
	"park": {}, "industrial": {}, "ind": {}, "area": {}, "zone": {},
}

// NormalizeLocation canonicalizes a free-text location for fuzzy comparison:
// lowercase, punctuation to spaces, collapsed whitespace, common road/area
// suffix tokens dropped. Idempotent; never fails.
func NormalizeLocation(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(mapped)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := suffixTokens[f]; drop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
