package service

import "math"

// ApplyPercent applies a uniform percentage delta to a resolved rate and
// rounds to whole currency units. The delta is clamped to [-100, 100].
// Always computed from the unadjusted rate, so re-applying a different
// percentage never compounds.
func ApplyPercent(rate, percent float64) int {
	if percent < -100 {
		percent = -100
	}
	if percent > 100 {
		percent = 100
	}
	return int(math.Round(rate * (1 + percent/100)))
}
