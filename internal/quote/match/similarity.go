package match

import "strings"

// weights for the combined score
const (
	wPhonetic    = 0.3
	wNgram       = 0.4
	wLevenshtein = 0.3
)

// Similarity scores two location strings in [0,1]. Rules, in order:
// equal after normalization -> 1.0; one normalized form contained in the
// other -> 0.9; otherwise a weighted blend of Soundex equality, bigram
// Jaccard overlap and Levenshtein ratio. Symmetric, pure, never fails.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	na := NormalizeLocation(a)
	nb := NormalizeLocation(b)

	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}

	phonetic := 0.0
	if Soundex(na) == Soundex(nb) {
		phonetic = 0.8
	}

	ngram := bigramJaccard(na, nb)

	longer := len([]rune(na))
	if l := len([]rune(nb)); l > longer {
		longer = l
	}
	lev := 0.0
	if longer > 0 {
		lev = 1 - float64(levenshtein(na, nb))/float64(longer)
	}

	return wPhonetic*phonetic + wNgram*ngram + wLevenshtein*lev
}

// bigramJaccard is |intersection| / |union| over the two-rune sliding
// windows of each string, with set semantics. Zero when either string is
// too short to produce a bigram.
func bigramJaccard(a, b string) float64 {
	ga := bigramSet(a)
	gb := bigramSet(b)
	if len(ga) == 0 || len(gb) == 0 {
		return 0
	}

	inter := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			inter++
		}
	}
	union := len(ga) + len(gb) - inter
	return float64(inter) / float64(union)
}

func bigramSet(s string) map[string]struct{} {
	r := []rune(s)
	set := make(map[string]struct{}, len(r))
	for i := 0; i+2 <= len(r); i++ {
		set[string(r[i:i+2])] = struct{}{}
	}
	return set
}
