package match

// Entry is one indexed vendor location: the original spelling plus its
// normalized form.
type Entry struct {
	Original   string
	Normalized string
}

// Index buckets vendor locations by phonetic code for fast candidate
// retrieval. Rebuilt from scratch whenever the rate set changes; queries
// must not run against a partially built index.
type Index struct {
	Origins map[string][]Entry
	Areas   map[string][]Entry
}

// BuildIndex indexes the distinct non-empty origin and area names.
func BuildIndex(origins, areas []string) *Index {
	idx := &Index{
		Origins: make(map[string][]Entry),
		Areas:   make(map[string][]Entry),
	}
	addAll(idx.Origins, origins)
	addAll(idx.Areas, areas)
	return idx
}

func addAll(buckets map[string][]Entry, values []string) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		norm := NormalizeLocation(v)
		code := Soundex(norm)
		buckets[code] = append(buckets[code], Entry{Original: v, Normalized: norm})
	}
}

// Best returns the original spelling of the best-matching candidate at or
// above threshold, or "" when nothing qualifies. Phonetic-bucket candidates
// are tried first (origins, then areas); if none qualifies the full
// candidate list is scanned, worst case O(candidates).
func (idx *Index) Best(query string, candidates []string, threshold float64) string {
	if query == "" || len(candidates) == 0 {
		return ""
	}

	code := Soundex(NormalizeLocation(query))

	best := ""
	bestScore := 0.0
	consider := func(candidate string) {
		s := Similarity(query, candidate)
		if s >= threshold && s > bestScore {
			bestScore = s
			best = candidate
		}
	}

	for _, e := range idx.Origins[code] {
		consider(e.Original)
	}
	for _, e := range idx.Areas[code] {
		consider(e.Original)
	}
	if best != "" {
		return best
	}

	for _, c := range candidates {
		consider(c)
	}
	return best
}
