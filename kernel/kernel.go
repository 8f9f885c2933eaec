package kernel

// Match is one (candidate, score) pair emitted by ScoreQuery.
type Match struct {
	CandidateIndex int
	Score          float64
}

// ScoreQuery scores one query string against every candidate behind idx,
// using tmpl's pooled scorecard vector, and returns every match whose score
// is >= minScore. Results are ordered by ascending candidate index, which
// is the unique-candidate rank the caller built idx from.
//
// ScoreQuery is safe to call concurrently from multiple goroutines sharing
// the same idx and tmpl: idx and tmpl's per-candidate constants are
// read-only, and each call acquires its own scorecard vector from tmpl's
// pool for the duration of the call.
func ScoreQuery(idx *Index, tmpl *Template, query []byte, minScore float64) ([]Match, error) {
	chars, err := BuildQueryMasks(query)
	if err != nil {
		return nil, err
	}

	params := FinalizeParams{QueryLenReciprocalQ16: reciprocalQ16(len(query))}

	scPtr := tmpl.Acquire()
	defer tmpl.Release(scPtr)
	sc := *scPtr

	for qi, qc := range chars {
		for _, entry := range idx.Candidates(qc.Symbol) {
			queryMask := qc.Masks[entry.Length-1]
			ScoreLetter(&sc[entry.Index], queryMask, entry.OccurrenceMask, qi)
		}
	}

	var out []Match
	for ci := range sc {
		score := Finalize(&sc[ci], params)
		if score >= minScore {
			out = append(out, Match{CandidateIndex: ci, Score: score})
		}
	}
	return out, nil
}
