package kernel

// CandidateEntry is one element of the inverted letter index: a candidate
// containing a given alphabet symbol, its length, and the bitmask of
// positions at which the symbol occurs (spec C3).
type CandidateEntry struct {
	Index          int
	Length         int
	OccurrenceMask uint16
}

// Index is the candidate inverted letter index: for each alphabet symbol
// 0..26, the list of candidates containing it. Built once from the
// deduplicated candidate set and shared read-only across all workers.
type Index struct {
	bySymbol [AlphabetSize][]CandidateEntry
	lengths  []int
}

// BuildIndex builds the inverted index from a deduplicated candidate list.
// Any candidate of length 0, length > MaxLength, or containing a byte
// outside the alphabet is a domain error tagged with its index.
func BuildIndex(candidates [][]byte) (*Index, error) {
	idx := &Index{lengths: make([]int, len(candidates))}

	for ci, cand := range candidates {
		n := len(cand)
		if n == 0 || n > MaxLength {
			return nil, errEmptyOrTooLong(ci, string(cand))
		}
		idx.lengths[ci] = n

		var localMasks [AlphabetSize]uint16
		for pos, b := range cand {
			sym := SymbolIndex(b)
			if sym < 0 {
				return nil, errOutsideAlphabet(ci, string(cand))
			}
			localMasks[sym] |= uint16(1) << uint(pos)
		}

		for sym, mask := range localMasks {
			if mask == 0 {
				continue
			}
			idx.bySymbol[sym] = append(idx.bySymbol[sym], CandidateEntry{
				Index:          ci,
				Length:         n,
				OccurrenceMask: mask,
			})
		}
	}

	return idx, nil
}

// Candidates returns the candidates containing the given alphabet symbol.
func (idx *Index) Candidates(symbol int) []CandidateEntry {
	return idx.bySymbol[symbol]
}

// Len returns the number of candidates in the index.
func (idx *Index) Len() int {
	return len(idx.lengths)
}

// Length returns the length of the candidate at the given index.
func (idx *Index) Length(candidateIndex int) int {
	return idx.lengths[candidateIndex]
}
