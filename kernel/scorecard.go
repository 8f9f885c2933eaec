package kernel

import "sync"

// Scorecard is per-candidate mutable state accumulated during a single
// query scoring (C4). Its lifecycle is Initial -> Scored -> Finalised: no
// transition may decrease Matches, Used, UsedExact, or TranspositionCount.
type Scorecard struct {
	Matches                   uint8
	Used                      uint16
	UsedExact                 uint16
	LastMatchBit              uint16
	TranspositionCount        uint8
	CandidateLenReciprocalQ16 uint16
}

// reciprocalQ16 computes floor((1/n) * 1024) in fixed point. n must be > 0.
func reciprocalQ16(n int) uint16 {
	return uint16(1024 / n)
}

// Template holds the per-candidate constants (length reciprocals) derived
// once from the deduplicated candidate set, and a pool of scorecard
// vectors workers can acquire and release per query instead of allocating
// len(candidates) structs on every call. The template itself is immutable
// and safe for concurrent use; Acquire/Release are the only mutating
// operations and each returns/accepts an exclusively-owned vector.
type Template struct {
	recipQ16 []uint16
	pool     sync.Pool
}

// NewTemplate builds the scorecard template for idx's candidate set.
func NewTemplate(idx *Index) *Template {
	n := idx.Len()
	recip := make([]uint16, n)
	for i := 0; i < n; i++ {
		recip[i] = reciprocalQ16(idx.Length(i))
	}

	t := &Template{recipQ16: recip}
	t.pool.New = func() any {
		sc := make([]Scorecard, n)
		return &sc
	}
	return t
}

// Acquire returns a scorecard vector reset to its zero state (plus each
// entry's CandidateLenReciprocalQ16) for scoring one query. The caller owns
// the returned vector exclusively until it calls Release.
func (t *Template) Acquire() *[]Scorecard {
	scPtr := t.pool.Get().(*[]Scorecard)
	sc := *scPtr
	for i := range sc {
		sc[i] = Scorecard{CandidateLenReciprocalQ16: t.recipQ16[i]}
	}
	return scPtr
}

// Release returns a scorecard vector to the pool. The caller must not use
// it afterward.
func (t *Template) Release(scPtr *[]Scorecard) {
	t.pool.Put(scPtr)
}
