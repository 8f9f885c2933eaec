package kernel

import "testing"

func TestBuildIndex_OccurrenceMasks(t *testing.T) {
	idx, err := BuildIndex([][]byte{[]byte("jake"), []byte("jack")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 'j' occurs at position 0 in both candidates.
	jEntries := idx.Candidates(SymbolIndex('j'))
	if len(jEntries) != 2 {
		t.Fatalf("expected 2 candidates containing 'j', got %d", len(jEntries))
	}
	for _, e := range jEntries {
		if e.OccurrenceMask != 1 {
			t.Errorf("candidate %d: 'j' mask = %016b, want 0000000000000001", e.Index, e.OccurrenceMask)
		}
	}

	// 'a' occurs at position 1 in both candidates too.
	aEntries := idx.Candidates(SymbolIndex('a'))
	if len(aEntries) != 2 {
		t.Fatalf("expected 2 candidates containing 'a', got %d", len(aEntries))
	}
	for _, e := range aEntries {
		if e.OccurrenceMask != 0b10 {
			t.Errorf("candidate %d: 'a' mask = %016b, want 0000000000000010", e.Index, e.OccurrenceMask)
		}
	}

	// letters absent from both names have no entries at all.
	if got := idx.Candidates(SymbolIndex('z')); len(got) != 0 {
		t.Errorf("expected no entries for 'z', got %d", len(got))
	}
}

func TestBuildIndex_RejectsInvalidCandidates(t *testing.T) {
	if _, err := BuildIndex([][]byte{[]byte("")}); err == nil {
		t.Error("expected error for empty candidate")
	}
	if _, err := BuildIndex([][]byte{make([]byte, MaxLength+1)}); err == nil {
		t.Error("expected error for over-length candidate")
	}
	if _, err := BuildIndex([][]byte{[]byte("jak3")}); err == nil {
		t.Error("expected error for byte outside alphabet")
	}
}

func TestBuildIndex_RepeatedLetterMask(t *testing.T) {
	idx, err := BuildIndex([][]byte{[]byte("anna")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aEntries := idx.Candidates(SymbolIndex('a'))
	if len(aEntries) != 1 {
		t.Fatalf("expected 1 candidate containing 'a', got %d", len(aEntries))
	}
	// 'a' occurs at positions 0 and 3.
	want := uint16(0b1001)
	if aEntries[0].OccurrenceMask != want {
		t.Errorf("mask = %04b, want %04b", aEntries[0].OccurrenceMask, want)
	}
}
