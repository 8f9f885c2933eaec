package telemetry

import "testing"

func TestCounters_SnapshotReflectsIncrements(t *testing.T) {
	c := &Counters{}
	c.IncQueriesScored()
	c.IncQueriesScored()
	c.AddMatchesEmitted(5)
	c.IncErrorEnvelopesTotal()

	snap := c.Snapshot()
	if snap.QueriesScored != 2 {
		t.Errorf("QueriesScored = %d, want 2", snap.QueriesScored)
	}
	if snap.MatchesEmitted != 5 {
		t.Errorf("MatchesEmitted = %d, want 5", snap.MatchesEmitted)
	}
	if snap.ErrorEnvelopeWraps != 1 {
		t.Errorf("ErrorEnvelopeWraps = %d, want 1", snap.ErrorEnvelopeWraps)
	}
}

func TestCounters_Reset(t *testing.T) {
	c := &Counters{}
	c.IncQueriesScored()
	c.AddMatchesEmitted(3)
	c.Reset()

	snap := c.Snapshot()
	if snap.QueriesScored != 0 || snap.MatchesEmitted != 0 || snap.ErrorEnvelopeWraps != 0 {
		t.Errorf("Reset left nonzero counters: %+v", snap)
	}
}

func TestCounters_ConcurrentIncrements(t *testing.T) {
	c := &Counters{}
	done := make(chan struct{})
	const n = 100
	for i := 0; i < n; i++ {
		go func() {
			c.IncQueriesScored()
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	if got := c.Snapshot().QueriesScored; got != n {
		t.Errorf("QueriesScored = %d, want %d", got, n)
	}
}
