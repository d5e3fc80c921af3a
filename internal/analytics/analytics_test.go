package analytics

import (
	"sync"
	"testing"

	"neurosync/internal/triage"
)

func TestTally_Record(t *testing.T) {
	tally := NewTally()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tally.Record(triage.TierMedium)
		}()
	}
	wg.Wait()
	tally.Record(triage.TierCrisis)
	tally.Record(triage.Tier("bogus"))

	snap := tally.Snapshot()
	if snap[triage.TierMedium] != 20 || snap[triage.TierCrisis] != 1 || snap[triage.TierLow] != 0 {
		t.Errorf("unexpected snapshot %v", snap)
	}
	if len(snap) != 4 {
		t.Errorf("snapshot should cover every tier, got %d entries", len(snap))
	}
	if tally.Total() != 21 {
		t.Errorf("Total = %d, want 21", tally.Total())
	}
}

func TestTally_Distribution(t *testing.T) {
	tally := NewTally()

	shares, live := tally.Distribution()
	if live {
		t.Error("empty tally should report sample data")
	}
	if len(shares) != 4 || shares[0].Percent != 45 || shares[3].Percent != 5 {
		t.Errorf("unexpected sample distribution %+v", shares)
	}

	tally.Record(triage.TierLow)
	tally.Record(triage.TierLow)
	tally.Record(triage.TierHigh)

	shares, live = tally.Distribution()
	if !live {
		t.Fatal("expected live distribution")
	}
	want := map[triage.Tier]float64{
		triage.TierLow:    66.7,
		triage.TierMedium: 0,
		triage.TierHigh:   33.3,
		triage.TierCrisis: 0,
	}
	for _, s := range shares {
		if s.Percent != want[s.Tier] {
			t.Errorf("%s percent = %v, want %v", s.Tier, s.Percent, want[s.Tier])
		}
		if s.Color == "" || s.Name == "" {
			t.Errorf("%s missing presentation fields", s.Tier)
		}
	}
	if shares[0].Tier != triage.TierLow || shares[3].Tier != triage.TierCrisis {
		t.Error("distribution should be ordered low to crisis")
	}
}

func TestSummarize(t *testing.T) {
	tally := NewTally()
	tally.Record(triage.TierCrisis)

	s := Summarize(tally)
	if s.TotalClassifications != 1 || s.CrisisCount != 1 || !s.LiveSeverity {
		t.Errorf("unexpected summary counts %+v", s)
	}
	if len(s.MonthlyUsage) != 6 || len(s.TopConcerns) != 6 || len(s.Interventions) != 4 || len(s.PeakHours) != 10 {
		t.Error("summary missing sample series")
	}
}
