// Package analytics backs the admin dashboard with anonymous aggregate data.
package analytics

import (
	"math"
	"sync"

	"neurosync/internal/triage"
)

// Tally counts classifications per tier. It is safe for concurrent use.
type Tally struct {
	mu     sync.Mutex
	counts map[triage.Tier]int64
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[triage.Tier]int64, 4)}
}

// Record counts one classification. Unknown tiers are ignored.
func (t *Tally) Record(tier triage.Tier) {
	if !tier.Valid() {
		return
	}
	t.mu.Lock()
	t.counts[tier]++
	t.mu.Unlock()
}

// Snapshot returns the counts for every tier, zeros included.
func (t *Tally) Snapshot() map[triage.Tier]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[triage.Tier]int64, 4)
	for _, tier := range triage.Tiers() {
		out[tier] = t.counts[tier]
	}
	return out
}

// Total returns the number of recorded classifications.
func (t *Tally) Total() int64 {
	var n int64
	for _, c := range t.Snapshot() {
		n += c
	}
	return n
}

// SeverityShare is one slice of the severity distribution chart.
type SeverityShare struct {
	Tier    triage.Tier `json:"tier"`
	Name    string      `json:"name"`
	Count   int64       `json:"count"`
	Percent float64     `json:"percent"`
	Color   string      `json:"color"`
}

var tierColors = map[triage.Tier]string{
	triage.TierLow:    "#10b981",
	triage.TierMedium: "#f59e0b",
	triage.TierHigh:   "#f97316",
	triage.TierCrisis: "#ef4444",
}

var tierNames = map[triage.Tier]string{
	triage.TierLow:    "Low",
	triage.TierMedium: "Medium",
	triage.TierHigh:   "High",
	triage.TierCrisis: "Crisis",
}

// Distribution returns the live severity distribution ordered low to crisis.
// When nothing has been recorded it returns the sample distribution and
// live is false.
func (t *Tally) Distribution() (shares []SeverityShare, live bool) {
	snap := t.Snapshot()
	var total int64
	for _, c := range snap {
		total += c
	}
	if total == 0 {
		return SampleSeverityDistribution(), false
	}

	for _, tier := range triage.Tiers() {
		shares = append(shares, SeverityShare{
			Tier:    tier,
			Name:    tierNames[tier],
			Count:   snap[tier],
			Percent: percent(snap[tier], total),
			Color:   tierColors[tier],
		})
	}
	return shares, true
}

func percent(n, total int64) float64 {
	if total == 0 {
		return 0
	}
	// One decimal place.
	return math.Round(float64(n)*1000/float64(total)) / 10
}

// Summary is the admin dashboard payload.
type Summary struct {
	TotalClassifications int64                `json:"total_classifications"`
	CrisisCount          int64                `json:"crisis_count"`
	LiveSeverity         bool                 `json:"live_severity"`
	Severity             []SeverityShare      `json:"severity_distribution"`
	MonthlyUsage         []MonthlyUsage       `json:"monthly_usage"`
	TopConcerns          []Concern            `json:"top_concerns"`
	Interventions        []InterventionMetric `json:"intervention_metrics"`
	PeakHours            []HourlyUsage        `json:"peak_usage_hours"`
}

// Summarize builds the dashboard from the tally and the sample series.
func Summarize(t *Tally) Summary {
	shares, live := t.Distribution()
	snap := t.Snapshot()
	return Summary{
		TotalClassifications: t.Total(),
		CrisisCount:          snap[triage.TierCrisis],
		LiveSeverity:         live,
		Severity:             shares,
		MonthlyUsage:         SampleMonthlyUsage(),
		TopConcerns:          SampleTopConcerns(),
		Interventions:        SampleInterventions(),
		PeakHours:            SamplePeakHours(),
	}
}
