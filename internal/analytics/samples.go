package analytics

import "neurosync/internal/triage"

// MonthlyUsage counts feature usage per month.
type MonthlyUsage struct {
	Month        string `json:"month"`
	ChatSessions int    `json:"chat_sessions"`
	Appointments int    `json:"appointments"`
	Resources    int    `json:"resources"`
	Community    int    `json:"community"`
}

// Concern is a reported concern category.
type Concern struct {
	Concern    string `json:"concern"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// InterventionMetric compares a metric against the previous period.
type InterventionMetric struct {
	Metric   string `json:"metric"`
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
	Change   int    `json:"change"`
}

// HourlyUsage is activity at one hour of the day.
type HourlyUsage struct {
	Hour  string `json:"hour"`
	Usage int    `json:"usage"`
}

// SampleSeverityDistribution is shown until live classifications exist.
func SampleSeverityDistribution() []SeverityShare {
	return []SeverityShare{
		{Tier: triage.TierLow, Name: "Low", Percent: 45, Color: tierColors[triage.TierLow]},
		{Tier: triage.TierMedium, Name: "Medium", Percent: 35, Color: tierColors[triage.TierMedium]},
		{Tier: triage.TierHigh, Name: "High", Percent: 15, Color: tierColors[triage.TierHigh]},
		{Tier: triage.TierCrisis, Name: "Crisis", Percent: 5, Color: tierColors[triage.TierCrisis]},
	}
}

func SampleMonthlyUsage() []MonthlyUsage {
	return []MonthlyUsage{
		{"Jan", 245, 89, 156, 78},
		{"Feb", 312, 102, 189, 94},
		{"Mar", 398, 134, 234, 112},
		{"Apr", 445, 156, 267, 145},
		{"May", 523, 178, 298, 167},
		{"Jun", 612, 203, 334, 189},
	}
}

func SampleTopConcerns() []Concern {
	return []Concern{
		{"Academic Stress", 234, 28},
		{"Anxiety", 198, 24},
		{"Depression", 156, 19},
		{"Social Issues", 123, 15},
		{"Sleep Problems", 89, 11},
		{"Other", 34, 4},
	}
}

func SampleInterventions() []InterventionMetric {
	return []InterventionMetric{
		{"Early Interventions", 89, 67, 33},
		{"Crisis Responses", 12, 18, -33},
		{"Referrals Made", 156, 134, 16},
		{"Follow-ups Completed", 203, 189, 7},
	}
}

func SamplePeakHours() []HourlyUsage {
	return []HourlyUsage{
		{"6AM", 12}, {"8AM", 45}, {"10AM", 78}, {"12PM", 89}, {"2PM", 134},
		{"4PM", 156}, {"6PM", 189}, {"8PM", 234}, {"10PM", 198}, {"12AM", 67},
	}
}
