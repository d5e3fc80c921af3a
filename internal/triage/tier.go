package triage

import (
	"fmt"
	"strings"
)

// Tier is the severity of a support message.
type Tier string

// Severity tiers, lowest first.
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
	TierCrisis Tier = "crisis"
)

var tierOrder = []Tier{TierLow, TierMedium, TierHigh, TierCrisis}

// Tiers returns every tier ordered from low to crisis.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// Rank returns the escalation priority of t. Unknown tiers rank -1.
func (t Tier) Rank() int {
	for i, tier := range tierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t.Rank() >= 0
}

// Above reports whether t escalates past other.
func (t Tier) Above(other Tier) bool {
	return t.Rank() > other.Rank()
}

func (t Tier) String() string {
	return string(t)
}

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown severity tier %q", s)
	}
	return t, nil
}
