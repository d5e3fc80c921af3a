// Package triage classifies free-text support messages into severity tiers
// and pairs each tier with a fixed advisory response.
//
// Crisis detection always wins: a message is tested against the crisis
// keywords first, then high, then medium, and falls back to low. A
// Classifier is immutable after construction and safe for concurrent use.
package triage

import "strings"

// KeywordSet is an ordered list of substring patterns that select a tier.
type KeywordSet struct {
	Tier     Tier
	Patterns []string
}

// Result is the outcome of classifying one message.
type Result struct {
	Tier     Tier           `json:"tier"`
	Response ResponseBundle `json:"response"`
}

// Urgent reports whether the result should be surfaced as a crisis.
func (r Result) Urgent() bool {
	return r.Tier == TierCrisis
}

// Classifier maps messages to tiers. The zero value is not usable; use New.
type Classifier struct {
	sets    []KeywordSet
	bundles map[Tier]ResponseBundle
}

// New builds a classifier from the built-in keyword tables and responses.
func New() *Classifier {
	return &Classifier{
		sets: []KeywordSet{
			{Tier: TierCrisis, Patterns: lowerAll(crisisKeywords)},
			{Tier: TierHigh, Patterns: lowerAll(highKeywords)},
			{Tier: TierMedium, Patterns: lowerAll(mediumKeywords)},
		},
		bundles: cloneBundles(defaultBundles),
	}
}

// Classify returns the most urgent tier whose keywords occur in message,
// paired with that tier's response. It never fails; unmatched input is low.
func (c *Classifier) Classify(message string) Result {
	tier := c.Tier(message)
	return Result{Tier: tier, Response: c.Bundle(tier)}
}

// Tier returns only the severity of message.
func (c *Classifier) Tier(message string) Tier {
	normalized := Normalize(message)
	for _, set := range c.sets {
		for _, pattern := range set.Patterns {
			if strings.Contains(normalized, pattern) {
				return set.Tier
			}
		}
	}
	return TierLow
}

// Bundle returns a copy of the response for tier. Unknown tiers get the low
// response.
func (c *Classifier) Bundle(tier Tier) ResponseBundle {
	b, ok := c.bundles[tier]
	if !ok {
		b = c.bundles[TierLow]
	}
	return b.clone()
}

// Keywords returns a copy of the patterns for tier; low has none.
func (c *Classifier) Keywords(tier Tier) []string {
	for _, set := range c.sets {
		if set.Tier == tier {
			return append([]string(nil), set.Patterns...)
		}
	}
	return nil
}

var defaultClassifier = New()

// Classify classifies message with the built-in tables.
func Classify(message string) Result {
	return defaultClassifier.Classify(message)
}

// Default returns the shared built-in classifier.
func Default() *Classifier {
	return defaultClassifier
}

func lowerAll(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = Normalize(p)
	}
	return out
}

func cloneBundles(in map[Tier]ResponseBundle) map[Tier]ResponseBundle {
	out := make(map[Tier]ResponseBundle, len(in))
	for tier, b := range in {
		out[tier] = b.clone()
	}
	return out
}
