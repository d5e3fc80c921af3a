package triage

import (
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Tier
	}{
		{"crisis statement", "I want to kill myself", TierCrisis},
		{"panic attack", "I'm having a panic attack, I can't breathe", TierHigh},
		{"exam stress", "I'm stressed about finals", TierMedium},
		{"neutral check-in", "Just checking in, feeling okay today", TierLow},
		{"crisis overrides medium", "stressed but also thinking about hurting myself", TierCrisis},
		{"empty", "", TierLow},
		{"whitespace only", "   \n\t ", TierLow},
		{"neutral sentence", "a perfectly neutral sentence", TierLow},
		{"uppercase crisis", "I KEEP THINKING ABOUT SUICIDE", TierCrisis},
		{"typographic apostrophe", "I can’t breathe right now", TierHigh},
		{"high overrides medium", "so worried, this is overwhelming", TierHigh},
		{"substring match", "feeling saddened", TierMedium},
		{"self harm", "I have thoughts of self harm", TierCrisis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got.Tier != tt.want {
				t.Errorf("Classify(%q).Tier = %q, want %q", tt.message, got.Tier, tt.want)
			}
			if got.Response.Message != defaultBundles[tt.want].Message {
				t.Errorf("Classify(%q) returned the %q response for tier %q", tt.message, got.Response.Message, got.Tier)
			}
		})
	}
}

func TestClassify_CrisisSuggestions(t *testing.T) {
	got := Classify("I want to kill myself")
	if !got.Urgent() {
		t.Fatal("expected crisis result to be urgent")
	}
	if !slices.Contains(got.Response.Suggestions, "Call Crisis Helpline: 1-800-273-8255") {
		t.Errorf("crisis suggestions = %v, want helpline", got.Response.Suggestions)
	}
}

func TestClassify_PriorityOrdering(t *testing.T) {
	c := New()
	lower := append(c.Keywords(TierHigh), c.Keywords(TierMedium)...)

	for _, crisis := range c.Keywords(TierCrisis) {
		for _, other := range lower {
			msg := other + " and " + crisis
			if got := c.Tier(msg); got != TierCrisis {
				t.Errorf("Tier(%q) = %q, want crisis", msg, got)
			}
			msg = crisis + " and " + other
			if got := c.Tier(msg); got != TierCrisis {
				t.Errorf("Tier(%q) = %q, want crisis", msg, got)
			}
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	inputs := []string{
		"I want to kill myself",
		"I'm having a panic attack, I can't breathe",
		"I'm stressed about finals",
		"Just checking in, feeling okay today",
		"Straße and ſad",
		"I want to kıll myself",
		"thinking about suİcİde",
		"having a panıc attack",
		"",
	}

	for _, s := range inputs {
		want := Classify(s).Tier
		if got := Classify(strings.ToUpper(s)).Tier; got != want {
			t.Errorf("Classify(upper %q) = %q, want %q", s, got, want)
		}
		if got := Classify(strings.ToLower(s)).Tier; got != want {
			t.Errorf("Classify(lower %q) = %q, want %q", s, got, want)
		}
	}
}

func TestClassify_TurkishI(t *testing.T) {
	tests := []struct {
		input string
		want  Tier
	}{
		{"I want to kıll myself", TierCrisis},
		{"thinking about suİcİde", TierCrisis},
		{"SUİCİDE", TierCrisis},
		{"having a panıc attack", TierHigh},
		{"PANİC", TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input).Tier; got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	msg := "I'm worried and anxious"
	first := Classify(msg)
	for i := 0; i < 50; i++ {
		got := Classify(msg)
		if got.Tier != first.Tier || got.Response.Message != first.Response.Message ||
			!slices.Equal(got.Response.Suggestions, first.Response.Suggestions) {
			t.Fatalf("call %d returned %+v, want %+v", i, got, first)
		}
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.Tier("end it all"); got != TierCrisis {
					t.Errorf("Tier = %q, want crisis", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBundle_ReturnsCopy(t *testing.T) {
	c := New()
	b := c.Bundle(TierCrisis)
	b.Suggestions[0] = "tampered"

	if got := c.Bundle(TierCrisis).Suggestions[0]; got != CrisisHelpline {
		t.Errorf("bundle mutated through copy: first suggestion = %q", got)
	}
}

func TestBundle_EveryTier(t *testing.T) {
	c := New()
	for _, tier := range Tiers() {
		b := c.Bundle(tier)
		if b.Message == "" {
			t.Errorf("tier %q has no message", tier)
		}
		if len(b.Suggestions) == 0 {
			t.Errorf("tier %q has no suggestions", tier)
		}
	}
	if got := c.Bundle(Tier("unknown")).Message; got != defaultBundles[TierLow].Message {
		t.Errorf("unknown tier bundle = %q, want low response", got)
	}
}

func TestKeywords_LowHasNone(t *testing.T) {
	if got := New().Keywords(TierLow); got != nil {
		t.Errorf("Keywords(low) = %v, want nil", got)
	}
}
