package triage

// Keyword sets, checked in escalation order. Patterns are lowercase substrings.
var (
	crisisKeywords = []string{
		"suicide", "kill myself", "end it all", "hurt myself", "self harm",
		"suicidal", "killing myself", "hurting myself", "harm myself", "harming myself",
		"self-harm", "end my life",
	}
	highKeywords   = []string{"panic", "anxiety attack", "can't breathe", "overwhelming", "breakdown"}
	mediumKeywords = []string{"stressed", "anxious", "depressed", "worried", "sad"}
)

// CrisisHelpline is the first suggestion offered for crisis messages.
const CrisisHelpline = "Call Crisis Helpline: 1-800-273-8255"

// ResponseBundle is the canned reply for a tier.
type ResponseBundle struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func (b ResponseBundle) clone() ResponseBundle {
	out := ResponseBundle{Message: b.Message}
	if b.Suggestions != nil {
		out.Suggestions = append([]string(nil), b.Suggestions...)
	}
	return out
}

var defaultBundles = map[Tier]ResponseBundle{
	TierCrisis: {
		Message:     "I'm very concerned about what you're sharing. Your safety is the most important thing right now. Please reach out to a crisis counselor immediately.",
		Suggestions: []string{CrisisHelpline, "Contact Campus Emergency: 911", "Reach Campus Counselor"},
	},
	TierHigh: {
		Message:     "It sounds like you're going through a really difficult time. These feelings can be overwhelming, but you don't have to face them alone.",
		Suggestions: []string{"Try breathing exercises", "Book counseling session", "Connect with peer support"},
	},
	TierMedium: {
		Message:     "I understand you're feeling stressed. These are common experiences for students, and there are effective ways to manage these feelings.",
		Suggestions: []string{"Explore relaxation techniques", "Check wellness resources", "Consider talking to someone"},
	},
	TierLow: {
		Message:     "Thank you for sharing. It's great that you're being proactive about your mental health.",
		Suggestions: []string{"Browse wellness tips", "Join peer discussions", "Set up regular check-ins"},
	},
}
