package handlers

import (
	"html/template"

	"neurosync/internal/triage"
)

// severityClasses maps a tier to the CSS modifier used on chat bubbles.
var severityClasses = map[triage.Tier]string{
	triage.TierLow:    "severity-low",
	triage.TierMedium: "severity-medium",
	triage.TierHigh:   "severity-high",
	triage.TierCrisis: "severity-crisis",
}

// SeverityClass returns the CSS class for a tier, empty for untagged messages.
func SeverityClass(tier triage.Tier) string {
	return severityClasses[tier]
}

// TemplateFuncs returns the helpers registered with the view engine.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"severityClass": SeverityClass,
	}
}
