package triage

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Curly apostrophes become straight ones. Dotted and dotless Turkish i both
// become i: folding leaves ı alone and turns İ into i plus a combining dot,
// while strings.ToUpper and strings.ToLower map them to plain I and i.
var replacements = strings.NewReplacer(
	"’", "'", "‘", "'", "ʼ", "'",
	"İ", "i", "ı", "i",
)

// Normalize folds a message into the form keyword patterns are matched against.
// Messages that differ only in case normalize to the same string.
func Normalize(message string) string {
	s := norm.NFKC.String(message)
	s = replacements.Replace(s)
	// Upper first so letters without a simple fold still meet their
	// uppercase form. cases.Caser holds state, so each call gets its own.
	return cases.Fold().String(strings.ToUpper(s))
}
