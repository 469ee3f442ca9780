package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases text and collapses whitespace runs (tabs and
// newlines included) into single spaces. Accents are kept.
func NormalizeText(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	// cases.Caser is stateful, one per call.
	return cases.Lower(language.BrazilianPortuguese).String(strings.Join(words, " "))
}

// FoldDiacritics strips combining marks, so "Aprovação" reads "Aprovacao".
// Statuses typed on terminals without a Portuguese layout arrive this way.
func FoldDiacritics(text string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(strip, text)
	if err != nil {
		return text
	}
	return folded
}
