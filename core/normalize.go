package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ligatures that do not decompose under NFD.
var ligatures = strings.NewReplacer(
	"œ", "oe", "Œ", "oe",
	"æ", "ae", "Æ", "ae",
	"ß", "ss",
)

// Normalize folds s for accent- and case-insensitive matching:
// diacritics are stripped, letters lower-cased, whitespace runs collapsed
// to a single space and the result trimmed. Invalid UTF-8 becomes U+FFFD.
// Normalize is idempotent and safe for concurrent use.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(strings.ToValidUTF8(s, "\uFFFD"))

	// Chains carry per-call buffers and cannot be shared between goroutines.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}
	folded = ligatures.Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Tokens splits a normalized string into its whitespace-delimited words.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}
