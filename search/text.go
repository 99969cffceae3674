package search

import "strings"

// Stop words to drop before retrying a phrase word by word
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "and": true, "or": true,
	"to": true, "in": true, "on": true, "with": true, "for": true, "by": true,
	"le": true, "la": true, "les": true, "l": true, "de": true, "du": true,
	"des": true, "d": true, "un": true, "une": true, "et": true, "ou": true,
	"au": true, "aux": true, "en": true, "sur": true, "par": true, "pour": true,
}

// significantWords splits normalized text into words, trims punctuation and
// elisions, and removes stop words
func significantWords(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if _, rest, ok := strings.Cut(cleaned, "'"); ok {
			cleaned = rest
		}

		// Skip stop words and empty strings
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}
