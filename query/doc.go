// Package query parses search strings and executes them against an index.
//
// The grammar is a sequence of whitespace separated words. A word of the
// form keyword:value whose keyword is in the alias table is a filter:
//
//	sort:boule           kind filter, "boule" is free text
//	pack:bestiary loup   pack filter "bestiary", free text "loup"
//	trait: feu           trait filter "feu"
//	trad:arc             tradition filter, resolved by unique prefix
//
// Kind keywords take no value; whatever follows them is free text. Value
// keywords take the rest of their word, or the next word when the colon
// ends the word. Everything else, including words with unrecognized
// prefixes, is free text. Parsing never fails.
package query
