// Package index builds the immutable search index over resolved entries.
//
// An Index is constructed in full by Build and never mutated afterwards.
// Entries are addressed by their corpus position; every bucket (kind, pack,
// trait, tradition, token) is a Postings list of positions in ascending
// order, so intersections keep corpus order for free.
//
// A Holder publishes the current Index. Rebuilding constructs a new Index
// and swaps it in with a single atomic store; readers that loaded the old
// Index keep a consistent view until they drop it.
package index
