// Package source reads the raw corpora a compendium is built from.
//
// Three inputs are supported:
//
//   - the Foundry pf2e pack tree, one JSON document per entry
//     (<foundry>/packs/pf2e/<pack>/**/*.json);
//   - the pf2-fr translation tree, one .htm document per translated entry
//     (<translation>/data/<pack>/**/*.htm);
//   - the flat language tables (<foundry>/static/lang/en.json and
//     <translation>/lang/fr.json), from which traits, conditions, precious
//     materials, NPC abilities and glossary terms are derived.
//
// Readers produce core.RawEntry values in a deterministic order. Translations
// implements the tiered lookups consumed by the translation package.
//
// A single unreadable file never fails a read; it is logged and skipped.
// Only a corpus with nothing enumerable is fatal (core.ErrNoSources).
package source
