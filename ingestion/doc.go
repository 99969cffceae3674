// Package ingestion resolves a raw corpus into bilingual entries.
//
// The Pipeline type submits every raw entry to a worker pool, where it is
// merged with its translations. Results are written into slots addressed by
// corpus position, so the output keeps the input order regardless of which
// worker finished first.
//
// A failing entry never fails the run. Structurally invalid entries are
// counted and skipped; entries whose translation source could not be read
// are recorded with their id. Both appear in the Report returned alongside
// the resolved entries.
package ingestion
