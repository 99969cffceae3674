// Package rebuild turns the translation sources into a searchable index.
//
// A rebuild enumerates the corpus, resolves every entry through the
// ingestion pipeline, builds an index, persists it in batches with retry
// and exponential backoff, and finally publishes it through an
// index.Holder. Restore publishes the last persisted snapshot instead.
package rebuild
