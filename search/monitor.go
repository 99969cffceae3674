package search

import (
	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/query"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(raw string)
	AfterParse(q query.Query)
	AfterExecute(matches int)
	AfterFallback(words []string, matches int)
	Finish(results []*core.ResolvedEntry)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterParse(_ query.Query)        {}
func (n *noopMonitor) AfterExecute(_ int)              {}
func (n *noopMonitor) AfterFallback(_ []string, _ int) {}
func (n *noopMonitor) Finish(_ []*core.ResolvedEntry)  {}
