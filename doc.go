// Package compendium is a bilingual Pathfinder 2e rules compendium.
//
// It merges the Foundry pf2e corpus with the pf2-fr community translations
// into a persisted snapshot, and answers typo and accent tolerant searches
// with kind, pack, trait and tradition filters.
//
//	c, err := compendium.Open(ctx, dataDir, compendium.WithSources(layout))
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	if !c.Ready() {
//		if _, err := c.Rebuild(ctx); err != nil {
//			return err
//		}
//	}
//	results, err := c.Search(ctx, "sort: boule de feu", 10)
package compendium
