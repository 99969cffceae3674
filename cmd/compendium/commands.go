package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/poiesic/compendium"
	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/rebuild"
	"github.com/poiesic/compendium/render"
	"github.com/poiesic/compendium/search"
	"github.com/poiesic/compendium/source"
	"github.com/urfave/cli/v2"
)

func (r *runner) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "build",
			Usage:  "Rebuild the snapshot from the Foundry and pf2-fr checkouts",
			Action: r.buildCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Usage: "Number of entries resolved concurrently (0 picks from the CPU count)",
				},
				&cli.IntFlag{
					Name:  "batch-size",
					Usage: "Number of entries persisted in each batch",
				},
				&cli.IntFlag{
					Name:  "report-interval",
					Usage: "Report progress every N entries",
				},
				&cli.IntFlag{
					Name:  "max-retries",
					Usage: "Maximum retry attempts for failed writes",
				},
				&cli.DurationFlag{
					Name:  "retry-delay",
					Usage: "Base delay for exponential backoff",
				},
			},
		},
		{
			Name:      "search",
			Aliases:   []string{"s"},
			Usage:     "Search entries by name or description",
			ArgsUsage: "QUERY...",
			Action:    r.searchCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"n"},
					Usage:   "Maximum number of results (default from config)",
				},
				&cli.BoolFlag{
					Name:    "full",
					Aliases: []string{"f"},
					Usage:   "Show the full detail view of every result",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Usage:   "Restrict to a kind keyword, e.g. sort, creature, don",
				},
				&cli.StringFlag{
					Name:    "pack",
					Aliases: []string{"p"},
					Usage:   "Restrict to packs whose name contains this value",
				},
				&cli.StringFlag{
					Name:  "trait",
					Usage: "Restrict to entries with a trait containing this value",
				},
			},
		},
		{
			Name:      "show",
			Usage:     "Show the full detail view of entries by id",
			ArgsUsage: "ID...",
			Action:    r.showCommand,
		},
		{
			Name:   "stats",
			Usage:  "Summarize the published snapshot",
			Action: r.statsCommand,
		},
		{
			Name:      "export",
			Usage:     "Write matching entries as Markdown notes",
			ArgsUsage: "QUERY...",
			Action:    r.exportCommand,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "out",
					Aliases:  []string{"o"},
					Usage:    "Directory the notes are written to",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "Export every entry instead of a query's results",
				},
			},
		},
		{
			Name:   "shell",
			Usage:  "Interactive search",
			Action: r.shellCommand,
		},
	}
}

// open opens the compendium described by the configuration. When no
// snapshot is available and sources are configured, it rebuilds first.
func (r *runner) open(ctx context.Context, autoBuild bool, extra ...compendium.Option) (*compendium.Compendium, error) {
	cfg := r.cfg
	opts := []compendium.Option{
		compendium.WithSources(source.Layout{
			FoundryRoot:     cfg.FoundryRoot,
			TranslationRoot: cfg.TranslationRoot,
		}),
		compendium.WithRebuildConfig(&rebuild.Config{
			BatchSize:      cfg.Rebuild.BatchSize,
			ReportInterval: cfg.Rebuild.ReportInterval,
			MaxRetries:     cfg.Rebuild.MaxRetries,
			RetryDelay:     cfg.Rebuild.RetryDelay,
		}),
		compendium.WithWorkers(cfg.Workers),
		compendium.WithCacheSize(cfg.CacheSize),
		compendium.WithProgress(r.errOut),
		compendium.WithLogger(slog.Default()),
	}
	if cfg.InMemory {
		opts = append(opts, compendium.WithInMemory())
	}
	opts = append(opts, extra...)

	c, err := compendium.Open(ctx, cfg.DataDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open compendium: %w", err)
	}

	if autoBuild && !c.Ready() {
		if err := cfg.RequireSources(); err != nil {
			c.Close()
			return nil, fmt.Errorf("%w: run `compendium build --foundry <path>` first", search.ErrNoIndex)
		}
		fmt.Fprintln(r.errOut, "No snapshot found, building one now.")
		if _, err := c.Rebuild(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("rebuild failed: %w", err)
		}
	}
	return c, nil
}

func (r *runner) newRenderer() (*render.Renderer, error) {
	return render.NewRenderer(r.out)
}

func (r *runner) buildCommand(c *cli.Context) error {
	if err := r.cfg.RequireSources(); err != nil {
		return err
	}
	if c.IsSet("workers") {
		r.cfg.Workers = c.Int("workers")
	}
	if c.IsSet("batch-size") {
		r.cfg.Rebuild.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("report-interval") {
		r.cfg.Rebuild.ReportInterval = c.Int("report-interval")
	}
	if c.IsSet("max-retries") {
		r.cfg.Rebuild.MaxRetries = c.Int("max-retries")
	}
	if c.IsSet("retry-delay") {
		r.cfg.Rebuild.RetryDelay = c.Duration("retry-delay")
	}
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	ctx := c.Context
	comp, err := r.open(ctx, false, compendium.WithoutRestore())
	if err != nil {
		return err
	}
	defer comp.Close()

	fmt.Fprintf(r.errOut, "Foundry: %s\n", r.cfg.FoundryRoot)
	fmt.Fprintf(r.errOut, "Translations: %s\n", valueOr(r.cfg.TranslationRoot, "(none)"))
	fmt.Fprintf(r.errOut, "Database: %s\n", valueOr(dataDirLabel(r.cfg.DataDir, r.cfg.InMemory), "(memory)"))
	fmt.Fprintln(r.errOut)

	summary, err := comp.Rebuild(ctx)
	if err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}
	printSummary(r.out, summary)
	return nil
}

func printSummary(w io.Writer, s *rebuild.Summary) {
	m := s.Metadata
	fmt.Fprintf(w, "✓ %s entries (%s translated names, %s translated descriptions) in %v\n",
		humanize.Comma(int64(m.Count)),
		humanize.Comma(int64(m.TranslatedNames)),
		humanize.Comma(int64(m.TranslatedDescriptions)),
		s.Elapsed.Round(time.Millisecond))
	if s.Persisted {
		fmt.Fprintf(w, "  generation %d\n", m.Generation)
	}
	if s.Build != nil && len(s.Build.Duplicates) > 0 {
		fmt.Fprintf(w, "⚠ %d duplicate ids ignored\n", len(s.Build.Duplicates))
	}
	if s.Resolution != nil {
		if n := len(s.Resolution.SourceFailures); n > 0 {
			fmt.Fprintf(w, "⚠ %d entries kept their original text after a source failure\n", n)
		}
		if n := s.Resolution.StructuralSkips; n > 0 {
			fmt.Fprintf(w, "⚠ %d structurally invalid entries skipped\n", n)
		}
	}
	if s.Corpus != nil && len(s.Corpus.Failures) > 0 {
		fmt.Fprintf(w, "⚠ %d source files could not be read\n", len(s.Corpus.Failures))
	}
}

// searchQuery joins the arguments and prepends the filter flags in the
// query syntax.
func searchQuery(c *cli.Context) string {
	var parts []string
	if kind := c.String("type"); kind != "" {
		parts = append(parts, strings.TrimSuffix(kind, ":")+":")
	}
	if pack := c.String("pack"); pack != "" {
		parts = append(parts, "pack:"+pack)
	}
	if trait := c.String("trait"); trait != "" {
		parts = append(parts, "trait:"+trait)
	}
	return strings.Join(append(parts, c.Args().Slice()...), " ")
}

func (r *runner) searchCommand(c *cli.Context) error {
	raw := searchQuery(c)
	if strings.TrimSpace(raw) == "" {
		return errors.New("a search query is required")
	}
	limit := r.cfg.Limit
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}

	ctx := c.Context
	comp, err := r.open(ctx, true)
	if err != nil {
		return err
	}
	defer comp.Close()

	renderer, err := r.newRenderer()
	if err != nil {
		return err
	}

	results, err := comp.Search(ctx, raw, limit)
	if err != nil {
		return err
	}
	return printResults(r.out, renderer, comp.Searcher().Parse(raw).String(), results, c.Bool("full"))
}

func printResults(w io.Writer, renderer *render.Renderer, interpreted string, results []*core.ResolvedEntry, full bool) error {
	if len(results) == 0 {
		fmt.Fprintf(w, "Aucun résultat pour %s\n", interpreted)
		return nil
	}

	fmt.Fprintf(w, "\n✨ %d résultat(s) pour %s\n", len(results), interpreted)
	for i, e := range results {
		var err error
		if full {
			err = renderer.Full(e)
		} else {
			err = renderer.Compact(i+1, e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) showCommand(c *cli.Context) error {
	ids := c.Args().Slice()
	if len(ids) == 0 {
		return errors.New("at least one id is required")
	}

	ctx := c.Context
	comp, err := r.open(ctx, true)
	if err != nil {
		return err
	}
	defer comp.Close()

	renderer, err := r.newRenderer()
	if err != nil {
		return err
	}

	for _, id := range ids {
		e, err := comp.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := renderer.Full(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) statsCommand(c *cli.Context) error {
	ctx := c.Context
	comp, err := r.open(ctx, false)
	if err != nil {
		return err
	}
	defer comp.Close()

	stats, err := comp.Stats(ctx)
	if err != nil {
		if errors.Is(err, search.ErrNoIndex) {
			return fmt.Errorf("%w: run `compendium build` first", err)
		}
		return err
	}
	printStats(r.out, stats)
	return nil
}

func printStats(w io.Writer, stats *compendium.Stats) {
	fmt.Fprintf(w, "📊 %s entrées, %s noms traduits, %s descriptions traduites\n",
		humanize.Comma(int64(stats.Count)),
		humanize.Comma(int64(stats.TranslatedNames)),
		humanize.Comma(int64(stats.TranslatedDescriptions)))
	fmt.Fprintf(w, "   construit %s", humanize.Time(stats.BuiltAt))
	if stats.Persisted {
		fmt.Fprintf(w, ", génération %d", stats.Generation)
	}
	fmt.Fprintf(w, "\n   %d packs, %d traits\n", len(stats.Packs), len(stats.Traits))

	fmt.Fprintln(w, "\n📋 Types:")
	for _, kind := range stats.Kinds() {
		fmt.Fprintf(w, "   • %s (%s)\n", render.KindLabel(kind), humanize.Comma(int64(stats.KindCounts[kind])))
	}
}

func (r *runner) exportCommand(c *cli.Context) error {
	raw := searchQuery(c)
	all := c.Bool("all")
	if !all && strings.TrimSpace(raw) == "" {
		return errors.New("a search query or --all is required")
	}

	ctx := c.Context
	comp, err := r.open(ctx, true)
	if err != nil {
		return err
	}
	defer comp.Close()

	var entries []*core.ResolvedEntry
	if all {
		entries = comp.Index().Entries()
	} else if entries, err = comp.Search(ctx, raw, 0); err != nil {
		return err
	}

	dir := c.String("out")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(dir, render.FileName(e))
		if err := os.WriteFile(path, []byte(render.Markdown(e)), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	fmt.Fprintf(r.out, "✓ %s notes written to %s\n", humanize.Comma(int64(len(entries))), dir)
	return nil
}

func (r *runner) shellCommand(c *cli.Context) error {
	ctx := c.Context
	comp, err := r.open(ctx, true)
	if err != nil {
		return err
	}
	defer comp.Close()

	renderer, err := r.newRenderer()
	if err != nil {
		return err
	}
	return newShell(comp, renderer, r.out, r.cfg.Limit).Run(ctx, r.in)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func dataDirLabel(dir string, inMemory bool) string {
	if inMemory {
		return ""
	}
	return dir
}
