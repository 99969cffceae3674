package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/poiesic/compendium"
	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/index"
	"github.com/poiesic/compendium/render"
)

const (
	shellPrompt = "🔍 > "
	topPacks    = 25
	topTraits   = 30
)

// shell is the interactive search loop. It remembers the last results so
// a bare number opens one of them.
type shell struct {
	comp     *compendium.Compendium
	renderer *render.Renderer
	out      io.Writer
	limit    int
	last     []*core.ResolvedEntry
}

func newShell(comp *compendium.Compendium, renderer *render.Renderer, out io.Writer, limit int) *shell {
	return &shell{comp: comp, renderer: renderer, out: out, limit: limit}
}

// Run reads commands from in until quit, EOF or cancellation.
func (s *shell) Run(ctx context.Context, in io.Reader) error {
	s.banner()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := s.handle(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "❌ %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *shell) banner() {
	fmt.Fprintln(s.out, "Compendium PF2e")
	if idx := s.comp.Index(); idx != nil {
		fmt.Fprintf(s.out, "%s entrées chargées\n", humanize.Comma(int64(idx.Len())))
	}
	fmt.Fprintln(s.out, "Tapez une recherche, un numéro de résultat, ou: stats, types, packs, traits, full N, quit")
}

func (s *shell) handle(ctx context.Context, line string) (bool, error) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case "q", "quit", "exit":
		return true, nil
	case "stats":
		stats, err := s.comp.Stats(ctx)
		if err != nil {
			return false, err
		}
		printStats(s.out, stats)
		return false, nil
	case "types":
		s.types()
		return false, nil
	case "packs":
		s.top("Packs", s.comp.Index().Packs(), s.comp.Index().ByPack, topPacks)
		return false, nil
	case "traits":
		s.top("Traits", s.comp.Index().Traits(), s.comp.Index().ByTrait, topTraits)
		return false, nil
	case "full":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return false, fmt.Errorf("usage: full N")
		}
		return false, s.show(n)
	}

	if n, err := strconv.Atoi(line); err == nil {
		return false, s.show(n)
	}

	results, err := s.comp.Search(ctx, line, s.limit)
	if err != nil {
		return false, err
	}
	s.last = results
	return false, printResults(s.out, s.renderer, s.comp.Searcher().Parse(line).String(), results, false)
}

// show prints the nth result (1-based) of the last search.
func (s *shell) show(n int) error {
	if n < 1 || n > len(s.last) {
		return fmt.Errorf("no result #%d (last search returned %d)", n, len(s.last))
	}
	return s.renderer.Full(s.last[n-1])
}

func (s *shell) types() {
	idx := s.comp.Index()
	fmt.Fprintln(s.out, "\n📋 Types:")
	for _, kind := range idx.Kinds() {
		fmt.Fprintf(s.out, "   • %s (%s)\n", render.KindLabel(kind), humanize.Comma(int64(len(idx.ByKind(kind)))))
	}
}

// top lists the n most populated keys.
func (s *shell) top(title string, keys []string, postings func(string) index.Postings, n int) {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = len(postings(k))
	}
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, func(a, b string) int {
		return cmp.Or(cmp.Compare(counts[b], counts[a]), cmp.Compare(a, b))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	fmt.Fprintf(s.out, "\n📦 %s (%d):\n", title, len(keys))
	for _, k := range sorted {
		fmt.Fprintf(s.out, "   • %s (%s)\n", k, humanize.Comma(int64(counts[k])))
	}
}
