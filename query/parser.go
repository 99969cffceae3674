package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/compendium/core"
)

// ErrEmptyTable indicates an alias or tradition table without entries.
var ErrEmptyTable = errors.New("table must not be empty")

// Query is a parsed search. A nil field means no constraint.
type Query struct {
	Kind      *core.Kind
	Pack      *string // normalized substring
	Trait     *string // normalized substring
	Tradition *TraditionFilter
	FreeText  *string // normalized

	// AllWords matches each word of FreeText anywhere in the entry
	// instead of the whole phrase.
	AllWords bool
}

// TraditionFilter is a tradition constraint as typed and as resolved.
// Err is set when the value named no tradition or more than one; such a
// filter matches nothing.
type TraditionFilter struct {
	Value     string
	Tradition core.Tradition
	Err       error
}

// Empty reports whether the query has neither filters nor free text.
func (q Query) Empty() bool {
	return q.Kind == nil && q.Pack == nil && q.Trait == nil && q.Tradition == nil && q.FreeText == nil
}

func (q Query) String() string {
	var parts []string
	if q.Kind != nil {
		parts = append(parts, "kind:"+string(*q.Kind))
	}
	if q.Pack != nil {
		parts = append(parts, "pack:"+*q.Pack)
	}
	if q.Trait != nil {
		parts = append(parts, "trait:"+*q.Trait)
	}
	if q.Tradition != nil {
		parts = append(parts, "tradition:"+q.Tradition.Value)
	}
	if q.FreeText != nil {
		parts = append(parts, fmt.Sprintf("%q", *q.FreeText))
	}
	return strings.Join(parts, " ")
}

// Parser turns raw query strings into queries. A Parser is immutable and
// safe for concurrent use.
type Parser struct {
	kinds      map[string]core.Kind
	traditions map[string]core.Tradition
}

// Option configures a Parser.
type Option func(*Parser) error

// WithKindAliases replaces the kind keyword table. Keys are normalized.
func WithKindAliases(aliases map[string]core.Kind) Option {
	return func(p *Parser) error {
		if len(aliases) == 0 {
			return fmt.Errorf("kind aliases: %w", ErrEmptyTable)
		}
		p.kinds = normalizeKeys(aliases)
		return nil
	}
}

// WithTraditions replaces the tradition name table. Keys are normalized.
func WithTraditions(names map[string]core.Tradition) Option {
	return func(p *Parser) error {
		if len(names) == 0 {
			return fmt.Errorf("traditions: %w", ErrEmptyTable)
		}
		p.traditions = normalizeKeys(names)
		return nil
	}
}

// NewParser creates a parser over the default tables.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		kinds:      DefaultKindAliases,
		traditions: DefaultTraditionNames,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse parses raw in a single pass over its words.
func (p *Parser) Parse(raw string) Query {
	var (
		q       Query
		free    []string
		pending filterKey
	)

	for _, word := range strings.Fields(raw) {
		keyword, rest, isKeyword := strings.Cut(word, ":")
		if isKeyword && keyword != "" {
			kw := core.Normalize(keyword)
			if key, ok := filterAliases[kw]; ok {
				pending = 0
				if rest == "" {
					pending = key
				} else {
					p.setFilter(&q, key, rest)
				}
				continue
			}
			if kind, ok := p.kinds[kw]; ok {
				pending = 0
				q.Kind = &kind
				if rest != "" {
					free = append(free, rest)
				}
				continue
			}
		}

		if pending != 0 {
			p.setFilter(&q, pending, word)
			pending = 0
			continue
		}
		free = append(free, word)
	}

	if text := core.Normalize(strings.Join(free, " ")); text != "" {
		q.FreeText = &text
	}
	return q
}

func (p *Parser) setFilter(q *Query, key filterKey, value string) {
	norm := core.Normalize(value)
	if norm == "" {
		return
	}
	switch key {
	case filterPack:
		q.Pack = &norm
	case filterTrait:
		q.Trait = &norm
	case filterTradition:
		q.Tradition = p.resolveTradition(norm)
	}
}

// resolveTradition picks the unique tradition with a name starting with
// value.
func (p *Parser) resolveTradition(value string) *TraditionFilter {
	f := &TraditionFilter{Value: value}
	matches := make(map[core.Tradition]bool)
	for name, t := range p.traditions {
		if strings.HasPrefix(name, value) {
			matches[t] = true
		}
	}

	switch len(matches) {
	case 1:
		for t := range matches {
			f.Tradition = t
		}
	case 0:
		f.Err = fmt.Errorf("%w: %q names no tradition", core.ErrAmbiguousFilter, value)
	default:
		f.Err = fmt.Errorf("%w: %q names %d traditions", core.ErrAmbiguousFilter, value, len(matches))
	}
	return f
}

func normalizeKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[core.Normalize(k)] = v
	}
	return out
}
