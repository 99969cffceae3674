// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/poiesic/compendium/core"
)

const (
	// DefaultWidth is the line width used when the output is not a terminal.
	DefaultWidth = 80

	// ExcerptLength is the maximum width of the description in a compact block.
	ExcerptLength = 120

	minWidth = 40
	indent   = "   "
)

// Renderer writes compact result blocks and full detail views to one writer.
type Renderer struct {
	out      io.Writer
	styles   *Styles
	width    int
	markdown bool
	md       *glamour.TermRenderer
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithWidth overrides the detected line width.
func WithWidth(width int) Option {
	return func(r *Renderer) error {
		if width < 1 {
			return ErrInvalidWidth
		}
		r.width = max(width, minWidth)
		return nil
	}
}

// WithMarkdown forces glamour rendering of descriptions on or off.
// Default is on when the writer is a terminal.
func WithMarkdown(enabled bool) Option {
	return func(r *Renderer) error {
		r.markdown = enabled
		return nil
	}
}

// NewRenderer creates a renderer bound to w.
func NewRenderer(w io.Writer, opts ...Option) (*Renderer, error) {
	if w == nil {
		return nil, ErrNoWriter
	}

	tty, width := detectTerminal(w)
	r := &Renderer{
		out:      w,
		styles:   NewStyles(lipgloss.NewRenderer(w)),
		width:    width,
		markdown: tty,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.markdown {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.width-len(indent)),
		)
		if err != nil {
			return nil, fmt.Errorf("creating markdown renderer: %w", err)
		}
		r.md = md
	}

	return r, nil
}

// Width returns the line width the renderer wraps to.
func (r *Renderer) Width() int {
	return r.width
}

// Styles returns the renderer's palette.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

type fileDescriptor interface {
	Fd() uintptr
}

func detectTerminal(w io.Writer) (bool, int) {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false, DefaultWidth
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, DefaultWidth
	}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return true, max(width, minWidth)
	}
	return true, DefaultWidth
}

// Compact writes the numbered result block of a search hit.
func (r *Renderer) Compact(n int, e *core.ResolvedEntry) error {
	s := r.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.Title.Render(fmt.Sprintf(" %d. %s ", n, displayName(e))))
	if original := originalName(e); original != "" {
		b.WriteString(" " + s.Original.Render("("+original+")"))
	}
	b.WriteString("\n")

	b.WriteString(indent + s.Kind.Render("["+KindLabel(e.Kind)+"]"))
	if level, ok := e.Level(); ok {
		b.WriteString(" " + s.Level.Render(fmt.Sprintf("Niv.%d", level)))
	}
	if e.PackKey != "" {
		b.WriteString(" " + s.Pack.Render("← "+e.PackKey))
	}
	if !e.Translated() {
		b.WriteString(" " + s.Untranslated.Render("[EN]"))
	}
	if e.ID != "" {
		b.WriteString(" " + s.Muted.Render("#"+shortID(e.ID)))
	}
	b.WriteString("\n")

	if traits := r.traitLine(e); traits != "" {
		b.WriteString(indent + traits + "\n")
	}

	if excerpt := Excerpt(description(e), ExcerptLength); excerpt != "" {
		b.WriteString(indent + s.Muted.Render(excerpt) + "\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Full writes the detail view of one entry: header, description and the
// attribute sections of its details variant.
func (r *Renderer) Full(e *core.ResolvedEntry) error {
	s := r.styles
	var b strings.Builder

	b.WriteString("\n" + r.rule("═") + "\n")

	title := s.Title.Render(" " + strings.ToUpper(displayName(e)) + " ")
	label := typeLabel(e)
	if level, ok := e.Level(); ok {
		label = fmt.Sprintf("%s %d", label, level)
	}
	b.WriteString(title + " " + s.Level.Render(label) + "\n")
	if original := originalName(e); original != "" {
		b.WriteString(indent + s.Original.Render("("+original+")") + "\n")
	}
	if traits := r.traitLine(e); traits != "" {
		b.WriteString(indent + traits + "\n")
	}
	b.WriteString(indent + s.Muted.Render(fmt.Sprintf("Pack: %s | ID: %s | Nom: %s | Description: %s",
		e.PackKey, e.ID, tierLabel(e.Provenance.Name), tierLabel(e.Provenance.Description))) + "\n")
	b.WriteString(s.Muted.Render(r.rule("─")) + "\n")

	if text := core.PlainText(description(e)); text != "" {
		body, err := r.paragraphs(text)
		if err != nil {
			return err
		}
		b.WriteString(body + "\n")
	}

	r.details(&b, e)

	b.WriteString(r.rule("═") + "\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) details(b *strings.Builder, e *core.ResolvedEntry) {
	for i, section := range Sections(e) {
		if i > 0 {
			r.separator(b)
		}
		for _, attr := range section {
			r.field(b, attr.Label, attr.Value)
		}
	}
}

// field writes one labeled attribute line. Empty values are skipped.
func (r *Renderer) field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(indent + r.styles.Label.Render(label) + " " + value + "\n")
}

func (r *Renderer) separator(b *strings.Builder) {
	b.WriteString(r.styles.Muted.Render(r.rule("─")) + "\n")
}

func (r *Renderer) rule(char string) string {
	return r.styles.Rule.Render(strings.Repeat(char, r.width))
}

// traitLine renders rarity (when not common) followed by the traits.
func (r *Renderer) traitLine(e *core.ResolvedEntry) string {
	names := traitNames(e)
	parts := make([]string, len(names))
	for i, name := range names {
		style := r.styles.Trait
		if isRarity(name) {
			style = r.styles.RarityStyle(strings.ToLower(name))
		}
		parts[i] = style.Render("[" + name + "]")
	}
	return strings.Join(parts, " ")
}

// paragraphs lays out a plain-text description, through glamour when
// markdown rendering is on.
func (r *Renderer) paragraphs(text string) (string, error) {
	if r.md != nil {
		out, err := r.md.Render(text)
		if err != nil {
			return "", fmt.Errorf("rendering description: %w", err)
		}
		return strings.TrimRight(out, "\n") + "\n", nil
	}

	var b strings.Builder
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		wrapped := ansi.Wordwrap(para, r.width-len(indent), "")
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(indent + strings.TrimRight(line, " ") + "\n")
		}
	}
	return b.String(), nil
}

// Excerpt flattens a description to one line and truncates it to width
// cells, ending with "..." when cut.
func Excerpt(description string, width int) string {
	text := strings.Join(strings.Fields(core.PlainText(description)), " ")
	return ansi.Truncate(text, width, "...")
}

func displayName(e *core.ResolvedEntry) string {
	if e.NameLocal != "" {
		return e.NameLocal
	}
	return e.NameOriginal
}

// originalName returns the original name when it differs from the displayed one.
func originalName(e *core.ResolvedEntry) string {
	if e.NameOriginal == "" || strings.EqualFold(e.NameOriginal, displayName(e)) {
		return ""
	}
	return e.NameOriginal
}

func description(e *core.ResolvedEntry) string {
	if e.DescriptionLocal != "" {
		return e.DescriptionLocal
	}
	return e.DescriptionOriginal
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
