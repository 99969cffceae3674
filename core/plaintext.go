package core

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Foundry inline enrichers, rewritten to their visible label.
var (
	uuidLinkRe = regexp.MustCompile(`@(?:UUID|Compendium)\[[^\]]+\]\{([^}]+)\}`)
	bareLinkRe = regexp.MustCompile(`@(?:UUID|Compendium)\[[^\]]*?([^.\]]+)\]`)
	checkRe    = regexp.MustCompile(`@Check\[([^\]|]+)[^\]]*\]`)
	damageRe   = regexp.MustCompile(`@Damage\[((?:[^\[\]]|\[[^\]]*\])+)\](?:\{([^}]+)\})?`)
	rollRe     = regexp.MustCompile(`\[\[/r(?:oll)?\s*([^\]#]+)[^\]]*\]\](?:\{([^}]+)\})?`)
	blankRe    = regexp.MustCompile(`\n{3,}`)
)

// damageTypes flattens "2d6[fire]" to "2d6 fire".
var damageTypes = strings.NewReplacer("[", " ", "]", "")

// blockTags end a line when they open or close.
var blockTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "tr": true, "table": true, "section": true, "blockquote": true,
}

// PlainText converts Foundry description HTML to plain text. Block elements
// become line breaks, list items are bulleted and inline enrichers are
// replaced by their labels.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	s = StripEnrichers(s)

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			out := blankRe.ReplaceAllString(b.String(), "\n\n")
			return strings.TrimSpace(out)
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "li" {
				b.WriteString("\n• ")
				continue
			}
			if tag == "hr" {
				b.WriteString("\n---\n")
				continue
			}
			if blockTags[tag] {
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag != "li" && blockTags[tag] {
				b.WriteString("\n")
			}
		}
	}
}

// StripEnrichers replaces Foundry enrichers (@UUID, @Check, @Damage, inline
// rolls) with readable text and leaves HTML untouched.
func StripEnrichers(s string) string {
	s = uuidLinkRe.ReplaceAllString(s, "$1")
	s = bareLinkRe.ReplaceAllString(s, "$1")
	s = checkRe.ReplaceAllString(s, "[$1]")
	s = damageRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := damageRe.FindStringSubmatch(m)
		if sub[2] != "" {
			return sub[2]
		}
		return damageTypes.Replace(sub[1])
	})
	s = rollRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := rollRe.FindStringSubmatch(m)
		if sub[2] != "" {
			return sub[2]
		}
		return "[" + strings.TrimSpace(sub[1]) + "]"
	})
	return s
}
