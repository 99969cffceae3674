package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Lang identifies the language of a table.
type Lang string

const (
	LangEnglish Lang = "en"
	LangFrench  Lang = "fr"
)

// LanguageTable is a flattened Foundry localization file. Nested objects
// become dotted keys ("PF2E.NPC.Abilities.Glossary.Grab"); only string
// leaves are kept.
type LanguageTable struct {
	Lang Lang
	flat map[string]string
}

// LoadLanguageTable reads and flattens a localization file. The language is
// taken from the file stem ("en.json", "fr.json").
func LoadLanguageTable(path string) (*LanguageTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotTable, path, err)
	}
	lang := Lang(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return NewLanguageTable(lang, tree), nil
}

// NewLanguageTable flattens a decoded localization tree.
func NewLanguageTable(lang Lang, tree map[string]any) *LanguageTable {
	t := &LanguageTable{Lang: lang, flat: make(map[string]string)}
	t.flatten("", tree)
	return t
}

func (t *LanguageTable) flatten(prefix string, node map[string]any) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			t.flat[full] = v
		case map[string]any:
			t.flatten(full, v)
		}
	}
}

// Len returns the number of string leaves.
func (t *LanguageTable) Len() int {
	return len(t.flat)
}

// Get returns the string at a dotted key.
func (t *LanguageTable) Get(key string) (string, bool) {
	v, ok := t.flat[key]
	return v, ok
}

// Children returns the direct string children of a dotted key as a map of
// child name to value.
func (t *LanguageTable) Children(parent string) map[string]string {
	prefix := parent + "."
	out := make(map[string]string)
	for key, value := range t.flat {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || strings.Contains(rest, ".") {
			continue
		}
		out[rest] = value
	}
	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
