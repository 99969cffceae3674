package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"accented capital", "Épée", "epee"},
		{"plain", "epee", "epee"},
		{"upper case", "BOULE DE FEU", "boule de feu"},
		{"collapse whitespace", "  Boule \t de\n\nfeu  ", "boule de feu"},
		{"cedilla", "Façade", "facade"},
		{"ligature oe", "Cœur de pierre", "coeur de pierre"},
		{"ligature ae", "Æther", "aether"},
		{"apostrophe kept", "Souffle d'acide", "souffle d'acide"},
		{"mixed diacritics", "Créature élémentaire naïve", "creature elementaire naive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Épée longue",
		"  Œil   du   Dragon ",
		"FEU",
		"Straße",
		"déjà vu",
		"G\xf1Ȟ",
		"\xffÉpée",
		"İstanbul",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	assert.Equal(t, "g\uFFFDh", Normalize("G\xf1Ȟ"))
	assert.Equal(t, "\uFFFDepee", Normalize("\xffÉpée"))
}

func TestNormalize_Concurrent(t *testing.T) {
	inputs := []string{
		"Créature élémentaire naïve",
		"Boule de feu",
		"  Œil   du   Dragon ",
		"Façade ÉPÉE Straße",
		"Sort focalisé: Déflagration d'énergie",
		"G\xf1Ȟ",
	}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = Normalize(in)
	}

	const workers = 16
	var wg sync.WaitGroup
	mismatches := make(chan string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 2000; n++ {
				i := (n + w) % len(inputs)
				if got := Normalize(inputs[i]); got != want[i] {
					mismatches <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(mismatches)

	for got := range mismatches {
		t.Errorf("concurrent Normalize returned %q", got)
	}
}

func TestNormalize_AccentAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("Épée"), Normalize("epee"))
	assert.Equal(t, Normalize("Feu"), Normalize("FEU"))
	assert.Equal(t, "arcanique", Normalize("ARCANIQUE"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"boule", "de", "feu"}, Tokens(Normalize("Boule de  Feu")))
	assert.Empty(t, Tokens(""))
}
