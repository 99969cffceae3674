package source

import (
	"context"
	"testing"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations_LookupTier1(t *testing.T) {
	layout := fixtureLayout(t)
	ctx := context.Background()

	store, err := LoadDocuments(ctx, layout.DataDir())
	require.NoError(t, err)
	defer store.Close()
	tr := NewTranslations(store, nil)

	tests := []struct {
		name   string
		id     string
		pack   string
		field  core.Field
		want   string
		wantOK bool
	}{
		{"name", fireballID, "spells-srd", core.FieldName, "Boule de feu", true},
		{"description", fireballID, "spells-srd", core.FieldDescription, "<p>Une explosion de flammes.</p>", true},
		{"other pack", fireballID, "feats-srd", core.FieldName, "", false},
		{"unknown id", "nope", "spells-srd", core.FieldName, "", false},
		{"class defers to journal page", wizardID, "classes", core.FieldDescription, "<p>Vous êtes un éternel étudiant.</p>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := tr.LookupTier1(ctx, tt.id, tt.pack, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslations_LookupTier2(t *testing.T) {
	ctx := context.Background()
	french := NewLanguageTable(LangFrench, map[string]any{
		"PF2E": map[string]any{"ConditionTypeBlinded": "Aveuglé"},
	})
	tr := NewTranslations(nil, NewTableSource(french, DefaultRules))

	got, ok, err := tr.LookupTier2(ctx, "condition-blinded", core.FieldName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Aveuglé", got)

	// Conditions carry no description; empty text is a miss.
	_, ok, err = tr.LookupTier2(ctx, "condition-blinded", core.FieldDescription)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tr.LookupTier1(ctx, "condition-blinded", "conditions", core.FieldName)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTranslations_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewTranslations(nil, nil)
	_, _, err := tr.LookupTier2(ctx, "x", core.FieldName)
	assert.ErrorIs(t, err, context.Canceled)
}
