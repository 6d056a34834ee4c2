package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pathways/internal/pathway"
)

// ---------------------------------------------------------------------------
// ParseTaxonomyConfig
// ---------------------------------------------------------------------------

func TestParseTaxonomyConfig_Overrides(t *testing.T) {
	data := []byte(`
source: https://example.com/pub?output=csv
taxonomy:
  actors:
    - Governments
    - Communities
  financed:
    - Operations
`)

	cfg, err := ParseTaxonomyConfig(data)
	require.NoError(t, err)
	assert.False(t, cfg.IsEmpty())
	assert.Equal(t, []string{"Governments", "Communities"}, cfg.Actors)
	assert.Equal(t, []string{"Operations"}, cfg.Financed)
	assert.Nil(t, cfg.Barriers)
}

func TestParseTaxonomyConfig_Empty(t *testing.T) {
	cfg, err := ParseTaxonomyConfig([]byte("log-level: info\n"))
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
}

func TestParseTaxonomyConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty list", "taxonomy:\n  barriers: []\n", "taxonomy.barriers: list must not be empty"},
		{"blank value", "taxonomy:\n  incentives: [\"a\", \"  \"]\n", "taxonomy.incentives[1]: value must not be blank"},
		{"duplicate", "taxonomy:\n  enablingConditions: [x, y, x]\n", `taxonomy.enablingConditions[2]: duplicate value "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaxonomyConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseTaxonomyConfig_Malformed(t *testing.T) {
	_, err := ParseTaxonomyConfig([]byte("taxonomy: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing taxonomy config")
}

// ---------------------------------------------------------------------------
// Apply
// ---------------------------------------------------------------------------

func TestTaxonomyConfig_ApplyNilKeepsDefaults(t *testing.T) {
	var cfg *TaxonomyConfig
	assert.Equal(t, pathway.DefaultTaxonomy(), cfg.Apply(pathway.DefaultTaxonomy()))
}

func TestTaxonomyConfig_ApplyReplacesOnlyGivenLists(t *testing.T) {
	cfg := &TaxonomyConfig{Actors: []string{"Governments"}}
	got := cfg.Apply(pathway.DefaultTaxonomy())

	assert.Equal(t, []string{"Governments"}, got.Actors)
	assert.Equal(t, pathway.DefaultTaxonomy().Barriers, got.Barriers)

	// The result does not alias the override.
	got.Actors[0] = "changed"
	assert.Equal(t, "Governments", cfg.Actors[0])
}
