package config

import (
	"fmt"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/hupe1980/pathways/internal/pathway"
)

// TaxonomyConfig holds taxonomy overrides loaded from the taxonomy section
// of the config file (.pathways.yaml). A nil list keeps the default.
type TaxonomyConfig struct {
	// Actors replaces the actor type list.
	Actors []string `json:"actors,omitempty"`

	// EnablingConditions replaces the enabling condition list.
	EnablingConditions []string `json:"enablingConditions,omitempty"`

	// Incentives replaces the incentive list.
	Incentives []string `json:"incentives,omitempty"`

	// Barriers replaces the barrier list.
	Barriers []string `json:"barriers,omitempty"`

	// Financed replaces the financed category list.
	Financed []string `json:"financed,omitempty"`
}

// ParseTaxonomyConfig parses the taxonomy section from raw config file
// bytes. A file without a taxonomy section yields an empty config.
func ParseTaxonomyConfig(data []byte) (*TaxonomyConfig, error) {
	var raw struct {
		Taxonomy *struct {
			Actors             []string `json:"actors"`
			EnablingConditions []string `json:"enablingConditions"`
			Incentives         []string `json:"incentives"`
			Barriers           []string `json:"barriers"`
			Financed           []string `json:"financed"`
		} `json:"taxonomy"`
	}

	if err := sigsyaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing taxonomy config: %w", err)
	}

	cfg := &TaxonomyConfig{}
	if raw.Taxonomy != nil {
		cfg.Actors = raw.Taxonomy.Actors
		cfg.EnablingConditions = raw.Taxonomy.EnablingConditions
		cfg.Incentives = raw.Taxonomy.Incentives
		cfg.Barriers = raw.Taxonomy.Barriers
		cfg.Financed = raw.Taxonomy.Financed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every present list is non-empty and holds no blank
// or duplicate values.
func (c *TaxonomyConfig) Validate() error {
	for _, f := range pathway.Facets {
		key, values := c.list(f)
		if values == nil {
			continue
		}

		if len(values) == 0 {
			return fmt.Errorf("taxonomy.%s: list must not be empty", key)
		}

		seen := make(map[string]struct{}, len(values))

		for i, v := range values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("taxonomy.%s[%d]: value must not be blank", key, i)
			}

			if _, dup := seen[v]; dup {
				return fmt.Errorf("taxonomy.%s[%d]: duplicate value %q", key, i, v)
			}

			seen[v] = struct{}{}
		}
	}

	return nil
}

// IsEmpty returns true if the config has no overrides.
func (c *TaxonomyConfig) IsEmpty() bool {
	if c == nil {
		return true
	}

	for _, f := range pathway.Facets {
		if _, values := c.list(f); values != nil {
			return false
		}
	}

	return true
}

// Apply returns base with the configured lists substituted. The result
// never aliases the config's slices.
func (c *TaxonomyConfig) Apply(base pathway.Taxonomy) pathway.Taxonomy {
	if c.IsEmpty() {
		return base
	}

	pick := func(override, def []string) []string {
		if override == nil {
			return def
		}

		return append([]string(nil), override...)
	}

	return pathway.Taxonomy{
		Actors:             pick(c.Actors, base.Actors),
		EnablingConditions: pick(c.EnablingConditions, base.EnablingConditions),
		Incentives:         pick(c.Incentives, base.Incentives),
		Barriers:           pick(c.Barriers, base.Barriers),
		Financed:           pick(c.Financed, base.Financed),
	}
}

// list returns the config key and override list for a facet.
func (c *TaxonomyConfig) list(f pathway.Facet) (string, []string) {
	switch f {
	case pathway.FacetActor:
		return "actors", c.Actors
	case pathway.FacetCondition:
		return "enablingConditions", c.EnablingConditions
	case pathway.FacetIncentive:
		return "incentives", c.Incentives
	case pathway.FacetBarrier:
		return "barriers", c.Barriers
	case pathway.FacetFinanced:
		return "financed", c.Financed
	default:
		return "", nil
	}
}
