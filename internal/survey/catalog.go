package survey

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed categories.yaml
var catalogYAML []byte

// FulfillmentPair names an available/required column pair shown as a stacked
// fulfillment bar.
type FulfillmentPair struct {
	Title     string `yaml:"title" json:"title"`
	Available string `yaml:"available" json:"available"`
	Required  string `yaml:"required" json:"required"`
	Unit      string `yaml:"unit" json:"unit"`
}

// FacilityField names a yes/no facility column shown as a pie breakdown.
type FacilityField struct {
	Title string `yaml:"title" json:"title"`
	Field string `yaml:"field" json:"field"`
}

// RankingMetric names a derived ratio column used for worst-5 rankings.
// PerHundred metrics display with 2 decimals, raw per-student with 3.
type RankingMetric struct {
	Key        string `yaml:"key" json:"key"`
	Label      string `yaml:"label" json:"label"`
	PerHundred bool   `yaml:"per_hundred" json:"per_hundred"`
}

// Catalog is the dashboard's category configuration, embedded at build time.
type Catalog struct {
	Fulfillment []FulfillmentPair `yaml:"fulfillment"`
	Facilities  []FacilityField   `yaml:"facilities"`
	Rankings    []RankingMetric   `yaml:"rankings"`
}

var catalog Catalog

// LoadCatalog parses the embedded catalog and checks every referenced column
// against the model, so a typo fails at startup instead of serving zeros.
func LoadCatalog() error {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	for _, p := range c.Fulfillment {
		if _, ok := countFields[p.Available]; !ok {
			return fmt.Errorf("catalog: unknown column %q in %q", p.Available, p.Title)
		}
		if _, ok := countFields[p.Required]; !ok {
			return fmt.Errorf("catalog: unknown column %q in %q", p.Required, p.Title)
		}
	}
	for _, f := range c.Facilities {
		if _, ok := facilityFields[f.Field]; !ok {
			return fmt.Errorf("catalog: unknown facility column %q", f.Field)
		}
	}
	for _, m := range c.Rankings {
		if _, ok := ratioFields[m.Key]; !ok {
			return fmt.Errorf("catalog: unknown ratio metric %q", m.Key)
		}
	}

	catalog = c
	return nil
}
