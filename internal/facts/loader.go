package facts

import (
	"fmt"
	"os"

	"github.com/lusakalabs/crucible/internal/model"
	"gopkg.in/yaml.v3"
)

// factFile is the YAML document shape for external fact datasets
type factFile struct {
	Facts []factEntry `yaml:"facts"`
}

type factEntry struct {
	ID            string   `yaml:"id"`
	Category      string   `yaml:"category"`
	Statement     string   `yaml:"statement"`
	Keywords      []string `yaml:"keywords"`
	Severity      string   `yaml:"severity"`
	Source        string   `yaml:"source"`
	EffectiveDate string   `yaml:"effective_date"`
}

// LoadYAML reads a fact dataset from a YAML file.
//
// Expected format:
//
//	facts:
//	  - id: TAX-001
//	    category: TAX
//	    statement: ...
//	    keywords: [turnover, tax]
//	    severity: moderate
func LoadYAML(path string) ([]model.Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fact file: %w", err)
	}

	var doc factFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fact file: %w", err)
	}
	if len(doc.Facts) == 0 {
		return nil, fmt.Errorf("fact file %s contains no facts", path)
	}

	out := make([]model.Fact, 0, len(doc.Facts))
	for i, e := range doc.Facts {
		category, err := model.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("fact %d (%s): %w", i, e.ID, err)
		}
		severity, err := model.ParseSeverity(e.Severity)
		if err != nil {
			return nil, fmt.Errorf("fact %d (%s): %w", i, e.ID, err)
		}
		out = append(out, model.Fact{
			ID:            e.ID,
			Category:      category,
			Statement:     e.Statement,
			Keywords:      e.Keywords,
			Severity:      severity,
			Source:        e.Source,
			EffectiveDate: e.EffectiveDate,
		})
	}

	return out, nil
}

// NewStoreFromConfig builds a store from the configured source: a YAML path
// when set, otherwise the builtin dataset.
func NewStoreFromConfig(cfg model.FactsConfig) (*Store, error) {
	if cfg.Path == "" {
		return NewBuiltinStore(), nil
	}
	loaded, err := LoadYAML(cfg.Path)
	if err != nil {
		return nil, err
	}
	return NewStore(loaded)
}
