package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies a ground-truth fact by economic/regulatory sector
type Category string

const (
	CategoryTax          Category = "TAX"
	CategoryEnergy       Category = "ENERGY"
	CategoryFinance      Category = "FINANCE"
	CategoryLogistics    Category = "LOGISTICS"
	CategoryMining       Category = "MINING"
	CategoryAgriculture  Category = "AGRICULTURE"
	CategoryLabor        Category = "LABOR"
	CategoryTrade        Category = "TRADE"
	CategoryDigital      Category = "DIGITAL"
	CategoryRegistration Category = "REGISTRATION"
)

// Categories returns the fixed enumeration in stable order
func Categories() []Category {
	return []Category{
		CategoryTax, CategoryEnergy, CategoryFinance, CategoryLogistics,
		CategoryMining, CategoryAgriculture, CategoryLabor, CategoryTrade,
		CategoryDigital, CategoryRegistration,
	}
}

// ParseCategory validates a category name against the fixed enumeration
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Severity is the ordinal impact classification of a fact
type Severity int

const (
	SeverityInformational Severity = 1
	SeverityModerate      Severity = 2
	SeveritySevere        Severity = 3
)

func (s Severity) String() string {
	switch s {
	case SeverityInformational:
		return "informational"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name (case-insensitive)
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "informational", "info":
		return SeverityInformational, nil
	case "moderate":
		return SeverityModerate, nil
	case "severe":
		return SeveritySevere, nil
	default:
		return 0, fmt.Errorf("unknown severity: %q", s)
	}
}

// MarshalJSON emits the severity name rather than the ordinal
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the severity name
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Fact is a single ground-truth regulatory/economic datum.
// Immutable once loaded into the store.
type Fact struct {
	ID            string   `json:"id" yaml:"id"`
	Category      Category `json:"category" yaml:"category"`
	Statement     string   `json:"statement" yaml:"statement"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
	Severity      Severity `json:"severity" yaml:"severity"`
	Source        string   `json:"source,omitempty" yaml:"source,omitempty"`
	EffectiveDate string   `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
}
