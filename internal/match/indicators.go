package match

import (
	"strings"

	"github.com/lusakalabs/crucible/internal/model"
)

// categoryIndicators maps each fact category to the plan vocabulary that
// signals it. Used to derive assumption category hints.
var categoryIndicators = map[model.Category][]string{
	model.CategoryTax:          {"tax", "revenue", "turnover", "vat", "income tax", "withholding"},
	model.CategoryEnergy:       {"fuel", "diesel", "petrol", "electricity", "power", "solar", "energy", "generator"},
	model.CategoryFinance:      {"loan", "bank", "interest", "financing", "credit", "lending", "inflation", "exchange rate", "forex", "kwacha"},
	model.CategoryLogistics:    {"transport", "road", "delivery", "logistics", "fleet", "shipping", "cold chain", "warehouse"},
	model.CategoryMining:       {"mining", "mine", "copper", "cobalt", "mineral", "smelting", "ore", "drill"},
	model.CategoryAgriculture:  {"farm", "agriculture", "maize", "crop", "harvest", "fertilizer", "seed", "livestock", "land"},
	model.CategoryLabor:        {"employee", "worker", "salary", "wage", "staff", "hire", "payroll", "labour", "labor", "napsa"},
	model.CategoryTrade:        {"import", "export", "customs", "tariff", "comesa", "trade", "duty"},
	model.CategoryDigital:      {"digital", "mobile", "app", "software", "internet", "telecom", "fintech", "data", "online", "e-commerce"},
	model.CategoryRegistration: {"register", "license", "permit", "pacra", "zema", "certification", "compliance"},
}

// DetectCategories returns every category whose indicators appear in the text,
// in the fixed enumeration order.
func DetectCategories(text string) []model.Category {
	lower := strings.ToLower(text)
	var detected []model.Category
	for _, category := range model.Categories() {
		for _, indicator := range categoryIndicators[category] {
			if strings.Contains(lower, indicator) {
				detected = append(detected, category)
				break
			}
		}
	}
	return detected
}

// DetectHint returns the first category detected in the text, or "" when the
// text matches no sector vocabulary.
func DetectHint(text string) model.Category {
	detected := DetectCategories(text)
	if len(detected) == 0 {
		return ""
	}
	return detected[0]
}
