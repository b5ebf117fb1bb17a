package debate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
	"github.com/lusakalabs/crucible/internal/util"
)

// Extractor turns free-form plan text into discrete, attackable assumptions
type Extractor struct {
	gateway *llm.Gateway
}

// NewExtractor creates an extractor backed by the reasoning gateway
func NewExtractor(gateway *llm.Gateway) *Extractor {
	return &Extractor{gateway: gateway}
}

var assumptionLineRe = regexp.MustCompile(`(?im)^\s*\[([A-Z_]+)\]\s*ASSUMPTION:\s*(.+)$`)

// Extract segments the plan into assumptions with stable IDs and category
// hints. Empty or whitespace-only input is rejected. HTML input is reduced
// to its visible text before extraction.
func (e *Extractor) Extract(ctx context.Context, planText string) ([]model.Assumption, error) {
	plan := strings.TrimSpace(planText)
	if plan == "" {
		return nil, model.ErrEmptyPlan
	}
	if util.LooksLikeHTML(plan) {
		plan = util.VisibleText(plan)
		if strings.TrimSpace(plan) == "" {
			return nil, model.ErrEmptyPlan
		}
	}

	req := llm.GenerateRequest{
		Role:   llm.RoleExtractor,
		System: extractorSystem,
		Prompt: extractorPrompt(plan),
	}

	text := e.gateway.Generate(ctx, req)
	assumptions := parseAssumptions(text)
	if len(assumptions) == 0 {
		// Remote output did not follow the line format; the deterministic
		// provider always yields at least one assumption for non-empty text.
		assumptions = parseAssumptions(e.gateway.Fallback(req))
	}
	if len(assumptions) == 0 {
		return nil, fmt.Errorf("%w: extractor produced no assumptions", ErrInvariant)
	}
	return assumptions, nil
}

// parseAssumptions parses "[CATEGORY] ASSUMPTION: ..." lines into pending
// assumptions with sequential IDs.
func parseAssumptions(text string) []model.Assumption {
	var assumptions []model.Assumption
	seen := make(map[string]bool)

	for _, m := range assumptionLineRe.FindAllStringSubmatch(text, -1) {
		label, body := m[1], strings.TrimSpace(m[2])
		key := strings.ToLower(body)
		if body == "" || seen[key] {
			continue
		}
		seen[key] = true

		hint, err := model.ParseCategory(label)
		if err != nil {
			hint = match.DetectHint(body)
		}

		assumptions = append(assumptions, model.Assumption{
			ID:           fmt.Sprintf("A%d", len(assumptions)+1),
			Text:         body,
			CategoryHint: hint,
			Status:       model.StatusPending,
		})
	}
	return assumptions
}
