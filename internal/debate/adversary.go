package debate

import (
	"context"

	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
)

// Adversary attacks an assumption using only the matcher's candidate facts.
// Citations are validated against the candidate set: a response citing
// unknown fact IDs is retried once against the deterministic fallback, which
// is grounded by construction.
type Adversary struct {
	gateway *llm.Gateway
}

// NewAdversary creates an adversary backed by the reasoning gateway
func NewAdversary(gateway *llm.Gateway) *Adversary {
	return &Adversary{gateway: gateway}
}

var critiqueKeys = []string{"CITES", "CONFIDENCE", "ARGUMENT"}

// Attack produces a critique of the assumption at its current round. When
// no candidate facts exist the critique is marked NoMatchingFact with low
// confidence, which the orchestrator resolves as SURVIVED.
func (a *Adversary) Attack(ctx context.Context, assumption model.Assumption, candidates []match.Match) (model.Critique, error) {
	req := llm.GenerateRequest{
		Role:   llm.RoleAdversary,
		System: adversarySystem,
		Prompt: adversaryPrompt(assumption, candidates),
	}

	critique, err := a.parseCritique(a.gateway.Generate(ctx, req), assumption, candidates)
	if err != nil {
		critique, err = a.parseCritique(a.gateway.Fallback(req), assumption, candidates)
	}
	return critique, err
}

// parseCritique validates a CITES/CONFIDENCE/ARGUMENT block against the
// candidate set. IDs outside the candidate set are dropped; a critique left
// with no citation while candidates exist is ungrounded.
func (a *Adversary) parseCritique(text string, assumption model.Assumption, candidates []match.Match) (model.Critique, error) {
	fields := parseFields(text, critiqueKeys)

	allowed := make(map[string]bool, len(candidates))
	for _, m := range candidates {
		allowed[m.Fact.ID] = true
	}

	var cited []string
	for _, id := range parseIDList(fields["CITES"]) {
		if allowed[id] {
			cited = append(cited, id)
		}
	}

	critique := model.Critique{
		AssumptionID:   assumption.ID,
		Round:          assumption.RoundCount,
		CitedFactIDs:   cited,
		ArgumentText:   fields["ARGUMENT"],
		Confidence:     parseConfidence(fields["CONFIDENCE"]),
		NoMatchingFact: len(candidates) == 0,
	}

	if len(cited) == 0 && len(candidates) > 0 {
		return critique, ErrUngroundedCritique
	}
	return critique, nil
}
