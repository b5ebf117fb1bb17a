package debate

import (
	"context"
	"strings"

	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/model"
)

// Proponent defends an assumption against a critique, either rebutting it
// or revising the assumption to sidestep the cited facts.
type Proponent struct {
	gateway *llm.Gateway
}

// NewProponent creates a proponent backed by the reasoning gateway
func NewProponent(gateway *llm.Gateway) *Proponent {
	return &Proponent{gateway: gateway}
}

var defenseKeys = []string{"KIND", "ARGUMENT", "REVISED"}

// Defend produces a defense for the critiqued assumption. A malformed
// response (unknown kind, or a revision without revised text) is answered
// by the deterministic fallback instead.
func (p *Proponent) Defend(ctx context.Context, assumption model.Assumption, critique model.Critique, cited []model.Fact) model.Defense {
	req := llm.GenerateRequest{
		Role:   llm.RoleProponent,
		System: proponentSystem,
		Prompt: proponentPrompt(assumption, critique, cited),
	}

	defense, ok := p.parseDefense(p.gateway.Generate(ctx, req), assumption)
	if !ok {
		defense, _ = p.parseDefense(p.gateway.Fallback(req), assumption)
	}
	return defense
}

func (p *Proponent) parseDefense(text string, assumption model.Assumption) (model.Defense, bool) {
	fields := parseFields(text, defenseKeys)

	defense := model.Defense{
		AssumptionID: assumption.ID,
		Round:        assumption.RoundCount,
		ArgumentText: fields["ARGUMENT"],
	}

	switch strings.ToUpper(strings.TrimSpace(fields["KIND"])) {
	case string(model.DefenseRebuttal):
		defense.Kind = model.DefenseRebuttal
	case string(model.DefenseRevision):
		defense.Kind = model.DefenseRevision
		defense.RevisedText = strings.TrimSpace(fields["REVISED"])
		if defense.RevisedText == "" || strings.EqualFold(defense.RevisedText, assumption.Text) {
			// A revision that changes nothing would loop forever
			return defense, false
		}
	default:
		return defense, false
	}

	if defense.ArgumentText == "" {
		return defense, false
	}
	return defense, true
}
