package debate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/model"
)

// Judge decides whether a rebuttal overcomes a critique and aggregates the
// per-assumption outcomes into the final verdict. Round acceptance is a pure
// severity comparison over the fact store; only the human-readable rationale
// goes through the reasoning gateway.
type Judge struct {
	gateway *llm.Gateway
	store   *facts.Store
}

// NewJudge creates a judge over the given fact store
func NewJudge(gateway *llm.Gateway, store *facts.Store) *Judge {
	return &Judge{gateway: gateway, store: store}
}

// AcceptRound reports whether a rebuttal defeats the critique. A rebuttal
// stands when it cites a counter-fact at least as severe as the strongest
// cited fact, or when nothing cited is severe. Severe citations without a
// matching counter are unrebuttable.
func (j *Judge) AcceptRound(critique model.Critique, defense model.Defense) bool {
	if defense.Kind != model.DefenseRebuttal {
		return false
	}

	critiqueSev := j.maxSeverity(critique.CitedFactIDs)
	counterSev := j.counterSeverity(defense.ArgumentText, critique.CitedFactIDs)

	if counterSev >= critiqueSev {
		return true
	}
	return critiqueSev < model.SeveritySevere
}

// Verdict aggregates results into the overall verdict with a rationale.
// FAIL requires at least one assumption killed over a severe fact; killed
// over lesser facts, unresolved revisions, and cancelled assumptions cap
// the verdict at CONDITIONAL_PASS.
func (j *Judge) Verdict(ctx context.Context, results []model.AssumptionResult, degradations int) *model.Verdict {
	perAssumption := make(map[string]model.AssumptionStatus, len(results))
	var fatalFlawIDs []string
	seenFlaw := make(map[string]bool)
	overall := model.VerdictPass

	for _, r := range results {
		perAssumption[r.Assumption.ID] = r.Assumption.Status

		switch r.Assumption.Status {
		case model.StatusKilled:
			for _, id := range r.FatalFlawIDs {
				if !seenFlaw[id] {
					seenFlaw[id] = true
					fatalFlawIDs = append(fatalFlawIDs, id)
				}
			}
			if j.maxSeverity(r.FatalFlawIDs) >= model.SeveritySevere {
				overall = model.VerdictFail
			} else if overall != model.VerdictFail {
				overall = model.VerdictConditionalPass
			}
		case model.StatusRevised, model.StatusCancelled:
			if r.Unresolved || r.Assumption.Status == model.StatusCancelled {
				if overall != model.VerdictFail {
					overall = model.VerdictConditionalPass
				}
			}
		}
	}

	rationale := j.gateway.Generate(ctx, llm.GenerateRequest{
		Role:   llm.RoleJudge,
		System: judgeSystem,
		Prompt: judgePrompt(overall, results, fatalFlawIDs),
	})

	return &model.Verdict{
		RunID:               uuid.NewString(),
		CreatedAt:           time.Now().UTC(),
		PerAssumption:       perAssumption,
		Overall:             overall,
		RationaleText:       strings.TrimSpace(rationale),
		FatalFlawIDs:        fatalFlawIDs,
		Results:             results,
		GatewayDegradations: degradations,
	}
}

// maxSeverity returns the strongest severity among the given fact IDs.
// Unknown IDs contribute nothing.
func (j *Judge) maxSeverity(ids []string) model.Severity {
	max := model.Severity(0)
	for _, id := range ids {
		if f, ok := j.store.ByID(id); ok && f.Severity > max {
			max = f.Severity
		}
	}
	return max
}

// counterSeverity finds the strongest fact the defense itself invokes by ID,
// excluding the facts the critique already cited.
func (j *Judge) counterSeverity(argument string, citedIDs []string) model.Severity {
	cited := make(map[string]bool, len(citedIDs))
	for _, id := range citedIDs {
		cited[id] = true
	}

	max := model.Severity(0)
	for _, f := range j.store.All() {
		if cited[f.ID] {
			continue
		}
		if strings.Contains(argument, f.ID) && f.Severity > max {
			max = f.Severity
		}
	}
	return max
}
