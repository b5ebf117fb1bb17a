package debate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
)

// Orchestrator runs the full stress test: extraction, parallel per-assumption
// debates, and verdict aggregation. Assumptions are debated independently;
// one assumption's failure never aborts the others.
type Orchestrator struct {
	store     *facts.Store
	matcher   *match.Matcher
	gateway   *llm.Gateway
	extractor *Extractor
	adversary *Adversary
	proponent *Proponent
	judge     *Judge
	cfg       model.DebateConfig
}

// NewOrchestrator wires the debate roles over a shared store and gateway
func NewOrchestrator(store *facts.Store, gateway *llm.Gateway, cfg model.DebateConfig) *Orchestrator {
	return &Orchestrator{
		store:     store,
		matcher:   match.NewMatcher(store),
		gateway:   gateway,
		extractor: NewExtractor(gateway),
		adversary: NewAdversary(gateway),
		proponent: NewProponent(gateway),
		judge:     NewJudge(gateway, store),
		cfg:       cfg,
	}
}

// Run stress-tests a plan end to end and returns the verdict. The only
// error is invalid input; debate-level failures are absorbed into
// per-assumption results.
func (o *Orchestrator) Run(ctx context.Context, planText string) (*model.Verdict, error) {
	assumptions, err := o.extractor.Extract(ctx, planText)
	if err != nil {
		return nil, err
	}

	results := make([]model.AssumptionResult, len(assumptions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Parallelism)
	for i, a := range assumptions {
		i, a := i, a
		g.Go(func() error {
			results[i] = o.debateOne(gctx, a)
			return nil
		})
	}
	_ = g.Wait()

	return o.judge.Verdict(ctx, results, o.gateway.Degradations()), nil
}

// debateOne drives one assumption through the round state machine until it
// reaches a terminal status. Cancellation is checked between transitions;
// an assumption interrupted mid-debate ends CANCELLED.
func (o *Orchestrator) debateOne(ctx context.Context, a model.Assumption) model.AssumptionResult {
	result := model.AssumptionResult{}

	for attempt := 0; attempt <= o.cfg.MaxRounds; attempt++ {
		if ctx.Err() != nil {
			a.Status = model.StatusCancelled
			break
		}

		candidates := o.matcher.Match(a.Text, a.CategoryHint, o.cfg.RelevanceTopK)
		a.Status = model.StatusUnderAttack

		critique, err := o.adversary.Attack(ctx, a, candidates)
		if err != nil {
			a.Status = model.StatusKilled
			result.KilledByError = true
			break
		}
		round := model.DebateRound{Critique: critique}

		// A weak critique with no severe citation is dismissed outright
		if critique.NoMatchingFact ||
			(critique.Confidence < o.cfg.KillConfidenceThreshold && o.judge.maxSeverity(critique.CitedFactIDs) < model.SeveritySevere) {
			result.Rounds = append(result.Rounds, round)
			a.Status = model.StatusSurvived
			break
		}

		if ctx.Err() != nil {
			a.Status = model.StatusCancelled
			break
		}

		defense := o.proponent.Defend(ctx, a, critique, o.citedFacts(critique.CitedFactIDs))
		round.Defense = &defense
		result.Rounds = append(result.Rounds, round)

		if defense.Kind == model.DefenseRevision {
			a.Text = defense.RevisedText
			a.RoundCount++
			if a.RoundCount >= o.cfg.MaxRounds {
				a.Status = model.StatusRevised
				result.Unresolved = true
				break
			}
			continue
		}

		if o.judge.AcceptRound(critique, defense) {
			a.Status = model.StatusSurvived
		} else {
			a.Status = model.StatusKilled
			result.FatalFlawIDs = critique.CitedFactIDs
		}
		break
	}

	if !a.Status.Terminal() {
		// The loop bound guarantees a terminal status; reaching here is a bug
		a.Status = model.StatusKilled
		result.KilledByError = true
	}

	result.Assumption = a
	return result
}

// citedFacts resolves cited IDs against the store, preserving order
func (o *Orchestrator) citedFacts(ids []string) []model.Fact {
	out := make([]model.Fact, 0, len(ids))
	for _, id := range ids {
		if f, ok := o.store.ByID(id); ok {
			out = append(out, f)
		}
	}
	return out
}
