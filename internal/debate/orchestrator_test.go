package debate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/model"
)

func newTestOrchestrator() *Orchestrator {
	cfg := model.DefaultConfig()
	return NewOrchestrator(facts.NewBuiltinStore(), llm.NewFallbackGateway(), cfg.Debate)
}

const copperPlan = "We will export raw copper concentrate duty-free to maximize margins."

func TestOrchestrator_SevereContradictionFails(t *testing.T) {
	orch := newTestOrchestrator()

	verdict, err := orch.Run(context.Background(), copperPlan)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if verdict.Overall != model.VerdictFail {
		t.Errorf("Overall = %s, want FAIL", verdict.Overall)
	}

	found := false
	for _, id := range verdict.FatalFlawIDs {
		if id == "MINING-002" {
			found = true
		}
	}
	if !found {
		t.Errorf("FatalFlawIDs = %v, expected MINING-002 (export duty on concentrate)", verdict.FatalFlawIDs)
	}

	if verdict.RunID == "" {
		t.Error("verdict missing run ID")
	}
	if verdict.CreatedAt.IsZero() {
		t.Error("verdict missing timestamp")
	}
	if verdict.RationaleText == "" {
		t.Error("verdict missing rationale")
	}
	if len(verdict.Results) == 0 {
		t.Fatal("verdict carries no assumption results")
	}
	if len(verdict.PerAssumption) != len(verdict.Results) {
		t.Errorf("PerAssumption has %d entries for %d results", len(verdict.PerAssumption), len(verdict.Results))
	}

	cfg := model.DefaultConfig()
	for _, r := range verdict.Results {
		if !r.Assumption.Status.Terminal() {
			t.Errorf("assumption %s ended non-terminal: %s", r.Assumption.ID, r.Assumption.Status)
		}
		if r.Assumption.RoundCount > cfg.Debate.MaxRounds {
			t.Errorf("assumption %s exceeded round cap: %d", r.Assumption.ID, r.Assumption.RoundCount)
		}
		if len(r.Rounds) == 0 {
			t.Errorf("assumption %s has no transcript", r.Assumption.ID)
		}
		if got, ok := verdict.PerAssumption[r.Assumption.ID]; !ok || got != r.Assumption.Status {
			t.Errorf("PerAssumption[%s] = %s, want %s", r.Assumption.ID, got, r.Assumption.Status)
		}
	}
}

func TestOrchestrator_RevisablePlanPasses(t *testing.T) {
	orch := newTestOrchestrator()

	plan := "We project rental income of ZMW 40,000 per month from our Lusaka property."
	verdict, err := orch.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if verdict.Overall != model.VerdictPass {
		t.Errorf("Overall = %s, want PASS", verdict.Overall)
	}
	if len(verdict.FatalFlawIDs) != 0 {
		t.Errorf("passing verdict carries fatal flaws: %v", verdict.FatalFlawIDs)
	}
	for _, r := range verdict.Results {
		if r.Assumption.Status != model.StatusSurvived {
			t.Errorf("assumption %s = %s, want SURVIVED", r.Assumption.ID, r.Assumption.Status)
		}
	}

	// At least one assumption should have been narrowed on the way through
	revised := false
	for _, r := range verdict.Results {
		if r.Assumption.RoundCount > 0 {
			revised = true
		}
	}
	if !revised {
		t.Error("expected at least one revision round for a plan citing moderate facts")
	}
}

func TestOrchestrator_DeterministicOutcome(t *testing.T) {
	// Two runs in fallback mode must agree on every semantic field; only the
	// run ID and timestamp differ.
	first, err := newTestOrchestrator().Run(context.Background(), copperPlan)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := newTestOrchestrator().Run(context.Background(), copperPlan)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.Overall != second.Overall {
		t.Errorf("Overall diverged: %s vs %s", first.Overall, second.Overall)
	}
	if !reflect.DeepEqual(first.PerAssumption, second.PerAssumption) {
		t.Errorf("PerAssumption diverged:\n%v\n%v", first.PerAssumption, second.PerAssumption)
	}
	if !reflect.DeepEqual(first.FatalFlawIDs, second.FatalFlawIDs) {
		t.Errorf("FatalFlawIDs diverged: %v vs %v", first.FatalFlawIDs, second.FatalFlawIDs)
	}
	if first.RationaleText != second.RationaleText {
		t.Errorf("RationaleText diverged:\n%q\n%q", first.RationaleText, second.RationaleText)
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	orch := newTestOrchestrator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict, err := orch.Run(ctx, copperPlan)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if verdict.Overall != model.VerdictConditionalPass {
		t.Errorf("Overall = %s, want CONDITIONAL_PASS for an interrupted run", verdict.Overall)
	}
	for _, r := range verdict.Results {
		if r.Assumption.Status != model.StatusCancelled {
			t.Errorf("assumption %s = %s, want CANCELLED", r.Assumption.ID, r.Assumption.Status)
		}
	}
}

func TestOrchestrator_GatewayOutage(t *testing.T) {
	// Remote endpoint is unreachable; every call degrades to the fallback and
	// the run still completes with a full verdict
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "ollama"
	cfg.LLM.BaseURL = server.URL
	cfg.LLM.RequestsPerSecond = 0
	cfg.Cache.Enabled = false

	gateway, err := llm.NewGateway(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	orch := NewOrchestrator(facts.NewBuiltinStore(), gateway, cfg.Debate)

	plan := "We project rental income of ZMW 40,000 per month from our Lusaka property."
	verdict, err := orch.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run failed during outage: %v", err)
	}

	if verdict.GatewayDegradations == 0 {
		t.Error("expected degradations with an unreachable provider")
	}
	if len(verdict.Results) != len(verdict.PerAssumption) {
		t.Errorf("incomplete verdict: %d results, %d statuses", len(verdict.Results), len(verdict.PerAssumption))
	}
	for _, r := range verdict.Results {
		if !r.Assumption.Status.Terminal() {
			t.Errorf("assumption %s ended non-terminal during outage: %s", r.Assumption.ID, r.Assumption.Status)
		}
	}
}

func TestOrchestrator_EmptyPlan(t *testing.T) {
	orch := newTestOrchestrator()

	if _, err := orch.Run(context.Background(), "   \n  "); !errors.Is(err, model.ErrEmptyPlan) {
		t.Errorf("expected ErrEmptyPlan, got %v", err)
	}
}
