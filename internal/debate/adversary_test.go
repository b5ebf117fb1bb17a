package debate

import (
	"context"
	"testing"

	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
)

func copperCandidates(t *testing.T) []match.Match {
	t.Helper()
	matcher := match.NewMatcher(facts.NewBuiltinStore())
	candidates := matcher.Match("We will export raw copper concentrate duty-free", model.CategoryMining, 5)
	if len(candidates) == 0 {
		t.Fatal("expected candidate facts for copper export assumption")
	}
	return candidates
}

func TestAdversary_Attack(t *testing.T) {
	adversary := NewAdversary(llm.NewFallbackGateway())
	assumption := model.Assumption{ID: "A1", Text: "We will export raw copper concentrate duty-free"}
	candidates := copperCandidates(t)

	critique, err := adversary.Attack(context.Background(), assumption, candidates)
	if err != nil {
		t.Fatalf("Attack failed: %v", err)
	}

	if critique.AssumptionID != "A1" {
		t.Errorf("AssumptionID = %s", critique.AssumptionID)
	}
	if len(critique.CitedFactIDs) == 0 {
		t.Fatal("expected citations with candidates available")
	}

	allowed := make(map[string]bool)
	for _, c := range candidates {
		allowed[c.Fact.ID] = true
	}
	for _, id := range critique.CitedFactIDs {
		if !allowed[id] {
			t.Errorf("cited fact %s not among candidates", id)
		}
	}

	if critique.CitedFactIDs[0] != "MINING-002" {
		t.Errorf("top citation = %s, want MINING-002", critique.CitedFactIDs[0])
	}
	if critique.Confidence < 0.55 {
		t.Errorf("severe citation confidence = %v, expected above kill threshold", critique.Confidence)
	}
	if critique.NoMatchingFact {
		t.Error("NoMatchingFact must be false when candidates exist")
	}
}

func TestAdversary_NoCandidates(t *testing.T) {
	adversary := NewAdversary(llm.NewFallbackGateway())

	critique, err := adversary.Attack(context.Background(), model.Assumption{ID: "A1", Text: "x"}, nil)
	if err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	if !critique.NoMatchingFact {
		t.Error("expected NoMatchingFact with empty candidate set")
	}
	if len(critique.CitedFactIDs) != 0 {
		t.Errorf("expected no citations, got %v", critique.CitedFactIDs)
	}
}

func TestAdversary_FabricatedCitationsRetried(t *testing.T) {
	// Remote cites a fact that is not among the candidates; the attack is
	// retried against the deterministic provider, which only cites prompt
	// facts
	gateway := gatewayReturning(t, "CITES: FAKE-999\nCONFIDENCE: 0.99\nARGUMENT: invented")
	adversary := NewAdversary(gateway)
	candidates := copperCandidates(t)

	critique, err := adversary.Attack(context.Background(), model.Assumption{ID: "A1", Text: "x"}, candidates)
	if err != nil {
		t.Fatalf("Attack failed after retry: %v", err)
	}

	allowed := make(map[string]bool)
	for _, c := range candidates {
		allowed[c.Fact.ID] = true
	}
	if len(critique.CitedFactIDs) == 0 {
		t.Fatal("retried critique must cite candidate facts")
	}
	for _, id := range critique.CitedFactIDs {
		if !allowed[id] {
			t.Errorf("retried critique cites unknown fact %s", id)
		}
	}
}

func TestProponent_Defend(t *testing.T) {
	proponent := NewProponent(llm.NewFallbackGateway())
	store := facts.NewBuiltinStore()

	severeFact, _ := store.ByID("MINING-002")
	moderateFact, _ := store.ByID("ENERGY-002")

	assumption := model.Assumption{ID: "A1", Text: "Fuel costs stay fixed"}

	// Severe citation concedes through a rebuttal the judge will reject
	defense := proponent.Defend(context.Background(), assumption,
		model.Critique{AssumptionID: "A1", CitedFactIDs: []string{"MINING-002"}, ArgumentText: "duty applies"},
		[]model.Fact{severeFact})
	if defense.Kind != model.DefenseRebuttal {
		t.Errorf("severe defense kind = %s, want REBUTTAL", defense.Kind)
	}

	// Moderate citation narrows the assumption
	defense = proponent.Defend(context.Background(), assumption,
		model.Critique{AssumptionID: "A1", CitedFactIDs: []string{"ENERGY-002"}, ArgumentText: "volatility"},
		[]model.Fact{moderateFact})
	if defense.Kind != model.DefenseRevision {
		t.Fatalf("moderate defense kind = %s, want REVISION", defense.Kind)
	}
	if defense.RevisedText == "" || defense.RevisedText == assumption.Text {
		t.Errorf("revision must change the assumption text, got %q", defense.RevisedText)
	}
}

func TestProponent_MalformedRemoteFallsBack(t *testing.T) {
	gateway := gatewayReturning(t, "KIND: SURRENDER\nno usable fields here")
	proponent := NewProponent(gateway)
	store := facts.NewBuiltinStore()
	moderateFact, _ := store.ByID("ENERGY-002")

	defense := proponent.Defend(context.Background(),
		model.Assumption{ID: "A1", Text: "Fuel costs stay fixed"},
		model.Critique{AssumptionID: "A1", CitedFactIDs: []string{"ENERGY-002"}},
		[]model.Fact{moderateFact})

	if defense.Kind != model.DefenseRebuttal && defense.Kind != model.DefenseRevision {
		t.Errorf("fallback defense has invalid kind %q", defense.Kind)
	}
	if defense.ArgumentText == "" {
		t.Error("fallback defense must carry an argument")
	}
}
