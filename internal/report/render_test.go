package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lusakalabs/crucible/internal/model"
)

func sampleVerdict() *model.Verdict {
	defense := &model.Defense{
		AssumptionID: "A1",
		Kind:         model.DefenseRebuttal,
		ArgumentText: "The duty is binding.",
	}
	return &model.Verdict{
		RunID:         "run-123",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PerAssumption: map[string]model.AssumptionStatus{"A1": model.StatusKilled},
		Overall:       model.VerdictFail,
		RationaleText: "The plan fails the stress test.",
		FatalFlawIDs:  []string{"MINING-002"},
		Results: []model.AssumptionResult{
			{
				Assumption: model.Assumption{
					ID:     "A1",
					Text:   "We will export concentrate duty-free | tax-free",
					Status: model.StatusKilled,
				},
				Rounds: []model.DebateRound{
					{
						Critique: model.Critique{
							AssumptionID: "A1",
							CitedFactIDs: []string{"MINING-002"},
							ArgumentText: "Export duty applies.",
							Confidence:   0.9,
						},
						Defense: defense,
					},
				},
				FatalFlawIDs: []string{"MINING-002"},
			},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "verdict.json")

	if err := NewRenderer(true).RenderJSON(sampleVerdict(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, field := range []string{"run_id", "created_at", "per_assumption", "overall", "rationale_text", "fatal_flaw_ids", "results"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("JSON output missing field %q", field)
		}
	}
	if decoded["overall"] != "FAIL" {
		t.Errorf("overall = %v, want FAIL", decoded["overall"])
	}
}

func TestMarkdown(t *testing.T) {
	md := NewRenderer(true).Markdown(sampleVerdict())

	for _, want := range []string{
		"# Business Plan Stress Test",
		"**Verdict: FAIL**",
		"run-123",
		"## Fatal Flaws",
		"`MINING-002`",
		"## Debate Transcript",
		"Adversary (confidence 0.90, cites MINING-002)",
		"Proponent (REBUTTAL)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}

	// Pipes in the assumption text must not break the table
	if !strings.Contains(md, `duty-free \| tax-free`) {
		t.Error("table cell not escaped")
	}
}

func TestMarkdown_FooterToggle(t *testing.T) {
	v := sampleVerdict()

	if !strings.Contains(NewRenderer(true).Markdown(v), "Generated by Crucible") {
		t.Error("expected footer when enabled")
	}
	if strings.Contains(NewRenderer(false).Markdown(v), "Generated by Crucible") {
		t.Error("unexpected footer when disabled")
	}
}

func TestRenderMarkdown_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	if err := NewRenderer(false).RenderMarkdown(sampleVerdict(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "**Verdict: FAIL**") {
		t.Error("written report missing verdict header")
	}
}
