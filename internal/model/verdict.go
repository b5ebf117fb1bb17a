package model

import "time"

// OverallVerdict is the plan-level outcome of a debate run
type OverallVerdict string

const (
	VerdictPass            OverallVerdict = "PASS"
	VerdictConditionalPass OverallVerdict = "CONDITIONAL_PASS"
	VerdictFail            OverallVerdict = "FAIL"
)

// Verdict is the terminal, immutable result of a full stress-test run.
// Overall is a pure function of the final per-assumption statuses and the
// severities of the facts that killed them.
type Verdict struct {
	RunID         string                      `json:"run_id"`
	CreatedAt     time.Time                   `json:"created_at"`
	PerAssumption map[string]AssumptionStatus `json:"per_assumption"`
	Overall       OverallVerdict              `json:"overall"`
	RationaleText string                      `json:"rationale_text"`
	FatalFlawIDs  []string                    `json:"fatal_flaw_ids"`

	// Full transcript, ordered as extracted
	Results []AssumptionResult `json:"results"`

	// GatewayDegradations counts reasoning-gateway calls that fell back to
	// the deterministic generator during this run
	GatewayDegradations int `json:"gateway_degradations,omitempty"`
}
