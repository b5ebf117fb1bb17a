package model

// Critique is the Adversary's attack on one assumption in one round.
// CitedFactIDs is empty only when NoMatchingFact is set; a critique never
// fabricates a citation for a fact absent from the store.
type Critique struct {
	AssumptionID   string   `json:"assumption_id"`
	Round          int      `json:"round"`
	CitedFactIDs   []string `json:"cited_fact_ids"`
	ArgumentText   string   `json:"argument_text"`
	Confidence     float64  `json:"confidence"`
	NoMatchingFact bool     `json:"no_matching_fact,omitempty"`
}

// DefenseKind distinguishes the Proponent's two possible responses
type DefenseKind string

const (
	DefenseRebuttal DefenseKind = "REBUTTAL"
	DefenseRevision DefenseKind = "REVISION"
)

// Defense is the Proponent's response to a critique.
// RevisedText is present iff Kind is REVISION.
type Defense struct {
	AssumptionID string      `json:"assumption_id"`
	Round        int         `json:"round"`
	Kind         DefenseKind `json:"kind"`
	ArgumentText string      `json:"argument_text"`
	RevisedText  string      `json:"revised_text,omitempty"`
}

// DebateRound pairs a critique with its defense for one round.
// Defense is nil when the critique was dismissed before the Proponent spoke.
type DebateRound struct {
	Critique Critique `json:"critique"`
	Defense  *Defense `json:"defense,omitempty"`
}

// AssumptionResult is the full per-assumption debate outcome: the final
// assumption state plus the append-only round transcript.
type AssumptionResult struct {
	Assumption    Assumption    `json:"assumption"`
	Rounds        []DebateRound `json:"rounds"`
	Unresolved    bool          `json:"unresolved,omitempty"`
	KilledByError bool          `json:"killed_by_error,omitempty"`
	FatalFlawIDs  []string      `json:"fatal_flaw_ids,omitempty"`
}
