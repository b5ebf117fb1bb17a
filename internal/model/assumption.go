package model

// AssumptionStatus tracks an assumption through the debate state machine
type AssumptionStatus string

const (
	StatusPending     AssumptionStatus = "PENDING"
	StatusUnderAttack AssumptionStatus = "UNDER_ATTACK"
	StatusSurvived    AssumptionStatus = "SURVIVED"
	StatusRevised     AssumptionStatus = "REVISED"
	StatusKilled      AssumptionStatus = "KILLED"
	StatusCancelled   AssumptionStatus = "CANCELLED"
)

// Terminal reports whether the status ends the debate for an assumption
func (s AssumptionStatus) Terminal() bool {
	switch s {
	case StatusSurvived, StatusRevised, StatusKilled, StatusCancelled:
		return true
	}
	return false
}

// Assumption is a single falsifiable claim extracted from a business plan.
// Text is replaced only by a revision, which increments RoundCount and keeps
// the same ID.
type Assumption struct {
	ID           string           `json:"id"`
	Text         string           `json:"text"`
	CategoryHint Category         `json:"category_hint,omitempty"`
	Status       AssumptionStatus `json:"status"`
	RoundCount   int              `json:"round_count"`
}
