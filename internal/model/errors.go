package model

import "errors"

// Input errors: user-caused, reported, never retried.
var (
	// ErrEmptyPlan is returned when the plan text is empty or whitespace-only
	ErrEmptyPlan = errors.New("empty plan: no text to extract assumptions from")

	// ErrUnknownCategory is returned for a category outside the fixed enumeration
	ErrUnknownCategory = errors.New("unknown category")
)
