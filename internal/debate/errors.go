package debate

import "errors"

var (
	// ErrUngroundedCritique means the reasoning gateway returned a critique
	// citing no fact id while candidate facts were available. Recoverable:
	// the caller retries once against the deterministic fallback.
	ErrUngroundedCritique = errors.New("ungrounded critique: no fact cited despite available candidates")

	// ErrInvariant marks a per-assumption invariant violation (e.g. the
	// round loop exhausted without reaching a terminal status). Fatal for
	// the affected assumption only; it is recorded as killed-by-error and
	// the run continues.
	ErrInvariant = errors.New("debate invariant violation")
)
