package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a lookup found no matching record.
	// It is a normal outcome, never fatal; adapters report it inside
	// the response envelope rather than as a transport failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a required key is missing for the
	// requested operation/corpus combination, such as a reawrap
	// lookup without a class name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable indicates a corpus backing file is absent
	// from disk. Absence is an expected deployment state (the data
	// is regenerated offline), so operations degrade to empty
	// results or not-found instead of failing.
	ErrDataUnavailable = errors.New("corpus data unavailable")

	// ErrDataCorrupt indicates a corpus backing file is present but
	// failed to parse. This is fatal for that corpus for the rest of
	// the process lifetime and is surfaced distinctly from
	// ErrDataUnavailable for diagnostics.
	ErrDataCorrupt = errors.New("corpus data corrupt")
)
