package driven

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

// ReferenceStore serves the fixed set of human-readable reference
// documents. Documents are returned byte-for-byte with no processing.
type ReferenceStore interface {
	// List returns the available documents in display order.
	List(ctx context.Context) ([]domain.ReferenceDoc, error)

	// Read returns the verbatim contents of the document with the
	// given identifier. Returns domain.ErrNotFound for an unknown
	// identifier and domain.ErrDataUnavailable when the backing file
	// is missing.
	Read(ctx context.Context, id string) ([]byte, error)
}
