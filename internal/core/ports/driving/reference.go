package driving

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

// ReferenceService exposes the fixed reference documents to external
// actors.
type ReferenceService interface {
	// List returns the available documents in display order.
	List(ctx context.Context) ([]domain.ReferenceDoc, error)

	// Read returns the verbatim contents of one document.
	Read(ctx context.Context, id string) ([]byte, error)
}
