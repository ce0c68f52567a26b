package services

import (
	"context"
	"fmt"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
	"github.com/reaper-tools/readocs/internal/logger"
)

// Ensure ReferenceService implements the interface.
var _ driving.ReferenceService = (*ReferenceService)(nil)

// ReferenceService serves the fixed set of human-readable reference
// documents. Documents pass through byte-for-byte; the service adds no
// processing beyond logging.
type ReferenceService struct {
	store driven.ReferenceStore
}

// NewReferenceService creates a new reference document service.
func NewReferenceService(store driven.ReferenceStore) *ReferenceService {
	return &ReferenceService{store: store}
}

// List returns the available documents in display order.
func (s *ReferenceService) List(ctx context.Context) ([]domain.ReferenceDoc, error) {
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reference documents: %w", err)
	}
	return docs, nil
}

// Read returns the verbatim contents of one document.
func (s *ReferenceService) Read(ctx context.Context, id string) ([]byte, error) {
	logger.Debug("Read reference document %q", id)

	data, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read reference document %q: %w", id, err)
	}
	return data, nil
}
