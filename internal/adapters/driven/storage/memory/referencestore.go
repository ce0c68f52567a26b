package memory

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
)

// Ensure ReferenceStore implements the interface.
var _ driven.ReferenceStore = (*ReferenceStore)(nil)

// ReferenceStore is an in-memory implementation of
// driven.ReferenceStore.
type ReferenceStore struct {
	docs     []domain.ReferenceDoc
	contents map[string][]byte
}

// NewReferenceStore creates an empty in-memory reference store.
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{contents: make(map[string][]byte)}
}

// Add registers a document and its contents.
func (s *ReferenceStore) Add(doc domain.ReferenceDoc, contents []byte) {
	s.docs = append(s.docs, doc)
	s.contents[doc.ID] = contents
}

// List returns the registered documents in insertion order.
func (s *ReferenceStore) List(_ context.Context) ([]domain.ReferenceDoc, error) {
	docs := make([]domain.ReferenceDoc, len(s.docs))
	copy(docs, s.docs)
	return docs, nil
}

// Read returns the contents of one registered document.
func (s *ReferenceStore) Read(_ context.Context, id string) ([]byte, error) {
	data, ok := s.contents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}
