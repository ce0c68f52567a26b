// Package memory provides in-memory implementations of the driven
// storage ports, used by tests and by embedders that already hold
// parsed documents.
package memory

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
// A nil document reports domain.ErrDataUnavailable, mirroring a
// missing backing file; SetError forces an arbitrary load error for a
// corpus.
type CorpusStore struct {
	jsfx      *domain.JSFXDocument
	reaScript *domain.ReaScriptDocument
	reaWrap   *domain.ReaWrapDocument
	errs      map[domain.Corpus]error
}

// NewCorpusStore creates an in-memory corpus store holding the given
// documents. Any document may be nil.
func NewCorpusStore(
	jsfx *domain.JSFXDocument,
	reaScript *domain.ReaScriptDocument,
	reaWrap *domain.ReaWrapDocument,
) *CorpusStore {
	return &CorpusStore{
		jsfx:      jsfx,
		reaScript: reaScript,
		reaWrap:   reaWrap,
		errs:      make(map[domain.Corpus]error),
	}
}

// SetError forces load attempts for the corpus to fail with err.
func (s *CorpusStore) SetError(corpus domain.Corpus, err error) {
	s.errs[corpus] = err
}

// JSFX returns the JSFX corpus document.
func (s *CorpusStore) JSFX(_ context.Context) (*domain.JSFXDocument, error) {
	if err := s.errs[domain.CorpusJSFX]; err != nil {
		return nil, err
	}
	if s.jsfx == nil {
		return nil, domain.ErrDataUnavailable
	}
	return s.jsfx, nil
}

// ReaScript returns the ReaScript API corpus document.
func (s *CorpusStore) ReaScript(_ context.Context) (*domain.ReaScriptDocument, error) {
	if err := s.errs[domain.CorpusReaScript]; err != nil {
		return nil, err
	}
	if s.reaScript == nil {
		return nil, domain.ErrDataUnavailable
	}
	return s.reaScript, nil
}

// ReaWrap returns the ReaWrap wrapper-API corpus document.
func (s *CorpusStore) ReaWrap(_ context.Context) (*domain.ReaWrapDocument, error) {
	if err := s.errs[domain.CorpusReaWrap]; err != nil {
		return nil, err
	}
	if s.reaWrap == nil {
		return nil, domain.ErrDataUnavailable
	}
	return s.reaWrap, nil
}
