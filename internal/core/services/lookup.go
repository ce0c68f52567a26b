package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
	"github.com/reaper-tools/readocs/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService resolves exact records from the three corpora.
//
// Case policy: JSFX names are short conventional identifiers where
// case is meaningful, so JSFX lookups are strict. ReaScript names
// follow an inconsistent upstream capitalization convention, so
// ReaScript (and ReaWrap class/method) lookups retry case-insensitively
// when the exact match misses.
type LookupService struct {
	store driven.CorpusStore
}

// NewLookupService creates a new lookup service.
func NewLookupService(store driven.CorpusStore) *LookupService {
	return &LookupService{store: store}
}

// JSFXFunction resolves a JSFX function by exact, case-sensitive name.
func (s *LookupService) JSFXFunction(ctx context.Context, name string) (*domain.JSFXFunction, error) {
	doc, err := s.store.JSFX(ctx)
	if err != nil {
		return nil, s.degrade("jsfx", err)
	}

	fn := resolveByName(doc.Functions, name, false, func(f *domain.JSFXFunction) string {
		return f.Name
	})
	if fn == nil {
		return nil, fmt.Errorf("jsfx function %q: %w", name, domain.ErrNotFound)
	}
	return fn, nil
}

// ReaScriptFunction resolves a ReaScript function by name, falling
// back to a case-insensitive match.
func (s *LookupService) ReaScriptFunction(ctx context.Context, name string) (*domain.ReaScriptFunction, error) {
	doc, err := s.store.ReaScript(ctx)
	if err != nil {
		return nil, s.degrade("reascript", err)
	}

	fn := resolveByName(doc.Functions, name, true, func(f *domain.ReaScriptFunction) string {
		return f.Name
	})
	if fn == nil {
		return nil, fmt.Errorf("reascript function %q: %w", name, domain.ErrNotFound)
	}
	return fn, nil
}

// ReaWrapMethod resolves a wrapper-API method by (class, method) pair.
// Both halves use the exact-then-case-insensitive policy; a class that
// fails to resolve short-circuits without attempting method
// resolution.
func (s *LookupService) ReaWrapMethod(ctx context.Context, class, method string) (*domain.ReaWrapMethod, error) {
	doc, err := s.store.ReaWrap(ctx)
	if err != nil {
		return nil, s.degrade("reawrap", err)
	}

	cls := resolveByName(doc.Classes, class, true, func(c *domain.ReaWrapClass) string {
		return c.Name
	})
	if cls == nil {
		return nil, fmt.Errorf("reawrap class %q: %w", class, domain.ErrNotFound)
	}

	m := resolveByName(cls.Methods, method, true, func(m *domain.ReaWrapMethod) string {
		return m.Name
	})
	if m == nil {
		return nil, fmt.Errorf("reawrap method %q.%q: %w", cls.Name, method, domain.ErrNotFound)
	}
	return m, nil
}

// degrade maps a missing corpus to not-found: absence of a backing
// file is an expected deployment state, not a query failure. Corrupt
// data stays a hard error.
func (s *LookupService) degrade(corpus string, err error) error {
	if errors.Is(err, domain.ErrDataUnavailable) {
		logger.Debug("Corpus %s unavailable, lookup degrades to not-found", corpus)
		return fmt.Errorf("%s: %w", corpus, domain.ErrNotFound)
	}
	return fmt.Errorf("load %s corpus: %w", corpus, err)
}
