package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
	"github.com/reaper-tools/readocs/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs case-insensitive substring searches over the
// corpora. Matching is pure containment: no tokenization, no fuzzy
// matching, no relevance ranking. Results keep the collection's
// storage order and the cap applies after filtering, so the first N
// results always equal the uncapped ordering's first N. The empty
// query matches every record.
type SearchService struct {
	store driven.CorpusStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.CorpusStore) *SearchService {
	return &SearchService{store: store}
}

// JSFX searches JSFX functions by name, description and category.
func (s *SearchService) JSFX(ctx context.Context, query string, limit int) ([]domain.JSFXFunction, error) {
	logger.Debug("Search jsfx: query=%q limit=%d", query, limit)

	doc, err := s.store.JSFX(ctx)
	if err != nil {
		return s.degradeJSFX(err)
	}

	q := strings.ToLower(query)
	limit = normalizeLimit(limit)

	results := make([]domain.JSFXFunction, 0, limit)
	for i := range doc.Functions {
		f := &doc.Functions[i]
		if containsFold(f.Name, q) || containsFold(f.Description, q) || containsFold(f.Category, q) {
			results = append(results, *f)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// ReaScript searches ReaScript functions by name, description and
// namespace. Each field is individually null-safe: an absent field
// never matches and never errors.
func (s *SearchService) ReaScript(ctx context.Context, query string, limit int) ([]domain.ReaScriptFunction, error) {
	logger.Debug("Search reascript: query=%q limit=%d", query, limit)

	doc, err := s.store.ReaScript(ctx)
	if err != nil {
		return s.degradeReaScript(err)
	}

	q := strings.ToLower(query)
	limit = normalizeLimit(limit)

	results := make([]domain.ReaScriptFunction, 0, limit)
	for i := range doc.Functions {
		f := &doc.Functions[i]
		if containsFold(f.Name, q) || containsFold(f.Description, q) || containsFold(f.Namespace, q) {
			results = append(results, *f)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// ReaWrap searches wrapper-API methods, flattening the class→method
// hierarchy into a single result stream. A method matches when its own
// name or description contains the query, or when its owning class's
// name does; every result carries the class name so the hierarchy is
// recoverable from the flat list.
func (s *SearchService) ReaWrap(ctx context.Context, query string, limit int) ([]domain.MethodMatch, error) {
	logger.Debug("Search reawrap: query=%q limit=%d", query, limit)

	doc, err := s.store.ReaWrap(ctx)
	if err != nil {
		return s.degradeReaWrap(err)
	}

	q := strings.ToLower(query)
	limit = normalizeLimit(limit)

	results := make([]domain.MethodMatch, 0, limit)
	for i := range doc.Classes {
		cls := &doc.Classes[i]
		classMatches := containsFold(cls.Name, q)
		for j := range cls.Methods {
			m := &cls.Methods[j]
			if classMatches || containsFold(m.Name, q) || containsFold(m.Description, q) {
				results = append(results, domain.MethodMatch{
					Class:  cls.Name,
					Name:   m.Name,
					Method: *m,
				})
				if len(results) == limit {
					return results, nil
				}
			}
		}
	}
	return results, nil
}

// normalizeLimit applies the default result cap.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultSearchLimit
	}
	return limit
}

// Missing corpus files degrade to empty results; corruption stays a
// hard error.

func (s *SearchService) degradeJSFX(err error) ([]domain.JSFXFunction, error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		logger.Debug("Corpus jsfx unavailable, search degrades to empty results")
		return []domain.JSFXFunction{}, nil
	}
	return nil, fmt.Errorf("load jsfx corpus: %w", err)
}

func (s *SearchService) degradeReaScript(err error) ([]domain.ReaScriptFunction, error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		logger.Debug("Corpus reascript unavailable, search degrades to empty results")
		return []domain.ReaScriptFunction{}, nil
	}
	return nil, fmt.Errorf("load reascript corpus: %w", err)
}

func (s *SearchService) degradeReaWrap(err error) ([]domain.MethodMatch, error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		logger.Debug("Corpus reawrap unavailable, search degrades to empty results")
		return []domain.MethodMatch{}, nil
	}
	return nil, fmt.Errorf("load reawrap corpus: %w", err)
}
