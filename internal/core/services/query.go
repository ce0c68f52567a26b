package services

import (
	"context"
	"fmt"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
	"github.com/reaper-tools/readocs/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService is the query router: the single entry point translating
// a generic (corpus, operation, args) request into the right lookup or
// search call and a uniform response envelope. The three corpora share
// no record shape, only this outer contract, so dispatch is a plain
// switch on the corpus tag.
type QueryService struct {
	lookup driving.LookupService
	search driving.SearchService
}

// NewQueryService creates a new query router.
func NewQueryService(lookup driving.LookupService, search driving.SearchService) *QueryService {
	return &QueryService{lookup: lookup, search: search}
}

// Query executes one lookup or search request.
func (s *QueryService) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	logger.Section("Query")
	logger.Debug("Corpus=%s operation=%s", req.Corpus, req.Operation)

	if !req.Corpus.Valid() {
		return nil, fmt.Errorf("unknown corpus %q: %w", req.Corpus, domain.ErrInvalidInput)
	}

	switch req.Operation {
	case domain.OpLookup:
		return s.routeLookup(ctx, req)
	case domain.OpSearch:
		return s.routeSearch(ctx, req)
	default:
		return nil, fmt.Errorf("unknown operation %q: %w", req.Operation, domain.ErrInvalidInput)
	}
}

// routeLookup dispatches a lookup to the corpus-specific path. Only
// the reawrap path takes the compound (class, method) key; requesting
// it without a class is a caller-input error, distinct from not-found.
func (s *QueryService) routeLookup(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("lookup requires a name: %w", domain.ErrInvalidInput)
	}

	switch req.Corpus {
	case domain.CorpusJSFX:
		fn, err := s.lookup.JSFXFunction(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		return &domain.QueryResult{Record: fn}, nil

	case domain.CorpusReaScript:
		fn, err := s.lookup.ReaScriptFunction(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		return &domain.QueryResult{Record: fn}, nil

	case domain.CorpusReaWrap:
		if req.Class == "" {
			return nil, fmt.Errorf("reawrap lookup requires a class: %w", domain.ErrInvalidInput)
		}
		m, err := s.lookup.ReaWrapMethod(ctx, req.Class, req.Name)
		if err != nil {
			return nil, err
		}
		return &domain.QueryResult{Record: m}, nil

	default:
		return nil, fmt.Errorf("unknown corpus %q: %w", req.Corpus, domain.ErrInvalidInput)
	}
}

// routeSearch dispatches a search to the corpus-specific path. The
// result cap applies uniformly regardless of corpus.
func (s *QueryService) routeSearch(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	switch req.Corpus {
	case domain.CorpusJSFX:
		fns, err := s.search.JSFX(ctx, req.Query, req.Limit)
		if err != nil {
			return nil, err
		}
		records := make([]any, len(fns))
		for i := range fns {
			records[i] = fns[i]
		}
		return &domain.QueryResult{Records: records}, nil

	case domain.CorpusReaScript:
		fns, err := s.search.ReaScript(ctx, req.Query, req.Limit)
		if err != nil {
			return nil, err
		}
		records := make([]any, len(fns))
		for i := range fns {
			records[i] = fns[i]
		}
		return &domain.QueryResult{Records: records}, nil

	case domain.CorpusReaWrap:
		matches, err := s.search.ReaWrap(ctx, req.Query, req.Limit)
		if err != nil {
			return nil, err
		}
		records := make([]any, len(matches))
		for i := range matches {
			records[i] = matches[i]
		}
		return &domain.QueryResult{Records: records}, nil

	default:
		return nil, fmt.Errorf("unknown corpus %q: %w", req.Corpus, domain.ErrInvalidInput)
	}
}
