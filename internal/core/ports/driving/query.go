package driving

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

// QueryService is the single entry point for corpus queries. It routes
// a generic (corpus, operation, args) request to the right lookup or
// search path and normalizes the output shape.
//
// Expected failures are domain sentinel errors: domain.ErrNotFound for
// a missed lookup, domain.ErrInvalidInput for a malformed request.
// Both are normal outcomes that callers fold into their response
// envelope; only domain.ErrDataCorrupt is an operator-visible fault.
type QueryService interface {
	// Query executes one lookup or search request.
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error)
}

// LookupService resolves exact records from the corpora.
type LookupService interface {
	// JSFXFunction resolves a JSFX function by exact, case-sensitive
	// name.
	JSFXFunction(ctx context.Context, name string) (*domain.JSFXFunction, error)

	// ReaScriptFunction resolves a ReaScript function by name, with
	// case-insensitive fallback.
	ReaScriptFunction(ctx context.Context, name string) (*domain.ReaScriptFunction, error)

	// ReaWrapMethod resolves a wrapper-API method by (class, method)
	// pair, each with case-insensitive fallback. Class resolution
	// failure short-circuits with domain.ErrNotFound.
	ReaWrapMethod(ctx context.Context, class, method string) (*domain.ReaWrapMethod, error)
}

// SearchService runs case-insensitive substring searches over the
// corpora. Results keep the collection's storage order and are capped
// after filtering; limit <= 0 selects domain.DefaultSearchLimit.
type SearchService interface {
	// JSFX searches JSFX functions by name, description and category.
	JSFX(ctx context.Context, query string, limit int) ([]domain.JSFXFunction, error)

	// ReaScript searches ReaScript functions by name, description and
	// namespace.
	ReaScript(ctx context.Context, query string, limit int) ([]domain.ReaScriptFunction, error)

	// ReaWrap searches wrapper-API methods, flattening the class
	// hierarchy; a method matches on its own name/description or on
	// its owning class's name.
	ReaWrap(ctx context.Context, query string, limit int) ([]domain.MethodMatch, error)
}
