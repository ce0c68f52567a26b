package domain

// Operation selects which query engine a request is routed to.
type Operation string

const (
	// OpLookup is an exact point lookup returning at most one record.
	OpLookup Operation = "lookup"

	// OpSearch is a substring search returning an ordered record list.
	OpSearch Operation = "search"
)

// DefaultSearchLimit is the result cap applied when a search request
// does not supply one.
const DefaultSearchLimit = 10

// QueryRequest is the generic inbound query contract: a corpus tag, an
// operation, and the operation's arguments. Class is required only for
// a reawrap lookup.
type QueryRequest struct {
	// Corpus is the target corpus tag.
	Corpus Corpus

	// Operation is lookup or search.
	Operation Operation

	// Name is the record name for a lookup.
	Name string

	// Class is the owning class name for a reawrap lookup.
	Class string

	// Query is the substring for a search.
	Query string

	// Limit caps search results. Zero means DefaultSearchLimit.
	Limit int
}

// QueryResult is the uniform response envelope produced by the query
// router: exactly one of Record (lookup hit) or Records (search hits)
// is populated. Failures travel on the error channel as domain
// sentinel errors, never mixed into the envelope.
type QueryResult struct {
	// Record is the single matched record for a lookup.
	Record any

	// Records is the ordered result list for a search. Non-nil for
	// every successful search, including empty results.
	Records []any
}
