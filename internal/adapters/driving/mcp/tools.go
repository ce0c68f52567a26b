package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/logger"
)

// LookupInput is the input for the lookup tool.
type LookupInput struct {
	// API selects the corpus: jsfx, reascript or reawrap.
	API string `json:"api" jsonschema:"the API to look up in: jsfx, reascript or reawrap"`

	// Name is the function or method name to resolve.
	Name string `json:"name" jsonschema:"the exact function or method name"`

	// Class is the owning class name. Required for reawrap, ignored otherwise.
	Class string `json:"class,omitempty" jsonschema:"the owning class name (reawrap only)"`
}

// LookupOutput is the output of the lookup tool.
type LookupOutput struct {
	// Found reports whether the record exists.
	Found bool `json:"found"`

	// Record is the full record as stored in the corpus.
	Record json.RawMessage `json:"record,omitempty"`

	// Message explains a miss.
	Message string `json:"message,omitempty"`
}

// SearchInput is the input for the search tool.
type SearchInput struct {
	// API selects the corpus: jsfx, reascript or reawrap.
	API string `json:"api" jsonschema:"the API to search: jsfx, reascript or reawrap"`

	// Query is the substring to match, case-insensitively.
	Query string `json:"query" jsonschema:"substring to match against names and descriptions"`

	// Limit caps the number of results. Defaults to 10.
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of results (default 10)"`
}

// SearchOutput is the output of the search tool.
type SearchOutput struct {
	// Results holds the matched records in corpus order.
	Results []json.RawMessage `json:"results"`

	// Count is the number of results returned.
	Count int `json:"count"`
}

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup",
		Description: "Look up a single REAPER scripting function or method by exact name. Use api=jsfx for JSFX audio-scripting functions, api=reascript for the ReaScript API, api=reawrap for ReaWrap class methods (class is required).",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search a REAPER scripting reference corpus by case-insensitive substring. Matches names, descriptions and grouping fields; returns records in corpus order.",
	}, s.handleSearch)
}

// handleLookup resolves one record by name. A miss is an informational
// result, not a tool error.
func (s *Server) handleLookup(ctx context.Context, _ *mcp.CallToolRequest, input LookupInput) (*mcp.CallToolResult, LookupOutput, error) {
	logger.Debug("mcp: lookup api=%s name=%s class=%s", input.API, input.Name, input.Class)

	res, err := s.ports.Query.Query(ctx, domain.QueryRequest{
		Corpus:    domain.Corpus(input.API),
		Operation: domain.OpLookup,
		Name:      input.Name,
		Class:     input.Class,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, LookupOutput{
				Found:   false,
				Message: err.Error(),
			}, nil
		}
		return nil, LookupOutput{}, fmt.Errorf("lookup failed: %w", err)
	}

	record, err := json.Marshal(res.Record)
	if err != nil {
		return nil, LookupOutput{}, fmt.Errorf("encoding record: %w", err)
	}

	return nil, LookupOutput{
		Found:  true,
		Record: record,
	}, nil
}

// handleSearch runs a substring search over one corpus.
func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	logger.Debug("mcp: search api=%s query=%q limit=%d", input.API, input.Query, input.Limit)

	res, err := s.ports.Query.Query(ctx, domain.QueryRequest{
		Corpus:    domain.Corpus(input.API),
		Operation: domain.OpSearch,
		Query:     input.Query,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("search failed: %w", err)
	}

	results := make([]json.RawMessage, 0, len(res.Records))
	for _, rec := range res.Records {
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("encoding result: %w", err)
		}
		results = append(results, data)
	}

	return nil, SearchOutput{
		Results: results,
		Count:   len(results),
	}, nil
}
