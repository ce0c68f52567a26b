package mcp

import (
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query routes lookup and search requests to the corpora.
	Query driving.QueryService

	// Reference serves the fixed reference documents.
	Reference driving.ReferenceService

	// Corpus backs the corpora status resource.
	Corpus driven.CorpusStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	// Reference and Corpus are optional; the resources degrade.
	return nil
}
