package tui

import (
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
)

// Ports aggregates the services the TUI depends on.
type Ports struct {
	// Query routes lookup and search requests to the corpora.
	Query driving.QueryService

	// Reference serves the fixed reference documents.
	Reference driving.ReferenceService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrNoQueryService
	}
	return nil
}
