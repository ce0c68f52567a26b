// Package tui implements the interactive terminal UI for readocs.
package tui

import "errors"

// ErrNoQueryService is returned when the TUI is started without a
// query service.
var ErrNoQueryService = errors.New("tui: query service is required")
