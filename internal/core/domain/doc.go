// Package domain defines the core business entities for readocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Corpus: A tag naming one of the three reference corpora
//   - JSFXFunction / ReaScriptFunction / ReaWrapClass: Corpus records
//   - QueryRequest / QueryResult: The generic query envelope
//   - ReferenceDoc: A named human-readable reference document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
