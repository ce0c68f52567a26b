package driven

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

// CorpusStore provides the parsed in-memory corpus documents.
//
// Implementations load each document at most once per process lifetime
// and cache the parsed value; the backing files are immutable while the
// process runs, so there is no invalidation or refresh path.
//
// Error contract:
//   - domain.ErrDataUnavailable when the backing file does not exist
//   - domain.ErrDataCorrupt when the file exists but fails to parse;
//     the failure is cached and repeated on every subsequent call
type CorpusStore interface {
	// JSFX returns the JSFX corpus document.
	JSFX(ctx context.Context) (*domain.JSFXDocument, error)

	// ReaScript returns the ReaScript API corpus document.
	ReaScript(ctx context.Context) (*domain.ReaScriptDocument, error)

	// ReaWrap returns the ReaWrap wrapper-API corpus document.
	ReaWrap(ctx context.Context) (*domain.ReaWrapDocument, error)
}
