package cli

import (
	"context"

	"github.com/reaper-tools/readocs/internal/adapters/driven/storage/memory"
	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/services"
)

// setupTestServices wires the commands to in-memory stores and returns
// a cleanup func restoring the previous wiring.
func setupTestServices() func() {
	oldQuery := queryService
	oldReference := referenceService
	oldCorpus := corpusStore

	store := memory.NewCorpusStore(
		&domain.JSFXDocument{
			Functions: []domain.JSFXFunction{
				{Name: "sin", Category: "math", Description: "Returns the sine of the angle", Signature: "sin(angle)"},
				{Name: "cos", Category: "math", Description: "Returns the cosine of the angle", Signature: "cos(angle)"},
				{Name: "spl", Category: "audio", Description: "Sample access"},
			},
		},
		&domain.ReaScriptDocument{
			Functions: []domain.ReaScriptFunction{
				{
					Name:        "TrackFX_GetParam",
					Description: "Gets an FX parameter value",
					AvailableIn: []string{"c", "eel2", "lua", "python"},
				},
				{Name: "GetTrackName", Namespace: "reaper", Description: "Gets the track name"},
			},
		},
		&domain.ReaWrapDocument{
			Classes: []domain.ReaWrapClass{
				{
					Name: "Track",
					Methods: []domain.ReaWrapMethod{
						{Name: "add_fx_by_name", Class: "Track", Description: "Adds an FX to the track"},
						{Name: "get_name", Class: "Track", Description: "Gets the track name"},
					},
				},
			},
		},
	)

	refStore := memory.NewReferenceStore()
	refStore.Add(
		domain.ReferenceDoc{ID: "getting-started", Title: "Getting Started", Description: "First steps"},
		[]byte("# Getting Started\n\nInstall readocs.\n"),
	)

	queryService = services.NewQueryService(
		services.NewLookupService(store),
		services.NewSearchService(store),
	)
	referenceService = services.NewReferenceService(refStore)
	corpusStore = store

	return func() {
		queryService = oldQuery
		referenceService = oldReference
		corpusStore = oldCorpus
	}
}

// mockQueryServiceError always fails with the given error.
type mockQueryServiceError struct {
	err error
}

func (m *mockQueryServiceError) Query(_ context.Context, _ domain.QueryRequest) (*domain.QueryResult, error) {
	return nil, m.err
}
