package services

import (
	"github.com/reaper-tools/readocs/internal/adapters/driven/storage/memory"
	"github.com/reaper-tools/readocs/internal/core/domain"
)

// testStore builds an in-memory corpus store with a small slice of
// each corpus, shaped like the real scraped documents.
func testStore() *memory.CorpusStore {
	jsfx := &domain.JSFXDocument{
		ScrapedAt: "2024-11-02T10:00:00",
		Functions: []domain.JSFXFunction{
			{Name: "sin", Category: "math", Description: "Returns the sine of the angle", Signature: "sin(angle)"},
			{Name: "cos", Category: "math", Description: "Returns the cosine of the angle", Signature: "cos(angle)"},
			{Name: "spl", Category: "audio", Description: "Accesses an audio sample slot", Signature: "spl(index)"},
			{Name: "gfx_line", Category: "graphics", Description: "Draws a line", Signature: "gfx_line(x,y,x2,y2)"},
		},
	}

	lua := "number"
	reaScript := &domain.ReaScriptDocument{
		ScrapedAt: "2024-11-02T10:05:00",
		Functions: []domain.ReaScriptFunction{
			{
				Name:        "TrackFX_GetParam",
				Description: "Gets an FX parameter value",
				AvailableIn: []string{"c", "eel2", "lua", "python"},
				Signatures: map[string]domain.ReaScriptSignature{
					"lua": {ReturnType: &lua, Name: "TrackFX_GetParam"},
				},
				Returns: []domain.ReturnValue{{Type: "number", Description: "parameter value"}},
			},
			{
				Name:        "TrackFX_SetParam",
				Description: "Sets an FX parameter value",
				AvailableIn: []string{"c", "lua"},
			},
			{
				Name:        "GetTrackName",
				Namespace:   "reaper",
				Description: "Returns the track name",
			},
		},
	}

	reaWrap := &domain.ReaWrapDocument{
		ScrapedAt: "2024-11-02T10:10:00",
		Classes: []domain.ReaWrapClass{
			{
				Name:        "Track",
				Description: "A REAPER track",
				Methods: []domain.ReaWrapMethod{
					{Name: "add_fx_by_name", Class: "Track", Description: "Adds an FX to the track", Signature: "Track:add_fx_by_name(name)"},
					{Name: "get_name", Class: "Track", Description: "Returns the track name", Signature: "Track:get_name()"},
				},
			},
			{
				Name:        "Project",
				Description: "The active project",
				Methods: []domain.ReaWrapMethod{
					{Name: "create_track", Class: "Project", Description: "Creates a new track", Signature: "Project:create_track(index)"},
					{Name: "save", Class: "Project", Description: "Saves the project", Signature: "Project:save()"},
				},
			},
		},
	}

	return memory.NewCorpusStore(jsfx, reaScript, reaWrap)
}
