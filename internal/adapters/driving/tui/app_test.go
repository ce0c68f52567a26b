package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaper-tools/readocs/internal/adapters/driven/storage/memory"
	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := memory.NewCorpusStore(
		&domain.JSFXDocument{
			Functions: []domain.JSFXFunction{
				{Name: "sin", Description: "Returns the sine of the angle"},
				{Name: "cos", Description: "Returns the cosine of the angle"},
			},
		},
		&domain.ReaScriptDocument{
			Functions: []domain.ReaScriptFunction{
				{Name: "GetTrackName", Description: "Gets the track name"},
			},
		},
		&domain.ReaWrapDocument{
			Classes: []domain.ReaWrapClass{
				{Name: "Track", Methods: []domain.ReaWrapMethod{
					{Name: "get_name", Class: "Track", Description: "Gets the track name"},
				}},
			},
		},
	)

	query := services.NewQueryService(
		services.NewLookupService(store),
		services.NewSearchService(store),
	)

	app, err := NewApp(&Ports{Query: query})
	require.NoError(t, err)
	app.WithContext(context.Background())
	app.SetDimensions(80, 24)
	return app
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewApp(t *testing.T) {
	t.Run("requires a query service", func(t *testing.T) {
		_, err := NewApp(&Ports{})
		assert.ErrorIs(t, err, ErrNoQueryService)
	})

	t.Run("nil ports fails validation", func(t *testing.T) {
		_, err := NewApp(nil)
		assert.ErrorIs(t, err, ErrNoQueryService)
	})

	t.Run("starts in input mode on jsfx", func(t *testing.T) {
		app := newTestApp(t)
		assert.True(t, app.InputFocused())
		assert.Equal(t, domain.CorpusJSFX, app.Corpus())
	})
}

func TestApp_TabCyclesCorpus(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(keyMsg(tea.KeyTab))
	app = model.(*App)
	assert.Equal(t, domain.CorpusReaScript, app.Corpus())

	model, _ = app.Update(keyMsg(tea.KeyTab))
	app = model.(*App)
	assert.Equal(t, domain.CorpusReaWrap, app.Corpus())

	model, _ = app.Update(keyMsg(tea.KeyTab))
	app = model.(*App)
	assert.Equal(t, domain.CorpusJSFX, app.Corpus())
}

func TestApp_SearchFlow(t *testing.T) {
	app := newTestApp(t)
	app.input.SetValue("angle")

	// Enter triggers the search command
	model, cmd := app.Update(keyMsg(tea.KeyEnter))
	app = model.(*App)
	require.NotNil(t, cmd)

	// Run the command and feed its message back
	msg := cmd()
	completed, ok := msg.(searchCompleted)
	require.True(t, ok)
	require.NoError(t, completed.err)

	model, _ = app.Update(msg)
	app = model.(*App)

	assert.Len(t, app.Records(), 2)
	assert.False(t, app.InputFocused())
	assert.Equal(t, 0, app.Selected())
}

func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t)
	app.records = []any{
		domain.JSFXFunction{Name: "sin"},
		domain.JSFXFunction{Name: "cos"},
	}
	app.focusInput = false

	model, _ := app.Update(keyMsg(tea.KeyDown))
	app = model.(*App)
	assert.Equal(t, 1, app.Selected())

	// Stays in bounds at the bottom
	model, _ = app.Update(keyMsg(tea.KeyDown))
	app = model.(*App)
	assert.Equal(t, 1, app.Selected())

	model, _ = app.Update(runeMsg('k'))
	app = model.(*App)
	assert.Equal(t, 0, app.Selected())

	// Stays in bounds at the top
	model, _ = app.Update(runeMsg('k'))
	app = model.(*App)
	assert.Equal(t, 0, app.Selected())
}

func TestApp_DetailToggle(t *testing.T) {
	app := newTestApp(t)
	app.records = []any{domain.JSFXFunction{Name: "sin", Description: "Sine"}}
	app.focusInput = false

	model, _ := app.Update(keyMsg(tea.KeyEnter))
	app = model.(*App)
	assert.True(t, app.showDetail)
	assert.Contains(t, app.View(), "sin")

	model, _ = app.Update(keyMsg(tea.KeyEsc))
	app = model.(*App)
	assert.False(t, app.showDetail)
}

func TestApp_EscReturnsToInput(t *testing.T) {
	app := newTestApp(t)
	app.focusInput = false

	model, _ := app.Update(keyMsg(tea.KeyEsc))
	app = model.(*App)
	assert.True(t, app.InputFocused())
}

func TestApp_SearchErrorIsShown(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(searchCompleted{err: domain.ErrDataCorrupt})
	app = model.(*App)

	require.Error(t, app.Err())
	assert.Contains(t, app.View(), "Error:")
}

func TestRecordSummary(t *testing.T) {
	name, detail := recordSummary(domain.JSFXFunction{Name: "sin", Description: "Sine"})
	assert.Equal(t, "sin", name)
	assert.Equal(t, "Sine", detail)

	name, _ = recordSummary(domain.MethodMatch{Class: "Track", Name: "get_name"})
	assert.Equal(t, "Track.get_name", name)
}

func TestDetailLines(t *testing.T) {
	lines := detailLines(domain.MethodMatch{
		Class: "Track",
		Name:  "get_name",
		Method: domain.ReaWrapMethod{
			Name:        "get_name",
			Class:       "Track",
			Signature:   "Track:get_name()",
			Description: "Gets the track name",
		},
	})

	require.NotEmpty(t, lines)
	assert.Equal(t, "Track.get_name", lines[0])
	assert.Contains(t, lines, "Signature: Track:get_name()")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "very lo...", truncate("very long string", 10))
	assert.Equal(t, "", truncate("anything", 2))
}
