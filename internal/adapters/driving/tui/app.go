package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reaper-tools/readocs/internal/adapters/driving/tui/styles"
	"github.com/reaper-tools/readocs/internal/core/domain"
)

// tuiSearchLimit caps TUI searches; the list is scrollable so it is
// larger than the CLI default.
const tuiSearchLimit = 50

// searchCompleted carries the outcome of an asynchronous search.
type searchCompleted struct {
	records []any
	err     error
}

// App is the root bubbletea model for the readocs TUI.
type App struct {
	ports  *Ports
	styles *styles.Styles
	ctx    context.Context

	input    textinput.Model
	corpus   int // index into domain.Corpora()
	records  []any
	selected int

	focusInput bool
	showDetail bool
	searching  bool
	err        error

	width  int
	height int
	ready  bool
}

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		ports = &Ports{}
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Enter search query..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		ports:      ports,
		styles:     styles.DefaultStyles(),
		ctx:        context.Background(),
		input:      ti,
		focusInput: true,
		width:      80,
		height:     24,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case searchCompleted:
		a.searching = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.records = msg.records
		a.selected = 0
		a.focusInput = false
		a.input.Blur()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.showDetail {
		return a.handleDetailKey(msg)
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyTab:
		a.corpus = (a.corpus + 1) % len(domain.Corpora())
		a.records = nil
		a.selected = 0
		return a, nil

	case tea.KeyEsc:
		if !a.focusInput {
			a.focusInput = true
			return a, a.input.Focus()
		}
		return a, tea.Quit

	case tea.KeyEnter:
		if a.focusInput {
			a.searching = true
			return a, a.performSearch(a.input.Value())
		}
		if a.selected < len(a.records) {
			a.showDetail = true
		}
		return a, nil

	case tea.KeyUp:
		a.moveUp()
		return a, nil

	case tea.KeyDown:
		a.moveDown()
		return a, nil
	}

	if a.focusInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "k":
		a.moveUp()
	case "j":
		a.moveDown()
	case "/", "n":
		a.focusInput = true
		a.input.SetValue("")
		return a, a.input.Focus()
	case "q":
		return a, tea.Quit
	}

	return a, nil
}

// handleDetailKey processes keyboard input on the detail pane.
func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // handling only relevant key types
	case tea.KeyEsc, tea.KeyEnter:
		a.showDetail = false
		return a, nil
	default:
	}
	if msg.String() == "q" {
		a.showDetail = false
	}
	return a, nil
}

func (a *App) moveUp() {
	if a.selected > 0 {
		a.selected--
	}
}

func (a *App) moveDown() {
	if a.selected < len(a.records)-1 {
		a.selected++
	}
}

// performSearch runs a substring search against the active corpus.
func (a *App) performSearch(query string) tea.Cmd {
	corpus := a.Corpus()
	return func() tea.Msg {
		res, err := a.ports.Query.Query(a.ctx, domain.QueryRequest{
			Corpus:    corpus,
			Operation: domain.OpSearch,
			Query:     query,
			Limit:     tuiSearchLimit,
		})
		if err != nil {
			return searchCompleted{err: err}
		}
		return searchCompleted{records: res.Records}
	}
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.showDetail {
		return a.renderDetail()
	}

	sections := make([]string, 0, 8)
	sections = append(sections, a.renderHeader(), "")
	sections = append(sections, a.styles.InputField.Render(a.input.View()), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.renderResults(), "")
	sections = append(sections, a.renderStatus())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the corpus tabs.
func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(domain.Corpora()))
	for i, c := range domain.Corpora() {
		label := " " + string(c) + " "
		if i == a.corpus {
			tabs = append(tabs, a.styles.Selected.Render(label))
		} else {
			tabs = append(tabs, a.styles.Muted.Render(label))
		}
	}

	title := a.styles.Title.Render("readocs")
	return title + "  " + strings.Join(tabs, " ")
}

// renderResults renders the scrolling result list.
func (a *App) renderResults() string {
	if a.searching {
		return a.styles.Muted.Render("Searching...")
	}
	if len(a.records) == 0 {
		return a.styles.Muted.Render("No results. Type a query and press Enter.")
	}

	visible := a.height - 10
	if visible < 3 {
		visible = 3
	}

	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}
	end := start + visible
	if end > len(a.records) {
		end = len(a.records)
	}

	lines := make([]string, 0, visible)
	for i := start; i < end; i++ {
		name, detail := recordSummary(a.records[i])
		line := name
		if detail != "" {
			line += a.styles.Muted.Render("  " + truncate(detail, a.width-len(name)-6))
		}
		if i == a.selected {
			lines = append(lines, a.styles.Selected.Render("> "+name)+strings.TrimPrefix(line, name))
		} else {
			lines = append(lines, a.styles.Normal.Render("  ")+line)
		}
	}

	return strings.Join(lines, "\n")
}

// renderStatus renders the bottom help bar.
func (a *App) renderStatus() string {
	help := "tab: api • enter: search/details • esc: back • ctrl+c: quit"
	count := ""
	if len(a.records) > 0 {
		count = fmt.Sprintf("%d results • ", len(a.records))
	}
	return a.styles.StatusBar.Render(count + help)
}

// renderDetail renders the full record for the current selection.
func (a *App) renderDetail() string {
	if a.selected >= len(a.records) {
		return a.styles.Muted.Render("Nothing selected.")
	}

	lines := detailLines(a.records[a.selected])
	body := make([]string, 0, len(lines)+3)
	body = append(body, a.styles.Title.Render(lines[0]), "")
	for _, line := range lines[1:] {
		body = append(body, a.styles.Normal.Render(line))
	}
	body = append(body, "", a.styles.Help.Render("esc: back"))

	return a.styles.Border.Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, body...),
	)
}

// recordSummary produces the list line for a search hit.
func recordSummary(rec any) (name, detail string) {
	switch r := rec.(type) {
	case domain.JSFXFunction:
		return r.Name, r.Description
	case domain.ReaScriptFunction:
		return r.Name, r.Description
	case domain.MethodMatch:
		return r.Class + "." + r.Name, r.Method.Description
	default:
		return fmt.Sprintf("%v", rec), ""
	}
}

// detailLines flattens a record into display lines; the first line is
// the title.
func detailLines(rec any) []string {
	switch r := rec.(type) {
	case domain.JSFXFunction:
		lines := []string{r.Name}
		if r.Signature != "" {
			lines = append(lines, "Signature: "+r.Signature)
		}
		if r.Category != "" {
			lines = append(lines, "Category: "+r.Category)
		}
		if r.Description != "" {
			lines = append(lines, "", r.Description)
		}
		return lines
	case domain.ReaScriptFunction:
		lines := []string{r.Name}
		if r.Namespace != "" {
			lines = append(lines, "Namespace: "+r.Namespace)
		}
		if len(r.AvailableIn) > 0 {
			lines = append(lines, "Available: "+strings.Join(r.AvailableIn, ", "))
		}
		if r.Description != "" {
			lines = append(lines, "", r.Description)
		}
		return lines
	case domain.MethodMatch:
		lines := []string{r.Class + "." + r.Name}
		if r.Method.Signature != "" {
			lines = append(lines, "Signature: "+r.Method.Signature)
		}
		if r.Method.Description != "" {
			lines = append(lines, "", r.Method.Description)
		}
		return lines
	default:
		return []string{fmt.Sprintf("%v", rec)}
	}
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth
}

// Corpus returns the active corpus.
func (a *App) Corpus() domain.Corpus {
	return domain.Corpora()[a.corpus]
}

// Records returns the current result records.
func (a *App) Records() []any {
	return a.records
}

// Selected returns the index of the selected record.
func (a *App) Selected() int {
	return a.selected
}

// InputFocused reports whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// Err returns the current error, if any.
func (a *App) Err() error {
	return a.err
}
