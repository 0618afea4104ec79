package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphref/sidegraph/internal/core/domain"
)

// viewState tracks which screen is active.
type viewState int

const (
	stateList viewState = iota
	stateDetail
)

// refItem adapts a reference name to the bubbles list.
type refItem string

func (i refItem) Title() string       { return string(i) }
func (i refItem) Description() string { return "" }
func (i refItem) FilterValue() string { return string(i) }

// Messages produced by the data-loading commands.
type (
	refsLoadedMsg []string

	detailLoadedMsg struct {
		ref   *domain.Reference
		joins []domain.Join
	}

	errMsg struct{ err error }
)

// App is the browser application. It implements tea.Model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles Styles

	state viewState
	list  list.Model

	// detail screen data
	ref   *domain.Reference
	joins []domain.Join

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating browser: %w", err)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(nil, delegate, 80, 24)
	l.Title = "References"
	l.SetShowStatusBar(false)

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		state:  stateList,
		list:   l,
	}, nil
}

// WithContext sets the context used for graph queries.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init loads the reference list.
func (a *App) Init() tea.Cmd {
	return a.loadReferences
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.list.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case refsLoadedMsg:
		items := make([]list.Item, len(msg))
		for i, name := range msg {
			items[i] = refItem(name)
		}
		return a, a.list.SetItems(items)

	case detailLoadedMsg:
		a.state = stateDetail
		a.ref = msg.ref
		a.joins = msg.joins
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a.updateList(msg)
}

func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "q":
		// Let the list's filter input capture plain characters.
		if a.state == stateList && a.list.FilterState() == list.Filtering {
			return a.updateList(msg)
		}
		return a, tea.Quit

	case "esc":
		if a.state == stateDetail {
			a.state = stateList
			a.ref = nil
			a.joins = nil
			a.err = nil
			return a, nil
		}

	case "enter":
		if a.state == stateList {
			if item, ok := a.list.SelectedItem().(refItem); ok {
				return a, a.loadDetail(string(item))
			}
			return a, nil
		}
	}

	return a.updateList(msg)
}

func (a *App) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.state != stateList {
		return a, nil
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View renders the active screen.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Document.Render(
			a.styles.Error.Render("Error: "+a.err.Error()) +
				a.styles.Help.Render("\nesc: back • q: quit"))
	}

	if a.state == stateDetail && a.ref != nil {
		return a.detailView()
	}
	return a.list.View()
}

func (a *App) detailView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(a.ref.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(a.styles.Label.Render(label))
		b.WriteString(" ")
		b.WriteString(a.styles.Value.Render(value))
		b.WriteString("\n")
	}
	row("Span:     ", fmt.Sprintf("[%d, %d)", a.ref.Start, a.ref.End()))
	row("Length:   ", fmt.Sprintf("%d", a.ref.Length))
	row("Sequence: ", a.ref.SequenceID)
	if a.ref.MD5Checksum != "" {
		row("MD5:      ", a.ref.MD5Checksum)
	}
	row("Derived:  ", fmt.Sprintf("%t", a.ref.IsDerived))
	if len(a.ref.SourceAccessions) > 0 {
		row("Accession:", strings.Join(a.ref.SourceAccessions, ", "))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Label.Render(fmt.Sprintf("Joins (%d)", len(a.joins))))
	b.WriteString("\n")
	for i := range a.joins {
		b.WriteString(a.styles.Value.Render("  " + a.joins[i].String()))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("esc: back • q: quit"))
	return a.styles.Document.Render(b.String())
}

func (a *App) loadReferences() tea.Msg {
	names, err := a.ports.Graph.ReferenceNames(a.ctx)
	if err != nil {
		return errMsg{err}
	}
	return refsLoadedMsg(names)
}

func (a *App) loadDetail(name string) tea.Cmd {
	return func() tea.Msg {
		ref, err := a.ports.Graph.Reference(a.ctx, name)
		if err != nil {
			return errMsg{err}
		}
		joins, err := a.ports.Graph.Joins(a.ctx, domain.JoinFilter{Reference: name})
		if err != nil {
			return errMsg{err}
		}
		return detailLoadedMsg{ref: ref, joins: joins}
	}
}
