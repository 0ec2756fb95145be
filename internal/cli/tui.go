package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// Explorer styles
var (
	pathStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	statusStyle = StyleWarning
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExploreModel - Interactive caret navigation
// =============================================================================

// ExploreModel is the bubbletea model for moving a caret through a layout
// document. It shows the rows of the focused element's container with the
// focused element marked.
type ExploreModel struct {
	Doc      *layout.Document
	Nav      *nav.Navigator
	Focus    *nav.Focus
	Status   string
	Moves    int
	Quitting bool
}

// NewExploreModel creates an explorer focused on the first leaf of doc.
func NewExploreModel(doc *layout.Document, n *nav.Navigator) ExploreModel {
	return ExploreModel{
		Doc:   doc,
		Nav:   n,
		Focus: nav.NewFocus(n, doc.Root),
	}
}

// Current returns the focused node, or nil for an empty document.
func (m ExploreModel) Current() *layout.Node {
	n, _ := m.Focus.Current().(*layout.Node)
	return n
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Quitting = true
		return m, tea.Quit
	}

	dir, err := nav.ParseDirection(key.String())
	if err != nil {
		return m, nil
	}
	if m.Focus.Move(dir) {
		m.Moves++
		m.Status = ""
	} else {
		m.Status = "no element " + dir.String()
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore " + m.Doc.Root.Name()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←↓↑→ / hjkl move  q quit"))
	b.WriteString("\n\n")

	cur := m.Current()
	if cur == nil {
		b.WriteString(StyleDim.Render("document has no elements"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(pathStyle.Render(m.path()))
	b.WriteString("\n")

	container := m.Doc.Root
	if p, ok := m.Doc.Parent(cur.ID); ok {
		container = p
	}
	snap := layout.NewSnapshot(m.Nav.Grid(container.Children()))
	b.WriteString(rowsTable(snap, nodeName(m.Doc), cur.ID))
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString(statusStyle.Render(m.Status))
		b.WriteString("\n")
	}
	return b.String()
}

// path renders the focused element's ancestry.
func (m ExploreModel) path() string {
	parts := []string{m.Doc.Root.Name()}
	for _, e := range m.Focus.Path() {
		if n, ok := e.(*layout.Node); ok {
			parts = append(parts, n.Name())
		}
	}
	return strings.Join(parts, " › ")
}
