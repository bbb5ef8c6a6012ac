package report

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

var (
	colorLeaf       = lipgloss.Color("#2C4A54")
	colorUnexplored = lipgloss.Color("#F4D03F")
	colorPartial    = lipgloss.Color("#1D9EA3")
	colorExplored   = lipgloss.Color("#2CD7C7")
	colorBranch     = lipgloss.Color("#16858E")
)

// SharedMarker follows a branch that Tree has already expanded elsewhere.
const SharedMarker = "[shared]"

// Styles used by Tree.
var Styles = struct {
	Leaf       lipgloss.Style
	Branch     lipgloss.Style
	Enumerator lipgloss.Style
	Shared     lipgloss.Style
	States     map[node.State]lipgloss.Style
}{
	Leaf:       lipgloss.NewStyle().Foreground(colorLeaf),
	Branch:     lipgloss.NewStyle().Bold(true),
	Enumerator: lipgloss.NewStyle().Foreground(colorBranch).PaddingRight(1),
	Shared:     lipgloss.NewStyle().Faint(true),
	States: map[node.State]lipgloss.Style{
		node.Unexplored:        lipgloss.NewStyle().Foreground(colorUnexplored),
		node.PartiallyExplored: lipgloss.NewStyle().Foreground(colorPartial),
		node.Explored:          lipgloss.NewStyle().Foreground(colorExplored),
	},
}

// Tree renders the maze below root as a styled tree with each branch's
// state next to its label. A shared branch is expanded where it first
// appears; later references show its label and state marked as shared.
func Tree(ctx context.Context, g graph.Graph, root nodeid.ID) (string, error) {
	item, err := subtree(ctx, g, root, make(map[nodeid.ID]bool))
	if err != nil {
		return "", err
	}
	if t, ok := item.(*tree.Tree); ok {
		return t.String(), nil
	}
	return tree.Root(item).String(), nil
}

// subtree returns a rendered label for a leaf or an already expanded
// branch, and a *tree.Tree for a branch seen for the first time.
func subtree(ctx context.Context, g graph.Graph, id nodeid.ID, expanded map[nodeid.ID]bool) (any, error) {
	v, err := g.View(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Kind == node.Leaf {
		return Styles.Leaf.Render(v.Label), nil
	}

	n, _ := g.Node(ctx, id)
	label := fmt.Sprintf("%s %s", Styles.Branch.Render(v.Label), Styles.States[v.State].Render("("+v.State.String()+")"))
	if expanded[id] {
		return label + " " + Styles.Shared.Render(SharedMarker), nil
	}
	expanded[id] = true

	t := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(Styles.Enumerator)

	for _, child := range n.Children() {
		c, err := subtree(ctx, g, child, expanded)
		if err != nil {
			return nil, err
		}
		t.Child(c)
	}
	return t, nil
}
