// Package report renders traces and maze state for people: the plain
// indented view, a styled tree, and trace formatting.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/mazewalk/internal/explore"
	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

// FormatTrace renders a trace as a bracketed list of quoted labels:
//
//	["0", "1", "2"]
func FormatTrace(t explore.Trace) string {
	quoted := make([]string, len(t))
	for i, label := range t {
		quoted[i] = strconv.Quote(label)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Visualize writes the maze below root, one node per line, children
// indented by two spaces under their parent:
//
//	Branch: 3 (Status: Explored)
//	  Leaf: 4
//	  Leaf: 5
//
// A shared node is printed under every parent that references it.
func Visualize(ctx context.Context, w io.Writer, g graph.Graph, root nodeid.ID) error {
	return visualize(ctx, w, g, root, "")
}

func visualize(ctx context.Context, w io.Writer, g graph.Graph, id nodeid.ID, indent string) error {
	n, ok := g.Node(ctx, id)
	if !ok {
		return fmt.Errorf("%w: %s", graph.ErrNodeNotFound, id)
	}

	switch n.Kind {
	case node.Leaf:
		_, err := fmt.Fprintf(w, "%sLeaf: %s\n", indent, n.Label)
		return err
	case node.Branch:
		state, err := g.State(ctx, id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%sBranch: %s (Status: %s)\n", indent, n.Label, state); err != nil {
			return err
		}
		if err := visualize(ctx, w, g, n.Left, indent+"  "); err != nil {
			return err
		}
		return visualize(ctx, w, g, n.Right, indent+"  ")
	default:
		return fmt.Errorf("node '%s' has unknown kind %d", n.Label, n.Kind)
	}
}

// StateCounts tallies the branches of g by visitation state.
func StateCounts(ctx context.Context, g graph.Graph) (map[node.State]int, error) {
	counts := make(map[node.State]int)
	for _, n := range g.AllNodes(ctx) {
		if !n.IsBranch() {
			continue
		}
		s, err := g.State(ctx, n.ID)
		if err != nil {
			return nil, err
		}
		counts[s]++
	}
	return counts, nil
}
