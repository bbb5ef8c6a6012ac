package explore

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/inmemorystore"
	"github.com/vk/mazewalk/internal/inmemorytopology"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/scheduler"
)

// def describes one maze node. A def without children is a leaf.
type def struct {
	label, left, right string
}

func leaf(label string) def { return def{label: label} }

func branch(label, left, right string) def { return def{label: label, left: left, right: right} }

// maze is a built test graph plus a label index.
type maze struct {
	g   graph.Graph
	ids map[string]nodeid.ID
}

func (m *maze) id(label string) nodeid.ID {
	id, ok := m.ids[label]
	if !ok {
		panic(fmt.Sprintf("test maze has no node %q", label))
	}
	return id
}

func (m *maze) state(t *testing.T, label string) node.State {
	t.Helper()
	s, err := m.g.State(context.Background(), m.id(label))
	require.NoError(t, err)
	return s
}

// newMaze builds a graph in two passes, like the builder does.
func newMaze(defs ...def) (*maze, error) {
	ctx := context.Background()
	ts := inmemorytopology.New()
	ids := make(map[string]nodeid.ID, len(defs))

	for _, d := range defs {
		kind := node.Leaf
		if d.left != "" {
			kind = node.Branch
		}
		id, err := ts.AddNode(ctx, d.label, kind)
		if err != nil {
			return nil, err
		}
		ids[d.label] = id
	}
	for _, d := range defs {
		if d.left == "" {
			continue
		}
		if err := ts.Link(ctx, ids[d.label], ids[d.left], ids[d.right]); err != nil {
			return nil, err
		}
	}
	return &maze{g: graph.New(ts, inmemorystore.New()), ids: ids}, nil
}

func mustMaze(t *testing.T, defs ...def) *maze {
	t.Helper()
	m, err := newMaze(defs...)
	require.NoError(t, err)
	return m
}

// sampleDefs is the reference maze: 3 and 5 are shared.
var sampleDefs = []def{
	leaf("2"), leaf("4"), leaf("5"), leaf("8"),
	branch("3", "4", "5"),
	branch("1", "2", "3"),
	branch("7", "5", "8"),
	branch("6", "3", "7"),
	branch("0", "1", "6"),
}

// diamondDefs: root → {a, b}, a → c, b → c, c → {x, y}.
var diamondDefs = []def{
	leaf("x"), leaf("y"), leaf("la"), leaf("lb"),
	branch("c", "x", "y"),
	branch("a", "c", "la"),
	branch("b", "lb", "c"),
	branch("root", "a", "b"),
}

// treeDefs is a plain binary tree with no sharing.
var treeDefs = []def{
	leaf("l1"), leaf("l2"), leaf("l3"), leaf("l4"), leaf("l5"),
	branch("b3", "l3", "l4"),
	branch("b2", "b3", "l5"),
	branch("b1", "l1", "l2"),
	branch("r", "b1", "b2"),
}

// randomDAG generates an acyclic maze rooted at "n0". Every branch i links
// only to nodes with a larger index, so sharing is common and cycles are
// impossible.
func randomDAG(seed int64, branches, leaves int) []def {
	rnd := rand.New(rand.NewSource(seed))
	total := branches + leaves
	defs := make([]def, 0, total)
	for i := 0; i < total; i++ {
		label := fmt.Sprintf("n%d", i)
		if i >= branches {
			defs = append(defs, leaf(label))
			continue
		}
		pick := func() string {
			return fmt.Sprintf("n%d", i+1+rnd.Intn(total-i-1))
		}
		defs = append(defs, branch(label, pick(), pick()))
	}
	return defs
}

// randomTree generates a binary tree rooted at "t0" with no shared nodes.
func randomTree(seed int64, maxDepth int) []def {
	rnd := rand.New(rand.NewSource(seed))
	var defs []def
	next := 0
	var grow func(depth int) string
	grow = func(depth int) string {
		label := fmt.Sprintf("t%d", next)
		next++
		if depth == 0 || rnd.Intn(4) == 0 {
			defs = append(defs, leaf(label))
			return label
		}
		left := grow(depth - 1)
		right := grow(depth - 1)
		defs = append(defs, branch(label, left, right))
		return label
	}
	grow(maxDepth)
	return defs
}

// recorder is an Observer that keeps every event and summary.
type recorder struct {
	events    []Event
	summaries []Summary
}

func (r *recorder) Visit(_ context.Context, ev Event) { r.events = append(r.events, ev) }

func (r *recorder) Done(_ context.Context, s Summary) { r.summaries = append(r.summaries, s) }

func (r *recorder) outcomes(label string) []Outcome {
	var out []Outcome
	for _, ev := range r.events {
		if ev.Label == label {
			out = append(out, ev.Outcome)
		}
	}
	return out
}

func (r *recorder) count(o Outcome) int {
	n := 0
	for _, ev := range r.events {
		if ev.Outcome == o {
			n++
		}
	}
	return n
}

// reachableBranches returns the labels of every branch reachable from root.
func reachableBranches(t *testing.T, m *maze, root string) map[string]bool {
	t.Helper()
	ctx := context.Background()
	seen := make(map[string]bool)
	var walk func(id nodeid.ID)
	walk = func(id nodeid.ID) {
		n, ok := m.g.Node(ctx, id)
		require.True(t, ok)
		if !n.IsBranch() || seen[n.Label] {
			return
		}
		seen[n.Label] = true
		walk(n.Left)
		walk(n.Right)
	}
	walk(m.id(root))
	return seen
}

// violation runs fn and returns the contract violation it panicked with,
// or nil.
func violation(fn func()) (cv *scheduler.ContractViolation) {
	defer func() {
		if r := recover(); r != nil {
			cv, _ = r.(*scheduler.ContractViolation)
		}
	}()
	fn()
	return nil
}
