package node

import (
	"github.com/vk/mazewalk/internal/nodeid"
)

// Node is a single vertex of the maze. It is either a Branch with two child
// references or a terminal Leaf. A Node value is immutable once it has been
// added to a topology; its visitation state lives in the node store, keyed by
// ID, so every parent that references the node observes the same state.
type Node struct {
	// ID is the node's arena index. It is the node's identity.
	ID nodeid.ID
	// Label is the human-readable name from the maze definition.
	// Example: "3"
	Label string
	// Kind distinguishes branches from leaves.
	Kind Kind

	// Left and Right are the child references of a branch. They are
	// nodeid.None for leaves.
	Left  nodeid.ID
	Right nodeid.ID
}

// Kind distinguishes between the two node variants. The set is closed.
type Kind int

const (
	// Leaf is a terminal, stateless node.
	Leaf Kind = iota
	// Branch is an interior node with two children and a visitation state.
	Branch
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		return "unknown"
	}
}

// State represents the visitation state of a branch node.
type State int32

const (
	// Unexplored is the initial state of every branch.
	Unexplored State = iota
	// PartiallyExplored marks a branch whose left side has been scheduled but
	// whose right side has not. Only the two-phase traversal uses it.
	PartiallyExplored
	// Explored marks a branch that has been fully expanded.
	Explored
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unexplored:
		return "UnExplored"
	case PartiallyExplored:
		return "PartiallyExplored"
	case Explored:
		return "Explored"
	default:
		return "Unknown"
	}
}

// NewLeaf creates a leaf node.
func NewLeaf(id nodeid.ID, label string) *Node {
	return &Node{
		ID:    id,
		Label: label,
		Kind:  Leaf,
		Left:  nodeid.None,
		Right: nodeid.None,
	}
}

// NewBranch creates a branch node. Its children may be linked later by the
// topology store, in which case left and right are nodeid.None.
func NewBranch(id nodeid.ID, label string, left, right nodeid.ID) *Node {
	return &Node{
		ID:    id,
		Label: label,
		Kind:  Branch,
		Left:  left,
		Right: right,
	}
}

// IsBranch reports whether the node carries children and state.
func (n *Node) IsBranch() bool {
	return n.Kind == Branch
}

// Linked reports whether a branch has both children set.
func (n *Node) Linked() bool {
	return n.Kind == Branch && n.Left != nodeid.None && n.Right != nodeid.None
}

// Children returns the branch's children in left, right order, or nil for a leaf.
func (n *Node) Children() []nodeid.ID {
	if n.Kind != Branch {
		return nil
	}
	return []nodeid.ID{n.Left, n.Right}
}

// View is the read-only projection of a node handed to reporting code.
type View struct {
	Label    string
	Kind     Kind
	State    State
	Children []string
}
