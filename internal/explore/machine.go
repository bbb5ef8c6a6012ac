package explore

import "github.com/vk/mazewalk/internal/node"

// machine is one of the visitation state machines: the state edge applied
// to a branch and the classification of the edge that was taken.
type machine struct {
	next     func(node.State) node.State
	classify func(from node.State) Outcome
}

// twoState drives Explore, ExploreWithTrace and Drive.
var twoState = machine{
	next: func(s node.State) node.State {
		if s == node.Unexplored {
			return node.Explored
		}
		return s
	},
	classify: func(from node.State) Outcome {
		if from == node.Unexplored {
			return Expanded
		}
		return Revisited
	},
}

// threeState drives the two-phase work queue.
var threeState = machine{
	next: func(s node.State) node.State {
		switch s {
		case node.Unexplored:
			return node.PartiallyExplored
		case node.PartiallyExplored:
			return node.Explored
		default:
			return node.Explored
		}
	},
	classify: func(from node.State) Outcome {
		switch from {
		case node.Unexplored:
			return Entered
		case node.PartiallyExplored:
			return Finished
		default:
			return Revisited
		}
	},
}

// reset is the inverse of twoState. A PartiallyExplored branch, left behind
// by an interrupted two-phase walk, is reset and descended like an Explored one.
var reset = machine{
	next: func(node.State) node.State {
		return node.Unexplored
	},
	classify: func(from node.State) Outcome {
		if from == node.Unexplored {
			return AlreadyReset
		}
		return Reset
	},
}
