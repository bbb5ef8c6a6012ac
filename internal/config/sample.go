package config

// Sample returns the built-in maze used when no maze file is given:
//
//	      0
//	    /   \
//	   1     6
//	  / \   / \
//	 2   3     7
//	    / \   / \
//	   4   5     8
//
// Branch 3 is shared by 1 and 6, leaf 5 by 3 and 7.
func Sample() *Model {
	return &Model{
		Root: "0",
		Nodes: []*NodeDef{
			{Label: "2"},
			{Label: "4"},
			{Label: "5"},
			{Label: "8"},
			{Label: "3", Left: "4", Right: "5"},
			{Label: "1", Left: "2", Right: "3"},
			{Label: "7", Left: "5", Right: "8"},
			{Label: "6", Left: "3", Right: "7"},
			{Label: "0", Left: "1", Right: "6"},
		},
	}
}
