// Package graph provides a unified facade over a maze's structure and its
// visitation state.
//
// # Architecture: The Facade Pattern
//
// The Graph is a thin facade over two specialized stores:
//
//	┌─────────────────────────────────────┐
//	│           Graph Facade              │
//	│  (Unified API for explorers and     │
//	│   reporting code)                   │
//	└──────────┬────────────┬─────────────┘
//	           │            │
//	           ▼            ▼
//	  ┌────────────┐  ┌────────────┐
//	  │  Topology  │  │ Node State │
//	  │   Store    │  │   Store    │
//	  │  (Arena)   │  │(Side table)│
//	  └────────────┘  └────────────┘
//
// **Topology Store** (topologystore.Store):
//   - Immutable maze structure, addressed by nodeid.ID
//   - Queried by: Node(), Lookup(), Children(), AllNodes()
//
// **Node Store** (nodestore.Store):
//   - One visitation-state cell per branch
//   - Queried by: State(), View()
//   - Updated by: Transition(), Reset()
//
// # Usage Patterns
//
// **Explorers** look a node up, then transition it:
//
//	n, _ := g.Node(ctx, id)
//	from, to, err := g.Transition(ctx, id, func(s node.State) node.State {
//	    if s == node.Unexplored {
//	        return node.Explored
//	    }
//	    return s
//	})
//
// **Reporting** reads views:
//
//	v, _ := g.View(ctx, id)
//	fmt.Println(v.Label, v.State, v.Children)
//
// # Thread-Safety
//
// All Graph methods are thread-safe, delegating to the thread-safe stores.
package graph
