// internal/nodeid/doc.go

/*
Package nodeid provides the identity types for maze nodes.

A node is addressed by a stable arena index (ID) assigned when the node is
added to the topology, and named by a human-readable label taken from the
maze definition. Identity, not label equality, decides whether two child
references denote the same node.

Labels are restricted to `[a-zA-Z0-9_.-]+`. The canonical string form of an
ID is `#<index>`, e.g. `#0`, `#17`.
*/
package nodeid
