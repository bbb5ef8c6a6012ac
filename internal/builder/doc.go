// Package builder populates a topology store from a format-agnostic maze
// model.
//
// # How It Works
//
// Building runs in two passes so that definitions may appear in any order
// and in any file:
//  1. **Nodes:** every definition becomes a node via topologystore.AddNode.
//     Branches are created unlinked.
//  2. **Links:** every branch is linked to the IDs of its children once all
//     of them exist. A child named by several branches is linked by ID from
//     each, which is how shared subtrees come about.
//
// Problems in either pass do not stop the build early: they are collected
// and returned together as a *multierror.Error, so a maze author sees every
// broken definition at once.
//
// The builder does not look for cycles. Traversal assumes an acyclic maze.
package builder
