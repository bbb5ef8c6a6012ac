// Package node defines the maze vertex: a closed Branch/Leaf variant plus the
// visitation states a branch moves through while it is being explored.
package node
