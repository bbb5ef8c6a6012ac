// Package app contains the core application logic. It defines the App
// struct and its configuration, loads a maze, and runs one of three modes
// against it: exploring it with a traversal strategy, showing it as a tree,
// or exporting its definition. It is decoupled from the cli package so the
// same lifecycle can be driven from tests.
package app
