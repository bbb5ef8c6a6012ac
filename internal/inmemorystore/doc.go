// Package inmemorystore provides a thread-safe, in-memory implementation
// of the nodestore.Store interface. Each node gets its own mutex-guarded
// cell, created on first write, so updates to distinct nodes never contend.
package inmemorystore
