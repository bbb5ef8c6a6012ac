// Package inmemorytopology provides a thread-safe, in-memory arena
// implementation of the topologystore.Store interface. Nodes are kept in a
// slice indexed by nodeid.ID, with a side index from label to ID.
package inmemorytopology
