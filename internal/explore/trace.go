package explore

import "strings"

// Trace is the ordered sequence of labels emitted by a traversal.
type Trace []string

// String renders the trace the way the CLI prints it.
func (t Trace) String() string {
	return "[" + strings.Join(t, " ") + "]"
}

// Count returns how many times label occurs in the trace.
func (t Trace) Count(label string) int {
	n := 0
	for _, l := range t {
		if l == label {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the trace.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	out := make(Trace, len(t))
	copy(out, t)
	return out
}
