// internal/nodeid/types.go
package nodeid

import "strconv"

// ID is the arena index of a node. IDs are dense, start at zero and are
// never reused for the lifetime of a topology.
type ID uint32

// None is returned alongside a false ok value by lookups that found nothing.
const None ID = ^ID(0)

// String renders the ID in its canonical `#<index>` form.
func (id ID) String() string {
	if id == None {
		return "#none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Index returns the ID as a slice index.
func (id ID) Index() int {
	return int(id)
}
