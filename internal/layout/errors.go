package layout

import "errors"

var (
	// ErrNilNode is returned when Calculate is called with a nil root.
	ErrNilNode = errors.New("layout: nil node")

	// ErrCycle is returned when adding a child would create a cycle.
	ErrCycle = errors.New("layout: insertion would create a cycle")

	// ErrBothSizingSources is returned when a node is given both a static
	// intrinsic size and a measure function. Exactly one may be set.
	ErrBothSizingSources = errors.New("layout: node has both an intrinsic size and a measure func")
)
