// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context via %w and
// never panic at runtime.

package builder

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the minimum the
	// requested topology needs (Path n<2, Cycle n<3, Star n<2, Complete n<1,
	// Grid rows or cols < 1).
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrNeedIDFn indicates that no ID scheme was configured. There is no
	// generic default: the builder cannot invent keys of an arbitrary type.
	ErrNeedIDFn = errors.New("builder: id scheme is required")

	// ErrConstructFailed indicates an unusable constructor, such as a nil
	// Constructor passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
