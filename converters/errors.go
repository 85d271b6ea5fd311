// errors.go - sentinel errors for the converters package.

package converters

import "errors"

var (
	// ErrNilGraph indicates that a nil graph was passed into an adapter.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrValueType indicates imported edge data that is not of the
	// requested value type.
	ErrValueType = errors.New("converters: edge data has wrong type")

	// ErrModeMismatch indicates a directed graph handed to an undirected
	// adapter or vice versa.
	ErrModeMismatch = errors.New("converters: graph mode does not match adapter")

	// ErrLoopUnsupported indicates a self-loop in a graph bound for a
	// target that cannot represent one.
	ErrLoopUnsupported = errors.New("converters: self-loops not supported by target")

	// ErrNilWeightFn indicates that no weight projection was supplied.
	ErrNilWeightFn = errors.New("converters: weight function is nil")
)
