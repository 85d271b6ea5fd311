// errors.go - sentinel errors for the matrix package.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
