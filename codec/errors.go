// errors.go - sentinel errors for the codec package.

package codec

import "errors"

var (
	// ErrNilGraph indicates that a nil graph was passed to an encoder.
	ErrNilGraph = errors.New("codec: graph is nil")

	// ErrBadDocument indicates input that does not parse as a Document.
	ErrBadDocument = errors.New("codec: malformed document")
)
