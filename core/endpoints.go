// Package core: EndpointPair, the two endpoints an edge connects.

package core

import "fmt"

// EndpointPair names the two endpoints of an edge. An Ordered pair has a
// source and a target and belongs to directed graphs; an Unordered pair has
// interchangeable endpoints and belongs to undirected graphs.
//
// Unordered equality is symmetric: Unordered(a, b) equals Unordered(b, a).
// An ordered pair never equals an unordered one, even over the same nodes.
type EndpointPair[K comparable] struct {
	nodeU, nodeV K
	ordered      bool
}

// Ordered returns a directed pair running source → target.
func Ordered[K comparable](source, target K) EndpointPair[K] {
	return EndpointPair[K]{nodeU: source, nodeV: target, ordered: true}
}

// Unordered returns an undirected pair over the two nodes.
func Unordered[K comparable](nodeU, nodeV K) EndpointPair[K] {
	return EndpointPair[K]{nodeU: nodeU, nodeV: nodeV, ordered: false}
}

// IsOrdered reports whether the pair is ordered (source/target flavored).
func (p EndpointPair[K]) IsOrdered() bool {
	return p.ordered
}

// NodeU returns the first endpoint: the source for ordered pairs, otherwise
// the endpoint supplied first at construction.
func (p EndpointPair[K]) NodeU() K {
	return p.nodeU
}

// NodeV returns the second endpoint: the target for ordered pairs, otherwise
// the endpoint supplied second at construction.
func (p EndpointPair[K]) NodeV() K {
	return p.nodeV
}

// Source returns the source of an ordered pair.
// Panics on an unordered pair: asking an undirected edge for its source is a
// programmer error, not a runtime condition.
func (p EndpointPair[K]) Source() K {
	if !p.ordered {
		panic("core: Source of an unordered EndpointPair")
	}

	return p.nodeU
}

// Target returns the target of an ordered pair.
// Panics on an unordered pair, as Source does.
func (p EndpointPair[K]) Target() K {
	if !p.ordered {
		panic("core: Target of an unordered EndpointPair")
	}

	return p.nodeV
}

// Contains reports whether node is one of the two endpoints.
func (p EndpointPair[K]) Contains(node K) bool {
	return node == p.nodeU || node == p.nodeV
}

// AdjacentNode returns the endpoint opposite to node.
// Returns ErrNotIncident if node is not an endpoint of the pair.
// For a self-loop pair both endpoints are equal, so node is its own opposite.
func (p EndpointPair[K]) AdjacentNode(node K) (K, error) {
	switch node {
	case p.nodeU:
		return p.nodeV, nil
	case p.nodeV:
		return p.nodeU, nil
	}

	var zero K
	return zero, fmt.Errorf("adjacent node of %v in %v: %w", node, p, ErrNotIncident)
}

// Equal reports whether two pairs denote the same edge connection.
// Ordered pairs compare positionally; unordered pairs compare as two-element
// sets. Pairs of different flavors are never equal.
func (p EndpointPair[K]) Equal(o EndpointPair[K]) bool {
	if p.ordered != o.ordered {
		return false
	}
	if p.ordered {
		return p.nodeU == o.nodeU && p.nodeV == o.nodeV
	}

	return (p.nodeU == o.nodeU && p.nodeV == o.nodeV) ||
		(p.nodeU == o.nodeV && p.nodeV == o.nodeU)
}

// String renders "<u -> v>" for ordered pairs and "[u, v]" for unordered ones.
func (p EndpointPair[K]) String() string {
	if p.ordered {
		return fmt.Sprintf("<%v -> %v>", p.nodeU, p.nodeV)
	}

	return fmt.Sprintf("[%v, %v]", p.nodeU, p.nodeV)
}

// matchesMode reports whether the pair flavor agrees with the graph mode.
func (p EndpointPair[K]) matchesMode(directed bool) bool {
	return p.ordered == directed
}
