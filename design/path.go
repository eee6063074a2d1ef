// Package design - Path: one ant's constructed class design.
//
// A Path is an ordered node sequence produced fresh by colony construction
// each iteration and read-only to the pheromone core. The first node is the
// nest, interior nodes are methods/attributes delimited into per-class
// segments by end-of-class markers, and the final node is always a marker.
package design

// Path is an immutable ordered sequence of nodes plus the path's fitness
// scalars. Construct via NewPath; the zero value is not usable.
type Path struct {
	nodes []Node  // defensive copy of the constructed sequence
	fit   Fitness // per-measure fitness, each in [0,1], 1.0 worst
}

// NewPath validates and copies the node sequence.
//
// Contracts:
//   - len(nodes) >= 2 (nest plus at least the final terminator).
//   - the final node is an end-of-class marker.
//   - every node ID is non-negative.
//   - every fitness scalar lies in [0,1].
//
// Complexity: O(len(nodes)) time and space.
func NewPath(nodes []Node, fit Fitness) (*Path, error) {
	if len(nodes) < 2 {
		return nil, ErrEmptyPath
	}
	if !nodes[len(nodes)-1].IsEndOfClass() {
		return nil, ErrNoTerminator
	}
	var i int
	for i = 0; i < len(nodes); i++ {
		if nodes[i].ID < 0 {
			return nil, ErrNegativeElementID
		}
	}
	if err := fit.validate(); err != nil {
		return nil, err
	}

	owned := make([]Node, len(nodes))
	copy(owned, nodes)

	return &Path{nodes: owned, fit: fit}, nil
}

// Len returns the number of nodes in the path.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Node returns the node at position i. Position must satisfy 0 <= i < Len();
// out-of-range access panics exactly like a slice index, which is a
// programmer error, not user input.
func (p *Path) Node(i int) Node {
	return p.nodes[i]
}

// Nodes returns an independent copy of the node sequence.
func (p *Path) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// Fitness returns the path's fitness scalars.
func (p *Path) Fitness() Fitness {
	return p.fit
}

// MaxElementID returns the largest element index used by the path. Callers
// compare it against the pheromone-matrix size to validate bounds once,
// before any deposit walk.
//
// Complexity: O(Len()).
func (p *Path) MaxElementID() ElementID {
	var (
		i   int
		max ElementID
	)
	for i = 0; i < len(p.nodes); i++ {
		if p.nodes[i].ID > max {
			max = p.nodes[i].ID
		}
	}

	return max
}
