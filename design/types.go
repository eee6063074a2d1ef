// Package design defines the design-element model consumed by the pheromone
// core: nodes (methods, attributes, end-of-class markers), solution paths
// with their fitness scalars, and classes used for freezing.
//
// This file declares ElementID, Kind, Node, Fitness, Path, sentinel errors,
// and the NewPath constructor.
//
// Errors:
//
//	ErrEmptyPath          - fewer than two nodes in a path.
//	ErrNoTerminator       - the final node of a path is not an end-of-class marker.
//	ErrNegativeElementID  - a node or element carries a negative matrix index.
//	ErrFitnessRange       - a fitness scalar lies outside [0,1].
package design

import "errors"

// Sentinel errors for design model construction.
var (
	// ErrEmptyPath indicates that a path holds fewer than two nodes;
	// a valid path has at least a start node and a final end-of-class marker.
	ErrEmptyPath = errors.New("design: path needs at least two nodes")

	// ErrNoTerminator indicates that the final node of a path is not an
	// end-of-class marker.
	ErrNoTerminator = errors.New("design: final path node must be end-of-class")

	// ErrNegativeElementID indicates a negative matrix index on a node or element.
	ErrNegativeElementID = errors.New("design: element index must be non-negative")

	// ErrFitnessRange indicates a fitness scalar outside the [0,1] contract.
	ErrFitnessRange = errors.New("design: fitness value outside [0,1]")
)

// ElementID is a dense index identifying one design element. It doubles as a
// pheromone-matrix coordinate: IDs are validated once at construction time and
// carried as a checked type thereafter, never re-derived from node identity.
type ElementID int

// Kind tags the role a node plays in a constructed design.
type Kind uint8

const (
	// KindNest marks the start node of every path (the ants' nest).
	KindNest Kind = iota

	// KindMethod marks a method element.
	KindMethod

	// KindAttribute marks an attribute element.
	KindAttribute

	// KindEndOfClass marks a class terminator. Terminators delimit per-class
	// segments; no pheromone transition leaves a terminator.
	KindEndOfClass
)

// Node is one step in a constructed design path.
type Node struct {
	// ID is the element's dense index into the pheromone matrix.
	ID ElementID

	// Kind is the node's role (nest, method, attribute, end-of-class).
	Kind Kind
}

// IsEndOfClass reports whether the node is a class terminator.
func (n Node) IsEndOfClass() bool {
	return n.Kind == KindEndOfClass
}

// Fitness carries the per-path quality scalars, each pre-scaled to [0,1]
// with 1.0 worst; the complement (1 - value) serves as "goodness" during
// pheromone deposit. NAC arrives already normalized by its evaluator.
// ATMR is tracked alongside the others but is never selectable for deposit.
type Fitness struct {
	CBO      float64 // coupling between objects
	NAC      float64 // normalized elegance
	ATMR     float64 // cohesion-related measure
	Combined float64 // weighted combination
}

// validate rejects any scalar outside [0,1]. NaN fails every comparison and
// is rejected by the same branch.
func (f Fitness) validate() error {
	for _, v := range [4]float64{f.CBO, f.NAC, f.ATMR, f.Combined} {
		if !(v >= 0 && v <= 1) {
			return ErrFitnessRange
		}
	}

	return nil
}
