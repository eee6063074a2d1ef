// Package design models the raw material of search-based class design:
// design elements (methods, attributes, end-of-class markers), the solution
// paths ants construct over them, and the classes that stabilize out of the
// search.
//
// The pheromone core (package pheromone) consumes this model read-only:
//
//   - Path - one ant's constructed design: an ordered node sequence starting
//     at the nest, delimited into per-class segments by end-of-class markers,
//     and terminated by one. Paths carry per-measure fitness scalars
//     (CBO, NAC, ATMR, Combined), each pre-scaled to [0,1] with 1.0 worst.
//
//   - Class - a stabilized grouping of named method/attribute elements,
//     consumed by the freeze operation.
//
// Element identity is positional: every element owns a dense ElementID which
// is also its pheromone-matrix coordinate. Constructors validate IDs and
// fitness ranges once; downstream code carries the checked values.
//
// All construction errors are sentinel errors matched via errors.Is.
// Paths and classes are produced by external collaborators (colony
// construction, fitness evaluation); this package only gives them shape.
package design
