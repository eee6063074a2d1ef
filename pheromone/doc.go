// Package pheromone implements the pheromone-management core of an
// Ant-Colony-Optimization metaheuristic for software class design.
//
// Ants (external) traverse a space of design elements to construct candidate
// class designs; this package owns the learned preference table and the
// three operators an external control loop drives once per iteration:
//
//   - Evaporate - decay the whole table, uniformly or with a touch of
//     elitism that preserves strong trails slightly longer.
//   - Update - deposit pheromone for elite/representative paths and,
//     optionally, antipheromone for poor ones, dispatching on the
//     configured variant (SimpleACO or MMAS), fitness measure and
//     strength ordinals.
//   - FreezeUpdate - pin every (method, attribute) pair of stabilized
//     classes to an extreme constant, locking the pairing into future
//     designs.
//
// Variants:
//
//   - SimpleACO: every ant deposits; reinforcement values are unbounded.
//   - MMAS (MAX-MIN Ant System): only ranked elites deposit; every touched
//     cell is clamped into [TauMin, TauMax] for search diversification.
//
// Configuration is an explicit immutable Params value passed into every
// operator; there is no package-level state, so each operator is a pure
// function of (matrix, colony, params, iteration).
//
// Error model: every failure is a contract violation surfaced as a sentinel
// error, grouped into two families matched via errors.Is -
// ErrConfiguration (bad variant/measure/knob combinations) and ErrInvariant
// (out-of-range numeric state, missing inputs). There is no retry policy
// and no partial-failure mode: an iteration either fully applies or the
// caller aborts the run.
//
// Concurrency: single-threaded by contract. The matrix is shared mutable
// state with exactly one writer active at a time; callers that parallelize
// colony construction must serialize all matrix writes.
//
// Complexity per iteration: O(n^2) for Evaporate over an n-element table,
// O(ants * pathLen) (SimpleACO) or O(K * pathLen) (MMAS) for Update.
//
// See "Ant Colony Optimisation", Dorigo & Stutzle, 2004, MIT Press, for
// the rho/mu formulation, and package design for the path/class model.
package pheromone
