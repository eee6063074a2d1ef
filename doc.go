// Package formica is the pheromone engine of an Ant-Colony-Optimization
// search over software class designs — the shared table ants learn from,
// and the operators that reinforce, punish, decay and freeze it.
//
// 🐜 What is formica?
//
//	A small, focused library implementing the pheromone side of ACO for
//	search-based class design:
//		• Pheromone matrix: dense, symmetric-by-convention table over
//		  design-element indices
//		• Evaporation: uniform or elitist (median-proportionate) decay
//		• Deposit: per-path reinforcement (1-fitness)^mu, Simple-ACO or
//		  MAX-MIN Ant System with [TauMin, TauMax] bounds
//		• Antipheromone: phased punishment of the colony's worst designs
//		• Freeze: permanently pin stabilized (method, attribute) pairings
//
// ✨ Why choose formica?
//
//   - Explicit configuration – one immutable Params value, no globals
//   - Strict contracts – sentinel errors in two families (configuration
//     vs invariant), matched via errors.Is, never a panic on caller input
//   - Pure Go – deterministic, single-threaded by contract, no hidden deps
//
// Everything is organized under two subpackages:
//
//	design/    — element, path, fitness and class model (read-only input)
//	pheromone/ — matrix storage + Evaporate / Update / FreezeUpdate
//
// Per-iteration control flow, driven by an external loop:
//
//	construct colony → evaluate fitness → select best/worst
//	    → Update → Evaporate → (eventually) FreezeUpdate
//
// Dive into examples/ for a runnable colony iteration with structured
// tint/slog tracing.
//
//	go get github.com/katalvlaran/formica
package formica
