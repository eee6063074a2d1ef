// Package pheromone - deposit of pheromone and antipheromone along a path.
//
// Both deposits share one edge walk: consecutive non-terminator nodes form
// an edge (from, to); an end-of-class marker breaks the chain and the node
// after it restarts the chain, so no edge ever crosses a class boundary.
// Every edge write is mirrored to keep the table symmetric.
package pheromone

import (
	"math"

	"github.com/katalvlaran/formica/design"
)

// delta computes the single per-path reinforcement scalar:
// raw = 1 - fitness under the configured measure, delta = raw^mu.
//
// Contracts:
//   - raw must lie in [0,1] (fitness pre-scaling is the evaluator's duty).
//   - p.Measure must be CBO, NAC or Combined; ATMR never drives deposit.
//
// Complexity: O(1).
func delta(path *design.Path, p Params) (float64, error) {
	fit := path.Fitness()

	var raw float64
	switch p.Measure {
	case MeasureCBO:
		raw = 1 - fit.CBO
	case MeasureNAC:
		// NAC arrives already scaled by its evaluator.
		raw = 1 - fit.NAC
	case MeasureCombined:
		raw = 1 - fit.Combined
	case MeasureATMR:
		return 0, ErrMeasureUnsupported
	default:
		return 0, ErrUnknownMeasure
	}

	if !(raw >= 0 && raw <= 1) {
		return 0, ErrFitnessOutOfRange
	}

	return math.Pow(raw, p.Mu), nil
}

// walkEdges invokes fn(from, to) for every edge of the path: consecutive
// node pairs whose endpoints are both non-terminator. A terminator breaks
// the chain; the following node restarts it. Node IDs are bounds-checked
// against the matrix size once, up front.
//
// Complexity: O(Len) plus fn's cost per edge.
func walkEdges(m *Matrix, path *design.Path, fn func(from, to int)) error {
	if path == nil {
		return ErrNilPath
	}
	if int(path.MaxElementID()) >= m.n {
		return ErrIndexOutOfRange
	}

	// design.NewPath guarantees the final node is an end-of-class marker,
	// so the walk below never emits an edge out of the path's tail.
	last := path.Len() - 1

	var (
		i        int
		node     design.Node
		from     int
		haveFrom bool
	)
	from = int(path.Node(0).ID) // the nest opens the first chain
	haveFrom = true

	for i = 1; i <= last; i++ {
		node = path.Node(i)

		if node.IsEndOfClass() {
			// Class boundary: no edge into or out of the marker; the next
			// node restarts the chain.
			haveFrom = false

			continue
		}

		if haveFrom {
			fn(from, int(node.ID))
		}
		from = int(node.ID)
		haveFrom = true
	}

	return nil
}

// layPheromone adds the path's delta to every edge, written symmetrically.
// Under MMAS each written value is clamped into [TauMin, TauMax]; under
// SimpleACO values grow unbounded across iterations.
//
// Complexity: O(Len).
func layPheromone(m *Matrix, path *design.Path, p Params) error {
	if m == nil {
		return ErrNilMatrix
	}
	if path == nil {
		return ErrNilPath
	}

	d, err := delta(path, p)
	if err != nil {
		return err
	}

	return walkEdges(m, path, func(from, to int) {
		probability := m.at(from, to) + d

		if p.Variant == MMAS {
			// MMAS limits pheromone to [TauMin, TauMax], which preserves a
			// minimum degree of search diversification.
			if probability < p.TauMin {
				probability = p.TauMin
			}
			if probability > p.TauMax {
				probability = p.TauMax
			}
		}

		m.setSymmetric(from, to, probability)
	})
}

// layAntipheromone shrinks or resets every edge of the path, mirrored
// symmetrically:
//
//   - SimpleACO: multiply by phi, no floor.
//   - MMAS, reduce-by-half: multiply by 0.5, floor at TauMin.
//   - MMAS, set-to-minimum: overwrite with TauMin.
//
// The relevant antipheromone toggle must be enabled for the active variant.
//
// Complexity: O(Len).
func layAntipheromone(m *Matrix, path *design.Path, p Params) error {
	if m == nil {
		return ErrNilMatrix
	}
	if path == nil {
		return ErrNilPath
	}

	switch p.Variant {
	case SimpleACO:
		if !p.SubtractiveAntipheromone {
			return ErrAntipheromoneDisabled
		}

		return walkEdges(m, path, func(from, to int) {
			m.setSymmetric(from, to, m.at(from, to)*p.Phi)
		})

	case MMAS:
		if !p.MMASAntipheromone {
			return ErrAntipheromoneDisabled
		}

		if p.MMASReduceByHalf {
			return walkEdges(m, path, func(from, to int) {
				probability := m.at(from, to) * mmasAntipheromoneFactor
				if probability < p.TauMin {
					probability = p.TauMin
				}
				m.setSymmetric(from, to, probability)
			})
		}

		// Lay down the minimum pheromone directly.
		return walkEdges(m, path, func(from, to int) {
			m.setSymmetric(from, to, p.TauMin)
		})

	default:
		return ErrUnknownVariant
	}
}
