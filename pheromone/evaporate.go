// Package pheromone - evaporation (decay) of the pheromone table.
//
// Evaporation runs once per iteration over the full N×N table, both
// symmetric halves touched independently. Two policies exist:
//
//   - Uniform: every cell v becomes v*(1-rho).
//   - Elitist: decay proportional to a cell's standing between the table's
//     lowest and highest values, bounded by the elitist factor (0.02), so
//     strong trails decay a touch less and weak trails a touch more.
//
// Elitist quirk, kept deliberately: a cell sitting exactly at the median
// keeps its value unchanged for that pass - the multiplier stays at 1.0 and
// the base decay is not applied. See "Ant Colony Optimisation", Dorigo &
// Stutzle, 2004, MIT Press, for the underlying rho formulation.
package pheromone

// Evaporate decays every cell of m in place according to p.
//
// Contracts:
//   - m non-nil, p validated (Params.Validate).
//   - elitist mode requires a non-degenerate table (highest > lowest).
//
// Errors: ErrNilMatrix, ErrDegenerateMatrix, plus Params.Validate sentinels.
//
// Complexity: O(n^2) time (two passes in elitist mode), O(1) space.
func Evaporate(m *Matrix, p Params) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := p.Validate(); err != nil {
		return err
	}

	// Base decay factor; rho in [0,1] keeps it in [0,1].
	evaporationFactor := 1.0 - p.Rho

	if !p.ElitistEvaporation {
		evaporateUniform(m, evaporationFactor)

		return nil
	}

	return evaporateElitist(m, evaporationFactor)
}

// evaporateUniform applies v*(1-rho) to every cell.
func evaporateUniform(m *Matrix, evaporationFactor float64) {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			m.set(i, j, m.at(i, j)*evaporationFactor)
		}
	}
}

// evaporateElitist applies fitness-proportionate decay around the table's
// median value. Pass 1 finds lowest/highest; pass 2 scales each cell:
//
//	v > median: multiplier = (1-rho) * (1 - ((highest-v)/median)*0.02)
//	v < median: multiplier = (1-rho) * (1 + ((median-v)/median)*0.02)
//	v == median: multiplier = 1 (the cell keeps its value this pass)
func evaporateElitist(m *Matrix, evaporationFactor float64) error {
	lowest, highest := m.minMax()
	if highest <= lowest {
		// All cells equal: the median collapses onto every value and the
		// proportional adjustment is undefined.
		return ErrDegenerateMatrix
	}
	median := lowest + (highest-lowest)/2.0

	var (
		i, j       int
		prob       float64
		difference float64
		multiplier float64
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			prob = m.at(i, j)
			multiplier = 1.0

			if prob > median { // decay proportionately less
				difference = highest - prob
				multiplier = evaporationFactor * (1 - (difference/median)*elitistFactor)
			} else if prob < median { // decay proportionately more
				difference = median - prob
				multiplier = evaporationFactor * (1 + (difference/median)*elitistFactor)
			}
			// prob == median: multiplier stays 1.0, the cell is untouched
			// this iteration.

			m.set(i, j, prob*multiplier)
		}
	}

	return nil
}
