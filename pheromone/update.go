// Package pheromone - the per-iteration update dispatch.
//
// Update is the canonical entry point called once per colony iteration,
// after fitness evaluation and best/worst selection (both external):
//
//   - SimpleACO: every ant deposits; optionally, during the exploratory
//     window of the run, subtractive antipheromone punishes the single
//     worst path under the active measure.
//   - MMAS: only ranked elites deposit, selected by measure; optionally,
//     during the same window, ranked worst paths receive antipheromone.
//
// Strength cascades are modelled explicitly as "lay for the top-K ranked
// paths, K = strength", iterating K down to 1 so the Kth-ranked path is
// laid first, matching the established deposit order.
package pheromone

import (
	"math"

	"github.com/katalvlaran/formica/design"
)

// Ranking bundles the colony's representative paths, selected externally
// per measure. Only the entries the configured (variant, measure, strength,
// antipheromone) combination dispatches on must be non-nil.
//
// BestCombined and WorstCombined are ranked arrays: index 0 is the best
// (resp. worst) path, index 1 the second, index 2 the third.
type Ranking struct {
	BestCBO  *design.Path // best path w.r.t. CBO
	BestNAC  *design.Path // best path w.r.t. NAC
	BestATMR *design.Path // best path w.r.t. ATMR; tracked, never deposited

	BestCombined [3]*design.Path // ranked best paths w.r.t. Combined

	WorstCBO *design.Path // worst path w.r.t. CBO
	WorstNAC *design.Path // worst path w.r.t. NAC

	WorstCombined [3]*design.Path // ranked worst paths w.r.t. Combined
}

// Update applies one iteration's pheromone update to m in place.
//
// Contracts:
//   - m non-nil; colony non-empty with non-nil paths; p validated.
//   - 0 <= iteration <= p.Iterations.
//   - rank supplies every path the configured dispatch needs.
//
// Errors: configuration-family sentinels for impossible combinations,
// invariant-family sentinels for missing inputs and numeric violations.
// An iteration either fully applies or returns an error; there is no
// partial-failure mode beyond the cells already written when a later
// contract check fails upstream of any write.
//
// Complexity: O(|colony| * Len) for SimpleACO, O(K * Len) for MMAS.
func Update(m *Matrix, colony []*design.Path, rank Ranking, iteration int, p Params) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(colony) == 0 {
		return ErrEmptyColony
	}
	if err := p.Validate(); err != nil {
		return err
	}

	switch p.Variant {
	case SimpleACO:
		return simpleACOUpdate(m, colony, rank, iteration, p)
	case MMAS:
		return mmasUpdate(m, rank, iteration, p)
	default:
		return ErrUnknownVariant
	}
}

// simpleACOUpdate lays pheromone for every ant in the colony, then - when
// subtractive antipheromone is enabled, the phase is configured, and the
// run is still inside its exploratory window - lays antipheromone for the
// single worst path under the active measure (CBO or Combined only).
func simpleACOUpdate(m *Matrix, colony []*design.Path, rank Ranking, iteration int, p Params) error {
	// Firstly, lay pheromone for every ant in the colony.
	var (
		i   int
		err error
	)
	for i = 0; i < len(colony); i++ {
		if colony[i] == nil {
			return ErrNilPath
		}
		if err = layPheromone(m, colony[i], p); err != nil {
			return err
		}
	}

	// Secondly, is there antipheromone to lay?
	if !p.SubtractiveAntipheromone || p.AntipheromonePhasePct <= 0 {
		return nil
	}

	var pct int
	pct, err = progressPercent(iteration, p.Iterations)
	if err != nil {
		return err
	}
	if pct >= p.AntipheromonePhasePct {
		// Past the exploratory stage: deposit only.
		return nil
	}

	var worst *design.Path
	switch p.Measure {
	case MeasureCBO:
		worst = rank.WorstCBO
	case MeasureCombined:
		worst = rank.WorstCombined[0]
	default:
		// NAC (and ATMR) have no subtractive branch under SimpleACO.
		return ErrMeasureUnsupported
	}
	if worst == nil {
		return ErrMissingRank
	}

	return layAntipheromone(m, worst, p)
}

// mmasUpdate lays pheromone for the measure's elite subset, then optionally
// lays antipheromone for the measure's worst subset inside the exploratory
// window.
func mmasUpdate(m *Matrix, rank Ranking, iteration int, p Params) error {
	var err error

	switch p.Measure {
	case MeasureCBO:
		if rank.BestCBO == nil {
			return ErrMissingRank
		}
		if err = layPheromone(m, rank.BestCBO, p); err != nil {
			return err
		}

	case MeasureNAC:
		if rank.BestNAC == nil {
			return ErrMissingRank
		}
		if err = layPheromone(m, rank.BestNAC, p); err != nil {
			return err
		}

	case MeasureCombined:
		if err = layRanked(m, rank.BestCombined, p.PheromoneStrength, p, layPheromone); err != nil {
			return err
		}

	default:
		return ErrMeasureUnsupported
	}

	// Optionally perform the antipheromone update.
	if !p.MMASAntipheromone {
		return nil
	}

	var pct int
	pct, err = progressPercent(iteration, p.Iterations)
	if err != nil {
		return err
	}
	if pct >= p.AntipheromonePhasePct {
		return nil
	}

	switch p.Measure {
	case MeasureCBO:
		if rank.WorstCBO == nil {
			return ErrMissingRank
		}

		return layAntipheromone(m, rank.WorstCBO, p)

	case MeasureNAC:
		if rank.WorstNAC == nil {
			return ErrMissingRank
		}

		return layAntipheromone(m, rank.WorstNAC, p)

	case MeasureCombined:
		return layRanked(m, rank.WorstCombined, p.AntipheromoneStrength, p, layAntipheromone)

	default:
		return ErrMeasureUnsupported
	}
}

// layRanked lays for the top-K of a ranked triple, K = strength, iterating
// K down to 1 (the Kth-ranked path first). lay is either layPheromone or
// layAntipheromone.
func layRanked(
	m *Matrix,
	ranked [3]*design.Path,
	strength Strength,
	p Params,
	lay func(*Matrix, *design.Path, Params) error,
) error {
	if strength < StrengthSingle || strength > StrengthTriple {
		return ErrBadStrength
	}

	var (
		k   int
		err error
	)
	for k = int(strength); k >= 1; k-- {
		if ranked[k-1] == nil {
			return ErrMissingRank
		}
		if err = lay(m, ranked[k-1], p); err != nil {
			return err
		}
	}

	return nil
}

// progressPercent maps the iteration counter onto [0,100]:
// floor(100 * iteration / total).
//
// Contracts: 0 <= iteration <= total; total >= 1 (Params.Validate).
//
// Complexity: O(1).
func progressPercent(iteration, total int) (int, error) {
	if iteration < 0 || iteration > total {
		return 0, ErrIterationOverrun
	}

	pct := int(math.Floor(100.0 * float64(iteration) / float64(total)))
	if pct < 0 || pct > 100 {
		return 0, ErrIterationOverrun
	}

	return pct, nil
}
