// Package pheromone - algorithm parameters.
//
// Params is the explicit, immutable configuration consumed by every operator
// in this package. There is no package-level mutable state: a Params value is
// built once per run, validated once, and passed to Evaporate/Update/
// FreezeUpdate, which makes every operator a pure function of
// (matrix, colony, params, iteration).
package pheromone

import "math"

// Variant selects the ACO flavour driving deposit and bounds policy.
type Variant uint8

const (
	// SimpleACO - every ant deposits, values unbounded, optional
	// subtractive antipheromone during the exploratory phase.
	SimpleACO Variant = iota

	// MMAS - MAX-MIN Ant System: only ranked elites deposit and every
	// touched cell is clamped into [TauMin, TauMax].
	MMAS
)

// Measure selects the fitness scalar guiding deposit.
// MeasureATMR is tracked by collaborators but never selectable for update.
type Measure uint8

const (
	// MeasureCBO scores coupling between objects.
	MeasureCBO Measure = iota

	// MeasureNAC scores normalized elegance.
	MeasureNAC

	// MeasureATMR scores a cohesion-related measure; update never uses it.
	MeasureATMR

	// MeasureCombined scores the weighted combination of the above.
	MeasureCombined
)

// Strength is the ordinal count of ranked paths reinforced (or punished)
// under the Combined measure: top-K with K = Strength.
type Strength uint8

const (
	// StrengthSingle reinforces the best-ranked path only.
	StrengthSingle Strength = 1

	// StrengthDouble reinforces the best and second-best paths.
	StrengthDouble Strength = 2

	// StrengthTriple reinforces the best, second-best and third-best paths.
	StrengthTriple Strength = 3
)

const (
	// FreezeDelta is the reinforcement constant written by FreezeUpdate,
	// effectively infinite relative to per-iteration deltas.
	FreezeDelta = 1000000.0

	// elitistFactor bounds the proportional adjustment of elitist
	// evaporation so it perturbs the base decay instead of replacing it.
	elitistFactor = 0.02

	// mmasAntipheromoneFactor halves a cell under MMAS "reduce by half"
	// antipheromone before flooring at TauMin.
	mmasAntipheromoneFactor = 0.5
)

// Params configures one run. Values are read-only to the operators and must
// stay stable for the run's duration.
//
// Rho is the evaporation rate in [0,1]; cells decay by (1-Rho) per pass.
// Mu is the reinforcement exponent; deposit deltas are (1-fitness)^Mu.
// Phi is the Simple-ACO antipheromone decay multiplier.
// TauMin/TauMax bound MMAS cells; ignored under SimpleACO.
// AntipheromonePhasePct is the exploratory window: phased antipheromone is
// laid only while floor(100*iteration/Iterations) < AntipheromonePhasePct.
type Params struct {
	Variant Variant // ACO flavour
	Measure Measure // fitness scalar guiding deposit

	Rho float64 // evaporation rate, [0,1]
	Mu  float64 // reinforcement exponent, >= 0
	Phi float64 // Simple-ACO antipheromone decay, >= 0

	ElitistEvaporation bool // median-proportional decay instead of uniform

	TauMin float64 // MMAS lower pheromone bound
	TauMax float64 // MMAS upper pheromone bound

	SubtractiveAntipheromone bool // Simple-ACO antipheromone toggle
	MMASAntipheromone        bool // MMAS antipheromone toggle
	MMASReduceByHalf         bool // MMAS anti policy: halve+floor vs set-to-TauMin

	AntipheromonePhasePct int // exploratory window, percent of the run, [0,100]

	PheromoneStrength     Strength // ranked deposit count under Combined
	AntipheromoneStrength Strength // ranked antipheromone count under Combined

	Iterations int // configured iteration total, >= 1
}

// DefaultParams returns a conservative Simple-ACO configuration:
// CBO measure, rho=0.1, mu=1, phi=0.5, uniform evaporation, MMAS bounds
// 0.01/0.99 (inert under SimpleACO), single strengths, antipheromone off,
// 100 iterations.
func DefaultParams() Params {
	return Params{
		Variant:               SimpleACO,
		Measure:               MeasureCBO,
		Rho:                   0.1,
		Mu:                    1.0,
		Phi:                   0.5,
		TauMin:                0.01,
		TauMax:                0.99,
		PheromoneStrength:     StrengthSingle,
		AntipheromoneStrength: StrengthSingle,
		Iterations:            100,
	}
}

// Validate checks internal consistency of the configuration without touching
// matrices or paths. All rejections are ErrConfiguration-family sentinels.
//
// Complexity: O(1).
func (p Params) Validate() error {
	switch p.Variant {
	case SimpleACO, MMAS:
		// ok
	default:
		return ErrUnknownVariant
	}

	switch p.Measure {
	case MeasureCBO, MeasureNAC, MeasureATMR, MeasureCombined:
		// ok
	default:
		return ErrUnknownMeasure
	}

	if math.IsNaN(p.Rho) || p.Rho < 0 || p.Rho > 1 {
		return ErrBadRho
	}
	if math.IsNaN(p.Mu) || math.IsInf(p.Mu, 0) || p.Mu < 0 {
		return ErrBadMu
	}
	if math.IsNaN(p.Phi) || math.IsInf(p.Phi, 0) || p.Phi < 0 {
		return ErrBadPhi
	}
	if p.AntipheromonePhasePct < 0 || p.AntipheromonePhasePct > 100 {
		return ErrBadPhase
	}

	// MMAS bounds must form a proper interval; under SimpleACO they are
	// inert, so misconfigured bounds are tolerated there.
	if p.Variant == MMAS {
		if math.IsNaN(p.TauMin) || math.IsNaN(p.TauMax) ||
			p.TauMin <= 0 || p.TauMin >= p.TauMax {
			return ErrBadBounds
		}
	}

	if p.PheromoneStrength < StrengthSingle || p.PheromoneStrength > StrengthTriple {
		return ErrBadStrength
	}
	if p.AntipheromoneStrength < StrengthSingle || p.AntipheromoneStrength > StrengthTriple {
		return ErrBadStrength
	}

	if p.Iterations < 1 {
		return ErrBadIterations
	}

	return nil
}
