// Package pheromone: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// pheromone package. All operators MUST return these sentinels and tests
// MUST check them via errors.Is. No operator panics on caller input.
package pheromone

import (
	"errors"
	"fmt"
)

// NOTE ON FAMILIES
// ----------------
// Every failure here is a contract violation, but two different contracts
// exist: the run's configuration (wrong variant/measure/knob combination,
// detectable before any iteration) and the numeric/shape invariants that
// must hold while iterating. Each specific sentinel wraps exactly one of
// the two family sentinels, so callers can match either level:
//
//	errors.Is(err, ErrBadStrength)   // the precise condition
//	errors.Is(err, ErrConfiguration) // the family
var (
	// ErrConfiguration is the family sentinel for invalid parameter or
	// dispatch combinations. These are bugs in run setup, not in data.
	ErrConfiguration = errors.New("pheromone: configuration error")

	// ErrInvariant is the family sentinel for violated numeric or shape
	// invariants observed while operating on matrices, paths, or rankings.
	ErrInvariant = errors.New("pheromone: invariant violation")
)

// Configuration-family sentinels.
var (
	// ErrUnknownVariant rejects an algorithm variant outside {SimpleACO, MMAS}.
	ErrUnknownVariant = fmt.Errorf("%w: unknown algorithm variant", ErrConfiguration)

	// ErrUnknownMeasure rejects a fitness measure outside the declared enum.
	ErrUnknownMeasure = fmt.Errorf("%w: unknown fitness measure", ErrConfiguration)

	// ErrMeasureUnsupported rejects a measure the active branch cannot
	// dispatch on (ATMR for any deposit; NAC for Simple-ACO antipheromone).
	ErrMeasureUnsupported = fmt.Errorf("%w: measure unsupported in this branch", ErrConfiguration)

	// ErrBadStrength rejects a pheromone/antipheromone strength outside 1..3.
	ErrBadStrength = fmt.Errorf("%w: strength must be single, double or triple", ErrConfiguration)

	// ErrBadRho rejects an evaporation rate outside [0,1].
	ErrBadRho = fmt.Errorf("%w: rho must lie in [0,1]", ErrConfiguration)

	// ErrBadMu rejects a negative or non-finite reinforcement exponent.
	ErrBadMu = fmt.Errorf("%w: mu must be finite and >= 0", ErrConfiguration)

	// ErrBadPhi rejects a negative or non-finite antipheromone decay.
	ErrBadPhi = fmt.Errorf("%w: phi must be finite and >= 0", ErrConfiguration)

	// ErrBadPhase rejects an antipheromone phase percentage outside [0,100].
	ErrBadPhase = fmt.Errorf("%w: antipheromone phase must lie in [0,100]", ErrConfiguration)

	// ErrBadBounds rejects MMAS bounds unless 0 < TauMin < TauMax.
	ErrBadBounds = fmt.Errorf("%w: MMAS bounds need 0 < TauMin < TauMax", ErrConfiguration)

	// ErrBadIterations rejects a non-positive configured iteration total.
	ErrBadIterations = fmt.Errorf("%w: iteration total must be >= 1", ErrConfiguration)

	// ErrAntipheromoneDisabled rejects an antipheromone deposit when the
	// active variant's antipheromone toggle is off.
	ErrAntipheromoneDisabled = fmt.Errorf("%w: antipheromone disabled for variant", ErrConfiguration)
)

// Invariant-family sentinels.
var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvariant)

	// ErrBadSize indicates a requested matrix size < 1.
	ErrBadSize = fmt.Errorf("%w: matrix size must be >= 1", ErrInvariant)

	// ErrIndexOutOfRange indicates a matrix coordinate outside [0, Size).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvariant)

	// ErrNonFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf encountered", ErrInvariant)

	// ErrNilPath indicates a nil *design.Path where one is required.
	ErrNilPath = fmt.Errorf("%w: nil path", ErrInvariant)

	// ErrEmptyColony indicates an empty or nil colony passed to Update.
	ErrEmptyColony = fmt.Errorf("%w: colony is empty", ErrInvariant)

	// ErrMissingRank indicates that a ranked path the configured dispatch
	// needs (best/worst under the active measure) was not supplied.
	ErrMissingRank = fmt.Errorf("%w: required ranked path missing", ErrInvariant)

	// ErrFitnessOutOfRange indicates a goodness complement outside [0,1];
	// fitness pre-scaling is the evaluator's responsibility.
	ErrFitnessOutOfRange = fmt.Errorf("%w: fitness outside [0,1]", ErrInvariant)

	// ErrDegenerateMatrix indicates elitist evaporation over a matrix whose
	// cells are all equal (highest == lowest), leaving the median undefined.
	ErrDegenerateMatrix = fmt.Errorf("%w: elitist evaporation needs highest > lowest", ErrInvariant)

	// ErrIterationOverrun indicates iteration < 0 or beyond the configured
	// total; the progress percentage would leave [0,100].
	ErrIterationOverrun = fmt.Errorf("%w: iteration outside configured total", ErrInvariant)
)
