// Package pheromone - class freeze: pinning stabilized pairings.
//
// Once a class is judged stable, every (method, attribute) pair it contains
// is forced to FreezeDelta in both symmetric cells - a reinforcement so
// large relative to per-iteration deltas that future construction keeps the
// pairing intact. The operation is one-shot and non-reversible from this
// package's perspective: no unfreeze exists. Frozen cells remain subject to
// ordinary evaporation afterwards.
package pheromone

import (
	"log/slog"
	"strconv"

	"github.com/katalvlaran/formica/design"
)

// FreezeUpdate pins every (method, attribute) pair of every class in
// freezeList to FreezeDelta, written symmetrically.
//
// Contracts:
//   - m non-nil; classes non-nil (an empty list is a no-op).
//   - every element index fits the matrix.
//
// Errors: ErrNilMatrix, ErrIndexOutOfRange.
//
// Complexity: O(sum over classes of |methods|*|attributes|).
func FreezeUpdate(m *Matrix, freezeList []*design.Class) error {
	if m == nil {
		return ErrNilMatrix
	}

	var (
		c       *design.Class
		methods []design.Element
		attrs   []design.Element
		i, j    int
	)

	// Validate every index before the first write, so a bad registry does
	// not leave the table half-frozen.
	for _, c = range freezeList {
		if c == nil {
			continue
		}
		for _, el := range c.Methods() {
			if int(el.ID) >= m.n {
				return ErrIndexOutOfRange
			}
		}
		for _, el := range c.Attributes() {
			if int(el.ID) >= m.n {
				return ErrIndexOutOfRange
			}
		}
	}

	for _, c = range freezeList {
		if c == nil {
			continue
		}
		methods = c.Methods()
		attrs = c.Attributes()

		for i = 0; i < len(methods); i++ {
			for j = 0; j < len(attrs); j++ {
				m.setSymmetric(int(methods[i].ID), int(attrs[j].ID), FreezeDelta)
			}
		}
	}

	return nil
}

// LogFreezeList renders the freeze list through the supplied logger at
// Debug level: one record per class with its method and attribute elements.
// Pure diagnostic side channel; a nil logger falls back to slog.Default().
func LogFreezeList(l *slog.Logger, freezeList []*design.Class) {
	if l == nil {
		l = slog.Default()
	}

	for _, c := range freezeList {
		if c == nil {
			continue
		}

		methods := c.Methods()
		attrs := c.Attributes()

		mAttrs := make([]slog.Attr, 0, len(methods))
		for _, el := range methods {
			mAttrs = append(mAttrs, slog.String(el.Name, strconv.Itoa(int(el.ID))))
		}
		aAttrs := make([]slog.Attr, 0, len(attrs))
		for _, el := range attrs {
			aAttrs = append(aAttrs, slog.String(el.Name, strconv.Itoa(int(el.ID))))
		}

		l.Debug("class in freeze list",
			slog.String("class", c.Name()),
			slog.Attr{Key: "methods", Value: slog.GroupValue(mAttrs...)},
			slog.Attr{Key: "attributes", Value: slog.GroupValue(aAttrs...)},
		)
	}
}
