// Package pheromone - Matrix: the shared pheromone table.
//
// Matrix is a square, dense table of pheromone values over design-element
// indices, stored row-major in a flat slice for cache friendliness. The
// table is kept symmetric by its writers: every deposit mirrors (i,j) to
// (j,i); the matrix itself enforces nothing beyond bounds.
//
// Concurrency: single writer by construction. The operators in this package
// run synchronously inside one iteration of an external control loop; any
// caller that parallelizes colony construction must serialize matrix writes.
package pheromone

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Matrix is a square pheromone table of size n, created once per run with a
// uniform initial value and mutated in place every iteration.
type Matrix struct {
	n     int       // number of design-element indices
	cells []float64 // flat backing storage, length == n*n, row-major
}

// NewMatrix creates an n×n matrix with every cell at initial.
//
// Contracts:
//   - n >= 1.
//   - initial must be finite.
//
// Complexity: O(n^2) time and memory.
func NewMatrix(n int, initial float64) (*Matrix, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		return nil, ErrNonFinite
	}

	cells := make([]float64, n*n)
	var i int
	for i = 0; i < len(cells); i++ {
		cells[i] = initial
	}

	return &Matrix{n: n, cells: cells}, nil
}

// Size returns the number of design-element indices n.
func (m *Matrix) Size() int {
	return m.n
}

// indexOf computes the flat index for (i, j) or reports ErrIndexOutOfRange.
//
// Complexity: O(1).
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n {
		return 0, ErrIndexOutOfRange
	}
	if j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return i*m.n + j, nil
}

// At returns the stored value at (i, j) with no bounds transformation.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return m.cells[idx], nil
}

// Set overwrites the value at (i, j). The caller owns symmetry and any
// range clamping; Set applies neither.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.cells[idx] = v

	return nil
}

// at reads (i, j) without bounds checks. Operators call it only with
// coordinates pre-validated against Size.
func (m *Matrix) at(i, j int) float64 {
	return m.cells[i*m.n+j]
}

// set writes (i, j) without bounds checks; same pre-validation contract.
func (m *Matrix) set(i, j int, v float64) {
	m.cells[i*m.n+j] = v
}

// setSymmetric writes v to (i, j) and mirrors it to (j, i).
func (m *Matrix) setSymmetric(i, j int, v float64) {
	m.cells[i*m.n+j] = v
	m.cells[j*m.n+i] = v
}

// minMax scans the whole table and returns its lowest and highest values.
// Both symmetric halves are scanned independently; symmetry is a writer
// convention, not a storage guarantee.
//
// Complexity: O(n^2).
func (m *Matrix) minMax() (lowest, highest float64) {
	lowest = m.cells[0]
	highest = m.cells[0]

	var (
		k int
		v float64
	)
	for k = 1; k < len(m.cells); k++ {
		v = m.cells[k]
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	return lowest, highest
}

// Clone returns a deep copy of the matrix.
//
// Complexity: O(n^2) time and memory.
func (m *Matrix) Clone() *Matrix {
	cells := make([]float64, len(m.cells))
	copy(cells, m.cells)

	return &Matrix{n: m.n, cells: cells}
}

// Show dumps the table row by row through the supplied logger at Debug
// level. Pure side channel: no return value, no effect on control flow.
// A nil logger falls back to slog.Default().
//
// Complexity: O(n^2).
func (m *Matrix) Show(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}

	var (
		i, j int
		b    strings.Builder
	)
	for i = 0; i < m.n; i++ {
		b.Reset()
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(m.at(i, j), 'f', 6, 64))
		}
		l.Debug("pheromone row", "i", i, "cells", b.String())
	}
}
