// Package pheromone_test - shared helpers for the operator tests.
//
// Helpers build small matrices, nodes and paths, and assert the structural
// properties every operation must preserve (symmetry above all).
package pheromone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formica/design"
	"github.com/katalvlaran/formica/pheromone"
)

// mustMatrix builds an n×n matrix with every cell at initial.
func mustMatrix(t *testing.T, n int, initial float64) *pheromone.Matrix {
	t.Helper()
	m, err := pheromone.NewMatrix(n, initial)
	require.NoError(t, err)

	return m
}

// mustPath builds a validated path from nodes with the given fitness.
func mustPath(t *testing.T, fit design.Fitness, nodes ...design.Node) *design.Path {
	t.Helper()
	p, err := design.NewPath(nodes, fit)
	require.NoError(t, err)

	return p
}

// Node shorthands: nest/method/attribute/end-of-class at a given index.

func nest(id int) design.Node {
	return design.Node{ID: design.ElementID(id), Kind: design.KindNest}
}

func meth(id int) design.Node {
	return design.Node{ID: design.ElementID(id), Kind: design.KindMethod}
}

func attr(id int) design.Node {
	return design.Node{ID: design.ElementID(id), Kind: design.KindAttribute}
}

func eoc(id int) design.Node {
	return design.Node{ID: design.ElementID(id), Kind: design.KindEndOfClass}
}

// cellAt reads one matrix cell, failing the test on bounds errors.
func cellAt(t *testing.T, m *pheromone.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireSymmetric asserts matrix[i][j] == matrix[j][i] for all i, j.
func requireSymmetric(t *testing.T, m *pheromone.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < m.Size(); i++ {
		for j = i + 1; j < m.Size(); j++ {
			require.Equal(t, cellAt(t, m, i, j), cellAt(t, m, j, i),
				"asymmetry at (%d,%d)", i, j)
		}
	}
}

// uniformFitness returns a Fitness with every measure at v.
func uniformFitness(v float64) design.Fitness {
	return design.Fitness{CBO: v, NAC: v, ATMR: v, Combined: v}
}
