// Package pheromone_test exercises the deposit kernels through the test
// bridge: delta computation, the symmetric edge walk with class-boundary
// restarts, MMAS clamping, and the three antipheromone policies.
package pheromone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formica/design"
	"github.com/katalvlaran/formica/pheromone"
)

const depositTol = 1e-12

func TestDelta_RangeAndEndpoints(t *testing.T) {
	p := pheromone.DefaultParams()
	p.Measure = pheromone.MeasureCBO
	p.Mu = 2.0

	// f=1 (worst) -> delta=0; f=0 (best) -> delta=1.
	worst := mustPath(t, uniformFitness(1.0), nest(0), meth(1), eoc(2))
	best := mustPath(t, uniformFitness(0.0), nest(0), meth(1), eoc(2))

	d, err := pheromone.ExportedDelta(worst, p)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	d, err = pheromone.ExportedDelta(best, p)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	// f=0.2, mu=2 -> (1-0.2)^2 = 0.64.
	mid := mustPath(t, design.Fitness{CBO: 0.2}, nest(0), meth(1), eoc(2))
	d, err = pheromone.ExportedDelta(mid, p)
	require.NoError(t, err)
	require.InDelta(t, 0.64, d, depositTol)
}

func TestDelta_MeasureRouting(t *testing.T) {
	path := mustPath(t, design.Fitness{CBO: 0.4, NAC: 0.3, Combined: 0.2, ATMR: 0.1},
		nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams()
	p.Mu = 1.0

	p.Measure = pheromone.MeasureNAC
	d, err := pheromone.ExportedDelta(path, p)
	require.NoError(t, err)
	require.InDelta(t, 0.7, d, depositTol)

	p.Measure = pheromone.MeasureCombined
	d, err = pheromone.ExportedDelta(path, p)
	require.NoError(t, err)
	require.InDelta(t, 0.8, d, depositTol)

	// ATMR is tracked but never drives deposit.
	p.Measure = pheromone.MeasureATMR
	_, err = pheromone.ExportedDelta(path, p)
	require.ErrorIs(t, err, pheromone.ErrMeasureUnsupported)
	require.ErrorIs(t, err, pheromone.ErrConfiguration)
}

func TestLayPheromone_SimpleACO_Scenario(t *testing.T) {
	// One path, CBO fitness 0.2, mu=2 -> delta=0.64 added to both symmetric
	// entries of every edge; no clamping under SimpleACO.
	m := mustMatrix(t, 4, 0.5)
	path := mustPath(t, design.Fitness{CBO: 0.2},
		nest(0), meth(1), attr(2), eoc(3))

	p := pheromone.DefaultParams()
	p.Mu = 2.0

	require.NoError(t, pheromone.ExportedLayPheromone(m, path, p))

	// Edges (0,1) and (1,2); the chain stops before the terminator.
	require.InDelta(t, 1.14, cellAt(t, m, 0, 1), depositTol)
	require.InDelta(t, 1.14, cellAt(t, m, 1, 0), depositTol)
	require.InDelta(t, 1.14, cellAt(t, m, 1, 2), depositTol)
	require.InDelta(t, 1.14, cellAt(t, m, 2, 1), depositTol)
	// Untouched cells keep the initial value.
	require.Equal(t, 0.5, cellAt(t, m, 0, 2))
	require.Equal(t, 0.5, cellAt(t, m, 2, 3))
	requireSymmetric(t, m)
}

func TestLayPheromone_TerminatorRestartsChain(t *testing.T) {
	// nest(0) m(1) | eoc(2) | m(3) a(4) | eoc(5): edges (0,1) and (3,4) only.
	// No edge touches a terminator, and no edge crosses the class boundary
	// from 1 to 3.
	m := mustMatrix(t, 6, 0.5)
	path := mustPath(t, design.Fitness{CBO: 0.5},
		nest(0), meth(1), eoc(2), meth(3), attr(4), eoc(5))

	require.NoError(t, pheromone.ExportedLayPheromone(m, path, pheromone.DefaultParams()))

	require.InDelta(t, 1.0, cellAt(t, m, 0, 1), depositTol)
	require.InDelta(t, 1.0, cellAt(t, m, 3, 4), depositTol)

	// Boundary and terminator edges stay untouched.
	for _, c := range [][2]int{{1, 2}, {2, 3}, {1, 3}, {4, 5}} {
		require.Equal(t, 0.5, cellAt(t, m, c[0], c[1]), "edge (%d,%d) must not be laid", c[0], c[1])
	}
	requireSymmetric(t, m)
}

func TestLayPheromone_MMAS_ClampsAtTauMax(t *testing.T) {
	// A cell at 0.95 receiving ~0.1 clamps to TauMax=0.99, not 1.05.
	m := mustMatrix(t, 3, 0.95)
	path := mustPath(t, design.Fitness{CBO: 0.9}, nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams()
	p.Variant = pheromone.MMAS
	p.TauMin = 0.01
	p.TauMax = 0.99

	require.NoError(t, pheromone.ExportedLayPheromone(m, path, p))

	require.Equal(t, 0.99, cellAt(t, m, 0, 1))
	require.Equal(t, 0.99, cellAt(t, m, 1, 0))
	requireSymmetric(t, m)
}

func TestLayAntipheromone_SimpleACO_MultipliesByPhi(t *testing.T) {
	m := mustMatrix(t, 3, 0.8)
	path := mustPath(t, design.Fitness{CBO: 0.5}, nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams()
	p.SubtractiveAntipheromone = true
	p.Phi = 0.5

	require.NoError(t, pheromone.ExportedLayAntipheromone(m, path, p))

	require.InDelta(t, 0.4, cellAt(t, m, 0, 1), depositTol)
	require.InDelta(t, 0.4, cellAt(t, m, 1, 0), depositTol)
	require.Equal(t, 0.8, cellAt(t, m, 0, 2), "edges off the path keep their value")
	requireSymmetric(t, m)
}

func TestLayAntipheromone_SimpleACO_RequiresToggle(t *testing.T) {
	m := mustMatrix(t, 3, 0.8)
	path := mustPath(t, design.Fitness{CBO: 0.5}, nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams() // SubtractiveAntipheromone off
	err := pheromone.ExportedLayAntipheromone(m, path, p)
	require.ErrorIs(t, err, pheromone.ErrAntipheromoneDisabled)
	require.ErrorIs(t, err, pheromone.ErrConfiguration)
}

func TestLayAntipheromone_MMAS_ReduceByHalf_FloorsAtTauMin(t *testing.T) {
	m := mustMatrix(t, 3, 0.05)
	path := mustPath(t, design.Fitness{CBO: 0.5}, nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams()
	p.Variant = pheromone.MMAS
	p.MMASAntipheromone = true
	p.MMASReduceByHalf = true
	p.TauMin = 0.04
	p.TauMax = 0.99

	require.NoError(t, pheromone.ExportedLayAntipheromone(m, path, p))

	// 0.05*0.5 = 0.025 floors at TauMin.
	require.Equal(t, 0.04, cellAt(t, m, 0, 1))
	require.Equal(t, 0.04, cellAt(t, m, 1, 0))
	requireSymmetric(t, m)

	// Above the floor the halving applies untouched: 0.8 -> 0.4.
	m2 := mustMatrix(t, 3, 0.8)
	require.NoError(t, pheromone.ExportedLayAntipheromone(m2, path, p))
	require.InDelta(t, 0.4, cellAt(t, m2, 0, 1), depositTol)
}

func TestLayAntipheromone_MMAS_SetToMinimum(t *testing.T) {
	m := mustMatrix(t, 3, 0.8)
	path := mustPath(t, design.Fitness{CBO: 0.5}, nest(0), meth(1), eoc(2))

	p := pheromone.DefaultParams()
	p.Variant = pheromone.MMAS
	p.MMASAntipheromone = true
	p.MMASReduceByHalf = false
	p.TauMin = 0.01
	p.TauMax = 0.99

	require.NoError(t, pheromone.ExportedLayAntipheromone(m, path, p))

	require.Equal(t, 0.01, cellAt(t, m, 0, 1))
	require.Equal(t, 0.01, cellAt(t, m, 1, 0))
	requireSymmetric(t, m)
}

func TestLay_BoundsAndNilRejections(t *testing.T) {
	p := pheromone.DefaultParams()

	// Path indices beyond the matrix are rejected before any write.
	m := mustMatrix(t, 2, 0.5)
	wide := mustPath(t, design.Fitness{CBO: 0.5}, nest(0), meth(5), eoc(1))
	err := pheromone.ExportedLayPheromone(m, wide, p)
	require.ErrorIs(t, err, pheromone.ErrIndexOutOfRange)
	require.Equal(t, 0.5, cellAt(t, m, 0, 1), "no partial writes on rejection")

	require.ErrorIs(t, pheromone.ExportedLayPheromone(nil, wide, p), pheromone.ErrNilMatrix)
	require.ErrorIs(t, pheromone.ExportedLayPheromone(m, nil, p), pheromone.ErrNilPath)
}
