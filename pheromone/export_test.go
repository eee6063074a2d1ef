package pheromone

// Test-bridge for private operators.
//
// Exposes the unexported deposit/antipheromone/delta/progress kernels to the
// black-box pheromone_test package, so their contracts can be verified
// directly without widening the production API. Compiled only into the test
// binary.

var (
	// ExportedLayPheromone exposes layPheromone for white-box tests.
	ExportedLayPheromone = layPheromone

	// ExportedLayAntipheromone exposes layAntipheromone for white-box tests.
	ExportedLayAntipheromone = layAntipheromone

	// ExportedDelta exposes delta for white-box tests.
	ExportedDelta = delta

	// ExportedProgressPercent exposes progressPercent for white-box tests.
	ExportedProgressPercent = progressPercent
)
