package barneshut_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	barneshut "github.com/ollenurb/nbody"
	"github.com/ollenurb/nbody/compare"
)

// TestBarnesHutMatchesGonumOracleAtThetaZero cross-checks this
// module's own tree against an independent Barnes-Hut implementation
// (gonum.org/v1/gonum/spatial/barneshut) rather than only against this
// module's own direct-sum test helper, for the θ=0 degenerate-to-
// brute-force law from spec.md §8.
func TestBarnesHutMatchesGonumOracleAtThetaZero(t *testing.T) {
	bodies := []barneshut.Body{
		{Position: barneshut.Vec2{X: 0, Y: 0}, Mass: 4},
		{Position: barneshut.Vec2{X: 12, Y: 0}, Mass: 6},
		{Position: barneshut.Vec2{X: -5, Y: 9}, Mass: 3},
	}

	g, epsilon, theta := 1.0, 0.0, 0.0
	origG, origEps, origTheta := barneshut.G, barneshut.Epsilon, barneshut.Theta
	barneshut.SetParams(g, epsilon, theta)
	t.Cleanup(func() { barneshut.SetParams(origG, origEps, origTheta) })

	tree := barneshut.NewQuadTree(barneshut.Bound{X: -100, Y: -100, W: 200, H: 200})
	for _, b := range bodies {
		tree.Insert(b)
	}

	for i := range bodies {
		probe := bodies[i]
		probe.ResetForce()
		tree.ComputeForce(&probe)

		oracle := compare.ForceOn(bodies, i, theta, g, epsilon)

		assert.True(t, scalar.EqualWithinAbs(probe.Force.X, oracle.X, 1e-9),
			"body %d: ours=%v oracle=%v", i, probe.Force, oracle)
		assert.True(t, scalar.EqualWithinAbs(probe.Force.Y, oracle.Y, 1e-9),
			"body %d: ours=%v oracle=%v", i, probe.Force, oracle)
	}
}

// TestLoadSimulationThenUpdateEndToEnd exercises the full host-facing
// surface: parse a file, advance a tick, read back a snapshot.
func TestLoadSimulationThenUpdateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bodies.txt"
	contents := "100\n0 0 0 0 1e10\n50 0 0 0 1\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	origG, origEps, origTheta := barneshut.G, barneshut.Epsilon, barneshut.Theta
	barneshut.SetParams(6.674e-11, 0, 0.5)
	t.Cleanup(func() { barneshut.SetParams(origG, origEps, origTheta) })

	sim, err := barneshut.LoadSimulation(path)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, sim.Extent)

	sim.Update(1e-3)
	snap := sim.BodiesSnapshot()
	assert.Len(t, snap, 2)
	assert.Less(t, snap[1].Velocity.X, 0.0)
}
