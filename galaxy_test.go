package barneshut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeGalaxySize(t *testing.T) {
	g := InitializeGalaxy(10, 1e22, 5e22, 5e22)
	assert.Len(t, g, 10)
	assert.Equal(t, Vec2{}, g[0].Position, "the central body sits at the origin")
	assert.Equal(t, 1e22, g[0].Mass)
}

func TestInitializeGalaxyZeroBodies(t *testing.T) {
	assert.Nil(t, InitializeGalaxy(0, 1, 1, 1))
}

func TestInitializeUniverseFlattensGalaxies(t *testing.T) {
	g0 := InitializeGalaxy(3, 1, 1, 1)
	g1 := InitializeGalaxy(4, 1, 1, 1)
	sim := InitializeUniverse([]Galaxy{g0, g1}, 1e23)

	assert.Len(t, sim.Bodies, 7)
	assert.Equal(t, 1e23, sim.Extent)
}

func TestGalaxyCenter(t *testing.T) {
	g := Galaxy{
		{Position: Vec2{X: 0, Y: 0}},
		{Position: Vec2{X: 10, Y: 0}},
		{Position: Vec2{X: 0, Y: 10}},
		{Position: Vec2{X: 10, Y: 10}},
	}
	c := GalaxyCenter(g)
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
}

func TestGalaxyPushOppositeDirections(t *testing.T) {
	g0 := Galaxy{{Position: Vec2{X: 0, Y: 0}}}
	g1 := Galaxy{{Position: Vec2{X: 10, Y: 0}}}

	GalaxyPush(g0, g1, 5)

	assert.InDelta(t, 5, g0[0].Velocity.X, 1e-9)
	assert.InDelta(t, -5, g1[0].Velocity.X, 1e-9)
}

func TestGalaxyPushSamePositionDoesNotPanic(t *testing.T) {
	g0 := Galaxy{{Position: Vec2{X: 5, Y: 5}}}
	g1 := Galaxy{{Position: Vec2{X: 5, Y: 5}}}

	assert.NotPanics(t, func() { GalaxyPush(g0, g1, 1) })
}

// TestGalaxyCentralMassExertsForce guards against a regression where
// the central body InitializeGalaxy places at the exact origin was
// dropped from a fresh, origin-centered QuadTree (the root's own
// subdivision separators sit on X=0 and Y=0), leaving the disc with
// nothing to orbit. After one tick every orbiting body must carry a
// nonzero net force pulling it back toward the center.
func TestGalaxyCentralMassExertsForce(t *testing.T) {
	g := InitializeGalaxy(50, 1e22, 5e22, 5e22)
	sim := InitializeUniverse([]Galaxy{g}, 1e23)

	sim.Update(1)

	for i, b := range sim.Bodies[1:] {
		assert.NotZero(t, b.Force.X+b.Force.Y, "orbiting body %d felt no force from the central mass", i+1)
	}
}
