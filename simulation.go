package barneshut

import (
	"time"

	"github.com/ollenurb/nbody/bhlog"
	"github.com/ollenurb/nbody/metrics"
)

// Simulation owns a mutable set of bodies confined, nominally, to a
// square world [-Extent, Extent] on both axes.
type Simulation struct {
	Bodies []Body
	Extent float64
}

// NewFixtureSimulation returns the four-body smoke-test universe from
// the Rust source's Simulation::test_init (original_source/src/simulation/mod.rs),
// useful as a small, deterministic starting point for examples and
// manual exploration; the body positions, masses, and velocities are
// copied verbatim from that fixture.
func NewFixtureSimulation() *Simulation {
	return &Simulation{
		Extent: 256,
		Bodies: []Body{
			{Position: Vec2{X: 160, Y: 120}, Mass: 100, Velocity: Vec2{}},
			{Position: Vec2{X: 229, Y: 181}, Mass: 10, Velocity: Vec2{X: -0.1, Y: -0.1}},
			{Position: Vec2{X: 126, Y: 112}, Mass: 2, Velocity: Vec2{X: 0.1, Y: 0.1}},
			{Position: Vec2{X: 201, Y: 205}, Mass: 3, Velocity: Vec2{X: -0.1, Y: -0.1}},
		},
	}
}

// BodiesSnapshot returns a read-only copy of the simulation's bodies,
// for a renderer or any other caller that must not observe mutation
// mid-tick. The tree never retains a reference to these after a tick
// completes, so the copy here is cheap value-semantics, not a
// defensive deep clone of anything recursive.
func (s *Simulation) BodiesSnapshot() []Body {
	out := make([]Body, len(s.Bodies))
	copy(out, s.Bodies)
	return out
}

// rootBound returns the world boundary a fresh QuadTree should be
// built on: the square [-Extent, Extent]^2, expressed as the
// top-left-corner-plus-size form Bound expects.
func (s *Simulation) rootBound() Bound {
	side := 2 * s.Extent
	return Bound{X: -s.Extent, Y: -s.Extent, W: side, H: side}
}

// Update advances the simulation by one tick of size dt: cull bodies
// that have left the world, rebuild the quadtree from scratch,
// compute each remaining body's net force via Barnes-Hut, then
// integrate position and velocity. The logging and metrics calls
// around it are pure instrumentation; removing them would not change
// any body's trajectory.
func (s *Simulation) Update(dt float64) {
	start := time.Now()

	before := len(s.Bodies)
	s.cull()
	culled := before - len(s.Bodies)
	if culled > 0 {
		metrics.BodiesCulledTotal.Add(float64(culled))
		bhlog.Debug("culled bodies leaving the simulation extent", "count", culled)
	}

	tree := NewQuadTree(s.rootBound())
	for i := range s.Bodies {
		s.Bodies[i].ResetForce()
		tree.Insert(s.Bodies[i])
	}

	for i := range s.Bodies {
		tree.ComputeForce(&s.Bodies[i])
	}

	for i := range s.Bodies {
		s.Bodies[i].UpdatePosition(dt)
	}

	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.TreeLeaves.Set(float64(tree.CountLeaves()))
	metrics.BodiesActive.Set(float64(len(s.Bodies)))
}

// cull removes bodies whose position has drifted outside the square
// [-Extent, Extent]^2. This is a silent policy choice, not an error:
// bodies that escape the universe are simply gone from subsequent
// ticks.
func (s *Simulation) cull() {
	kept := s.Bodies[:0]
	for _, b := range s.Bodies {
		if b.Position.X >= -s.Extent && b.Position.X <= s.Extent &&
			b.Position.Y >= -s.Extent && b.Position.Y <= s.Extent {
			kept = append(kept, b)
		}
	}
	s.Bodies = kept
}
