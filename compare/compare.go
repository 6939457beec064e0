// Package compare is a test-only oracle: it runs gonum's own planar
// Barnes-Hut solver (gonum.org/v1/gonum/spatial/barneshut) over the
// same bodies this module's QuadTree sees, so tests can cross-check
// the θ=0 degenerate-to-brute-force law (spec.md §8) against an
// independent implementation rather than only against this module's
// own direct-sum helper.
package compare

import (
	"math"

	gonumbh "gonum.org/v1/gonum/spatial/barneshut"

	"github.com/ollenurb/nbody"
)

// particle adapts a barneshut.Body to gonum's Particle2 interface.
type particle struct {
	pos  gonumbh.Vector2
	mass float64
}

func (p particle) Coord2() gonumbh.Vector2 { return p.pos }
func (p particle) Mass() float64           { return p.mass }

// ForceOn returns the net force gonum's Barnes-Hut solver computes on
// body bodies[i], using the softened gravity kernel consistent with
// this module's Body.UpdateForce (G*m1*m2/(r^2+eps^2) along the unit
// separation vector), at the given opening threshold theta.
func ForceOn(bodies []barneshut.Body, i int, theta, g, epsilon float64) barneshut.Vec2 {
	particles := make([]gonumbh.Particle2, len(bodies))
	for j, b := range bodies {
		particles[j] = particle{pos: gonumbh.Vector2{X: b.Position.X, Y: b.Position.Y}, mass: b.Mass}
	}
	plane := gonumbh.NewPlane(particles)

	force := func(p1, p2 gonumbh.Particle2, m1, m2 float64, v gonumbh.Vector2) gonumbh.Vector2 {
		d2 := v.X*v.X + v.Y*v.Y
		denom := d2 + epsilon*epsilon
		if denom == 0 {
			return gonumbh.Vector2{}
		}
		r := math.Sqrt(d2)
		if r == 0 {
			return gonumbh.Vector2{}
		}
		f := (g * m1 * m2) / denom
		return v.Scale(f / r)
	}

	v := plane.ForceOn(particles[i], theta, force)
	return barneshut.Vec2{X: v.X, Y: v.Y}
}
