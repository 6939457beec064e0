package barneshut

import (
	"math"
	"math/rand"
)

// Galaxy is a named collection of bodies meant to be pushed and
// merged as a unit, used by the "galaxy" and "collision" scenarios in
// cmd/barneshut.
type Galaxy []Body

// InitializeGalaxy builds a Galaxy of n bodies orbiting a single
// central mass: one body of mass centerMass at the origin, and n-1
// bodies scattered through an ellipse of half-widths spreadX, spreadY
// around it, each given the circular-orbit velocity appropriate to
// its distance from the center (assuming the central mass dominates,
// a standard simplifying approximation for seeding a disc galaxy).
// Called from cmd/barneshut as e.g. InitializeGalaxy(500, 1e22, 5e22,
// 5e22).
func InitializeGalaxy(n int, centerMass, spreadX, spreadY float64) Galaxy {
	if n <= 0 {
		return nil
	}
	g := make(Galaxy, 0, n)
	g = append(g, Body{Mass: centerMass})

	for i := 1; i < n; i++ {
		angle := rand.Float64() * 2 * math.Pi
		radiusFrac := rand.Float64()
		x := math.Cos(angle) * spreadX * radiusFrac
		y := math.Sin(angle) * spreadY * radiusFrac
		r := math.Hypot(x, y)

		var speed float64
		if r > 0 {
			speed = math.Sqrt(G * centerMass / r)
		}
		// Velocity perpendicular to the radius vector, for a roughly
		// circular orbit around the galaxy's center.
		vx, vy := 0.0, 0.0
		if r > 0 {
			vx = -y / r * speed
			vy = x / r * speed
		}

		mass := centerMass / float64(n) / 1e6
		if mass <= 0 {
			mass = 1
		}

		g = append(g, Body{
			Position: Vec2{X: x, Y: y},
			Velocity: Vec2{X: vx, Y: vy},
			Mass:     mass,
		})
	}
	return g
}

// InitializeUniverse flattens a set of galaxies into one Simulation
// bounded by [-extent, extent]^2.
func InitializeUniverse(galaxies []Galaxy, extent float64) *Simulation {
	var bodies []Body
	for _, g := range galaxies {
		bodies = append(bodies, g...)
	}
	return &Simulation{Bodies: bodies, Extent: extent}
}

// GalaxyCenter returns the unweighted average position of a galaxy's
// bodies.
func GalaxyCenter(g Galaxy) Vec2 {
	var sum Vec2
	for _, b := range g {
		sum = sum.Add(b.Position)
	}
	return sum.Div(float64(len(g)))
}

// GalaxyPush applies velocity v to every body of g0 and -v to every
// body of g1, directed along the line connecting the two galaxies'
// centers, so the pair drifts toward (or past) each other. The
// same-position degenerate case (distance == 0) is nudged by a small
// fixed offset to keep the push direction well defined.
func GalaxyPush(g0, g1 Galaxy, v float64) {
	c0 := GalaxyCenter(g0)
	c1 := GalaxyCenter(g1)

	delta := c1.Sub(c0)
	distance := delta.Norm()
	if distance == 0 {
		delta = Vec2{X: 1e-3, Y: 0}
		distance = 1e-3
	}

	dir0 := delta.Div(distance)
	dir1 := dir0.Scale(-1)

	for i := range g0 {
		g0[i].Velocity = g0[i].Velocity.Add(dir0.Scale(v))
	}
	for i := range g1 {
		g1[i].Velocity = g1[i].Velocity.Add(dir1.Scale(v))
	}
}
