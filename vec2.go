package barneshut

import "math"

// Vec2 is a 2D vector of double-precision reals, used for position,
// velocity, and force. Equality is componentwise and exact: two Vec2
// values are Equal only when both fields compare bitwise equal, which
// is exactly the test the quadtree's coincident-insertion path needs.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by the scalar f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Div returns v with both components divided by the scalar f.
func (v Vec2) Div(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Norm returns the Euclidean length of v, the true 2-norm
// sqrt(x^2 + y^2). math.Hypot is used rather than a direct
// sqrt(x*x+y*y) both for the standard library's overflow handling and
// to avoid the sqrt((x+y)^2) mistake that appears in one historical
// variant of this algorithm's source: that expression computes |x+y|,
// not the 2-norm, and would silently corrupt every distance-dependent
// computation in the tree and the force kernel.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Equal reports whether v and o are bitwise identical in both
// components. It is used (not a tolerance-based comparison) by the
// quadtree's collision handling in Insert and ComputeForce, where the
// spec calls for detecting exactly-coincident bodies.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}
