package barneshut

// Body is a point mass. Force is scratch state: it is only valid
// between a ResetForce call and the following UpdatePosition, which is
// exactly the window a single Simulation.Update tick opens.
type Body struct {
	Position Vec2
	Velocity Vec2
	Mass     float64
	Force    Vec2
}

// ResetForce zeroes the accumulated force, readying the body for a new
// round of UpdateForce calls.
func (b *Body) ResetForce() {
	b.Force = Vec2{}
}

// UpdateForce computes the softened gravitational contribution other
// exerts on b and adds it to b.Force. When the two positions coincide
// (r == 0) the unit direction vector d/r is a 0/0, so no force is
// added; the quadtree's traversal (QuadTree.ComputeForce) also skips
// that case before ever calling here.
func (b *Body) UpdateForce(other Body) {
	d := other.Position.Sub(b.Position)
	r := d.Norm()
	if r == 0 {
		return
	}
	f := (G * b.Mass * other.Mass) / (r*r + Epsilon*Epsilon)
	b.Force = b.Force.Add(d.Scale(f / r))
}

// UpdatePosition advances b by one explicit (symplectic) Euler step of
// size dt using the force accumulated this tick. This is deliberately
// a first-order integrator favoring simplicity over long-term energy
// conservation, so no predictor-corrector or velocity averaging is
// used here.
func (b *Body) UpdatePosition(dt float64) {
	b.Velocity = b.Velocity.Add(b.Force.Scale(dt / b.Mass))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Dist returns the Euclidean distance between b and other's positions.
func (b Body) Dist(other Body) float64 {
	return b.Position.Sub(other.Position).Norm()
}

// mergeMass coalesces other into b in place: b's position becomes the
// mass-weighted centroid of the two, and b's mass becomes their sum.
// This is the only way the tree avoids infinite recursion on
// exactly-coincident input positions (see QuadTree.Insert); it mirrors
// the Rust source's Body::update_foces (named for a typo this module
// does not carry forward), which folds one body's mass and position
// into another's on contact.
func mergeMass(b *Body, other Body) {
	total := b.Mass + other.Mass
	b.Position = b.Position.Scale(b.Mass).Add(other.Position.Scale(other.Mass)).Div(total)
	b.Mass = total
}
