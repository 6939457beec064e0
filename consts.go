package barneshut

// Physical constants governing force computation. These carry sensible
// compile-time defaults but are mutable package state so that
// cmd/barneshut (via barneshut/config) can override them from the
// environment at process startup, before any Simulation is built.
// Tests that care about determinism should call SetParams explicitly
// rather than relying on whatever a previous test or process left
// behind.
var (
	// G is the gravitational constant, in whatever unit system the
	// input data uses.
	G = 6.674e-11

	// Epsilon is the softening length that regularizes the
	// gravitational kernel at small separations, preventing the
	// singularity at r == 0.
	Epsilon = 3.0e4

	// Theta is the Barnes-Hut opening-angle threshold: an internal
	// node's cluster is treated as a single pseudo-body whenever
	// s/d < Theta, where s is the cell width and d the distance to
	// the cluster's center of mass. Theta == 0 degenerates to an
	// exact N^2 direct sum.
	Theta = 0.5
)

// SetParams overrides G, Epsilon, and Theta. It exists so a host can
// apply configuration loaded from the environment (see
// barneshut/config) without every call site threading three extra
// parameters through Body and QuadTree methods that instead read these
// ambient physical constants directly.
func SetParams(g, epsilon, theta float64) {
	G = g
	Epsilon = epsilon
	Theta = theta
}
