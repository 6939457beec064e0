// Package barneshut implements a two-dimensional Barnes-Hut N-body
// simulator: a quadtree spatial index carrying a center-of-mass summary
// at every internal node, a Barnes-Hut opening-criterion force
// traversal, and an explicit-Euler simulation step.
//
// The package is single-threaded and allocates a fresh QuadTree every
// tick rather than maintaining one incrementally; see Simulation.Update.
package barneshut
