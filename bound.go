package barneshut

// Bound is an immutable axis-aligned rectangle with its top-left
// corner at (X, Y) and positive width W and height H.
type Bound struct {
	X, Y, W, H float64
}

// Contains reports whether p lies strictly inside the bound: strict on
// both sides of both axes, so a point exactly on an edge is contained
// by neither side that shares it. This is a plain interior test, used
// by tests and callers that need it; quadtree insertion instead
// assigns edge and separator points to a canonical quadrant (see
// node.quadrantIndex) rather than treating them as "outside".
func (b Bound) Contains(p Vec2) bool {
	return p.X > b.X && p.X < b.X+b.W && p.Y > b.Y && p.Y < b.Y+b.H
}

// Subdivide splits b into four equal quadrants tiling the same area:
// nw, ne, sw, se. The naming convention is screen/Y-down (smaller Y is
// "north"): nw is the top-left quarter, ne the top-right, sw the
// bottom-left, se the bottom-right. These are labels in the tree's own
// coordinates; the render package draws world +Y upward.
func (b Bound) Subdivide() (nw, ne, sw, se Bound) {
	halfW := b.W / 2
	halfH := b.H / 2
	nw = Bound{X: b.X, Y: b.Y, W: halfW, H: halfH}
	ne = Bound{X: b.X + halfW, Y: b.Y, W: halfW, H: halfH}
	sw = Bound{X: b.X, Y: b.Y + halfH, W: halfW, H: halfH}
	se = Bound{X: b.X + halfW, Y: b.Y + halfH, W: halfW, H: halfH}
	return nw, ne, sw, se
}
