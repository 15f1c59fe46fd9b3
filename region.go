package linden

// Region approximates a 2D area as a flat list of rectangles. Rectangles may
// overlap; no normalization or merging is performed. Regions are rebuilt
// (Clear then AddRect) rather than edited incrementally.
//
// Each Item owns three regions with distinct semantics: Transparent marks
// areas that should not occlude content behind the item, Input masks hit
// testing, and Damage accumulates pending-redraw areas.
type Region struct {
	rects []Rect
}

// NewRegion returns an empty region.
func NewRegion() *Region {
	return &Region{}
}

// AddRect appends a rectangle to the region. Empty rectangles are ignored.
func (g *Region) AddRect(r Rect) {
	if g == nil || r.Empty() {
		return
	}
	g.rects = append(g.rects, r)
}

// ContainsPoint reports whether any rectangle in the region contains (x, y).
func (g *Region) ContainsPoint(x, y float64) bool {
	if g == nil {
		return false
	}
	for _, r := range g.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Clear removes all rectangles, keeping the backing array for reuse.
func (g *Region) Clear() {
	if g == nil {
		return
	}
	g.rects = g.rects[:0]
}

// IsEmpty reports whether the region contains no rectangles.
func (g *Region) IsEmpty() bool {
	return g == nil || len(g.rects) == 0
}

// NumRects returns the number of rectangles in the region.
func (g *Region) NumRects() int {
	if g == nil {
		return 0
	}
	return len(g.rects)
}

// Rects returns the rectangle list. The returned slice MUST NOT be mutated
// by the caller.
func (g *Region) Rects() []Rect {
	if g == nil {
		return nil
	}
	return g.rects
}

// Bounds returns the axis-aligned union of all rectangles, or a zero Rect
// for an empty region.
func (g *Region) Bounds() Rect {
	if g.IsEmpty() {
		return Rect{}
	}
	b := g.rects[0]
	for _, r := range g.rects[1:] {
		b = b.Union(r)
	}
	return b
}
