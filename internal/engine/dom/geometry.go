package dom

// Rect is a rendered bounding rectangle in layout units. The layout
// walker compares Bottom coordinates with exact equality, so producers
// must report stable values for content sharing a baseline.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Empty reports whether the rectangle has no area. Empty rectangles
// are treated as "no geometry available" by consumers.
func (r Rect) Empty() bool {
	return r.Bottom <= r.Top || r.Right <= r.Left
}

// Union returns the smallest rectangle covering both r and other.
// An empty rectangle acts as the identity.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	out := r
	if other.Top < out.Top {
		out.Top = other.Top
	}
	if other.Bottom > out.Bottom {
		out.Bottom = other.Bottom
	}
	if other.Left < out.Left {
		out.Left = other.Left
	}
	if other.Right > out.Right {
		out.Right = other.Right
	}
	return out
}
