package linalg

// Orientation classifies the turn made by an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return "unknown"
}

// Orient returns the orientation of the triple (p, q, r) in a y-up
// coordinate system. It is the sign of the determinant
//
//	| r.x-q.x  r.y-q.y |
//	| q.x-p.x  q.y-p.y |
func Orient[T Scalar](p, q, r Vector2[T]) Orientation {
	det := NewMatrix2(r.x-q.x, r.y-q.y, q.x-p.x, q.y-p.y).Det()
	switch {
	case det > 0:
		return Clockwise
	case det < 0:
		return CounterClockwise
	}
	return Collinear
}

// onSegment reports whether q lies within the bounding box of segment pr.
// Callers only use it for points already known to be collinear.
func onSegment[T Scalar](p, q, r Vector2[T]) bool {
	return q.x <= max(p.x, r.x) && q.x >= min(p.x, r.x) &&
		q.y <= max(p.y, r.y) && q.y >= min(p.y, r.y)
}

// SegmentsIntersect reports whether segment p1q1 intersects segment p2q2,
// touching endpoints included.
func SegmentsIntersect[T Scalar](p1, q1, p2, q2 Vector2[T]) bool {
	d1 := Orient(p1, q1, p2)
	d2 := Orient(p1, q1, q2)
	d3 := Orient(p2, q2, p1)
	d4 := Orient(p2, q2, q1)

	// General position: each segment straddles the other's line.
	if d1 != d2 && d3 != d4 {
		return true
	}

	// Collinear special cases: an endpoint lies on the other segment.
	switch {
	case d1 == Collinear && onSegment(p1, p2, q1):
		return true
	case d2 == Collinear && onSegment(p1, q2, q1):
		return true
	case d3 == Collinear && onSegment(p2, p1, q2):
		return true
	case d4 == Collinear && onSegment(p2, q1, q2):
		return true
	}
	return false
}
