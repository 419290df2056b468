package linalg

import "testing"

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		p, q, r Point2[int]
		want    Orientation
	}{
		{"left turn", Pt2(0, 0), Pt2(1, 0), Pt2(1, 1), CounterClockwise},
		{"right turn", Pt2(0, 0), Pt2(1, 0), Pt2(1, -1), Clockwise},
		{"straight", Pt2(0, 0), Pt2(1, 1), Pt2(3, 3), Collinear},
		{"repeated point", Pt2(2, 2), Pt2(2, 2), Pt2(5, 1), Collinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.p, tt.q, tt.r); got != tt.want {
				t.Errorf("Orient(%v, %v, %v) = %v, want %v", tt.p, tt.q, tt.r, got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, q1, p2, q2 Point2[float64]
		want           bool
	}{
		{"crossing", Pt2(0.0, 0), Pt2(4.0, 4), Pt2(0.0, 4), Pt2(4.0, 0), true},
		{"parallel", Pt2(0.0, 0), Pt2(4.0, 0), Pt2(0.0, 1), Pt2(4.0, 1), false},
		{"touching endpoint", Pt2(0.0, 0), Pt2(2.0, 2), Pt2(2.0, 2), Pt2(3.0, 0), true},
		{"t junction", Pt2(0.0, 0), Pt2(4.0, 0), Pt2(2.0, 0), Pt2(2.0, 3), true},
		{"collinear overlap", Pt2(0.0, 0), Pt2(3.0, 0), Pt2(2.0, 0), Pt2(5.0, 0), true},
		{"collinear disjoint", Pt2(0.0, 0), Pt2(1.0, 0), Pt2(2.0, 0), Pt2(3.0, 0), false},
		{"short of crossing", Pt2(0.0, 0), Pt2(1.0, 1), Pt2(0.0, 4), Pt2(1.5, 2.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.q1, tt.p2, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			// Argument order does not matter.
			if got := SegmentsIntersect(tt.p2, tt.q2, tt.p1, tt.q1); got != tt.want {
				t.Errorf("SegmentsIntersect swapped = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientationString(t *testing.T) {
	if got := CounterClockwise.String(); got != "counter-clockwise" {
		t.Errorf("String() = %q", got)
	}
	if got := Orientation(9).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
