package polyclip

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Cross(q); got != 2 {
		t.Errorf("Cross = %v, want 2", got)
	}
	if got := q.Lerp(p, 0.5); got != Pt(2, 3) {
		t.Errorf("Lerp = %v, want (2, 3)", got)
	}
}

func TestPointPixelTruncates(t *testing.T) {
	tests := []struct {
		p      Point
		wx, wy int
	}{
		{Pt(1.9, 2.1), 1, 2},
		{Pt(-0.5, 0.5), 0, 0},
		{Pt(-1.5, 7), -1, 7},
	}
	for _, tt := range tests {
		x, y := tt.p.Pixel()
		if x != tt.wx || y != tt.wy {
			t.Errorf("%v.Pixel() = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(170, 236.666).String(); got != "(170.00, 236.67)" {
		t.Errorf("String() = %q", got)
	}
}

func TestOrientation(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	tests := []struct {
		name string
		c    Point
		sign int
	}{
		{"positive side", Pt(5, 5), 1},
		{"negative side", Pt(5, -5), -1},
		{"collinear", Pt(20, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Orientation(a, b, tt.c)
			var got int
			switch {
			case o > 0:
				got = 1
			case o < 0:
				got = -1
			}
			if got != tt.sign {
				t.Errorf("Orientation(%v, %v, %v) = %v, want sign %d", a, b, tt.c, o, tt.sign)
			}
		})
	}

	if !inside(Pt(20, 0), a, b) {
		t.Error("collinear point must be classified as inside")
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, c1, c2 Point
		want           Point
		ok             bool
	}{
		{
			name: "proper crossing",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			c1: Pt(0, 10), c2: Pt(10, 0),
			want: Pt(5, 5), ok: true,
		},
		{
			name: "lines beyond segments",
			p1:   Pt(0, 0), p2: Pt(1, 0),
			c1: Pt(5, -1), c2: Pt(5, 1),
			want: Pt(5, 0), ok: true,
		},
		{
			name: "vertical window edge",
			p1:   Pt(100, 100), p2: Pt(400, 50),
			c1: Pt(170, 470), c2: Pt(170, 170),
			want: Pt(170, 100-70.0/6), ok: true,
		},
		{
			name: "parallel",
			p1:   Pt(0, 0), p2: Pt(10, 0),
			c1: Pt(0, 5), c2: Pt(10, 5),
			ok: false,
		},
		{
			name: "coincident",
			p1:   Pt(0, 0), p2: Pt(10, 0),
			c1: Pt(2, 0), c2: Pt(8, 0),
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.p1, tt.p2, tt.c1, tt.c2)
			if ok != tt.ok {
				t.Fatalf("Intersect ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}
