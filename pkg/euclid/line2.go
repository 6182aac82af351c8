package euclid

import (
	"math"

	"github.com/chazu/euclid/pkg/hyperplane"
	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

// Line2 is an infinite 2D line through p0 and p1, which also bounds
// the directed segment p0->p1 (parameters 0 to 1).
type Line2 struct {
	p0, p1 vec.V2
}

// NewLine2 returns the line through (x0,y0) and (x1,y1).
func NewLine2(x0, y0, x1, y1 float64) (Line2, error) {
	return NewLine2Points(vec.V2{X: x0, Y: y0}, vec.V2{X: x1, Y: y1})
}

// NewLine2Points returns the line through p0 and p1. The points must not
// be the same within the process-wide tolerance.
func NewLine2Points(p0, p1 vec.V2) (Line2, error) {
	if tolerance.Default().Same2(p0.X, p0.Y, p1.X, p1.Y) {
		return Line2{}, errors.Wrapf(ErrSamePoint, "%s same point as %s", vec.String2(p0), vec.String2(p1))
	}
	return Line2{p0: p0, p1: p1}, nil
}

// P0 returns the first defining point.
func (l Line2) P0() vec.V2 { return l.p0 }

// P1 returns the second defining point.
func (l Line2) P1() vec.V2 { return l.p1 }

// Vector returns p1-p0.
func (l Line2) Vector() vec.V2 { return l.p1.Sub(l.p0) }

// Length returns the segment length.
func (l Line2) Length() float64 { return l.Vector().Length() }

// PointAt returns p0 + t*(p1-p0).
func (l Line2) PointAt(t float64) vec.V2 {
	return vec.V2{
		X: l.p0.X + t*(l.p1.X-l.p0.X),
		Y: l.p0.Y + t*(l.p1.Y-l.p0.Y),
	}
}

// A, B and C are the coefficients of the implicit equation ax+by+c = 0.
// The equation is not normalized.
func (l Line2) A() float64 { return l.p0.Y - l.p1.Y }

// B returns the y coefficient of the implicit equation.
func (l Line2) B() float64 { return l.p1.X - l.p0.X }

// C returns the constant of the implicit equation.
func (l Line2) C() float64 { return l.p0.X*l.p1.Y - l.p1.X*l.p0.Y }

// Eval returns ax+by+c for p.
func (l Line2) Eval(p vec.V2) float64 { return l.A()*p.X + l.B()*p.Y + l.C() }

// SignedDistance returns the distance from p to the line, positive on the
// left of p0->p1.
func (l Line2) SignedDistance(p vec.V2) float64 { return l.Eval(p) / l.Length() }

// Distance returns the distance from p to the line.
func (l Line2) Distance(p vec.V2) float64 { return math.Abs(l.SignedDistance(p)) }

// Closest returns the parameter of the point on the line closest to p.
func (l Line2) Closest(p vec.V2) float64 {
	v := l.Vector()
	return p.Sub(l.p0).Dot(v) / v.Dot(v)
}

// ClosestPoint returns the point on the line closest to p.
func (l Line2) ClosestPoint(p vec.V2) vec.V2 { return l.PointAt(l.Closest(p)) }

// SegmentDistance returns the distance from p to the segment p0->p1.
func (l Line2) SegmentDistance(p vec.V2) float64 {
	t := l.Closest(p)
	switch {
	case t < 0:
		return p.Sub(l.p0).Length()
	case t > 1:
		return p.Sub(l.p1).Length()
	}
	return p.Sub(l.PointAt(t)).Length()
}

// Translate returns the line moved by d.
func (l Line2) Translate(d vec.V2) Line2 {
	return Line2{p0: l.p0.Add(d), p1: l.p1.Add(d)}
}

// Scale returns the line with both points scaled componentwise about the
// origin. It fails if the scaled points coincide.
func (l Line2) Scale(sx, sy float64) (Line2, error) {
	return NewLine2(l.p0.X*sx, l.p0.Y*sy, l.p1.X*sx, l.p1.Y*sy)
}

// Flip returns the line with its points swapped.
func (l Line2) Flip() Line2 { return Line2{p0: l.p1, p1: l.p0} }

// Normalize returns the line with p0 kept and p1 moved so the segment has
// unit length.
func (l Line2) Normalize() Line2 {
	v := l.Vector()
	return Line2{p0: l.p0, p1: l.p0.Add(v.MulScalar(1 / v.Length()))}
}

// Same reports whether both of l's points lie on o within tol.
func (l Line2) Same(o Line2, tol tolerance.Tolerance) bool {
	return tol.IsZero(o.Eval(l.p0)) && tol.IsZero(o.Eval(l.p1))
}

// SameSegment reports whether l and o have the same points, in order,
// within tol.
func (l Line2) SameSegment(o Line2, tol tolerance.Tolerance) bool {
	return tol.Same2(l.p0.X, l.p0.Y, o.p0.X, o.p0.Y) &&
		tol.Same2(l.p1.X, l.p1.Y, o.p1.X, o.p1.Y)
}

// Equal reports bitwise equality.
func (l Line2) Equal(o Line2) bool {
	return tolerance.BitEqual(l.p0.X, o.p0.X) && tolerance.BitEqual(l.p0.Y, o.p0.Y) &&
		tolerance.BitEqual(l.p1.X, o.p1.X) && tolerance.BitEqual(l.p1.Y, o.p1.Y)
}

// Hyperplane returns the unit-normal equation of the line.
func (l Line2) Hyperplane() (hyperplane.Hyperplane, error) {
	return hyperplane.FromPoints2(l.p0.X, l.p0.Y, l.p1.X, l.p1.Y)
}

func (l Line2) String() string {
	return vec.String2(l.p0) + "," + vec.String2(l.p1)
}
