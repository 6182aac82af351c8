package euclid

import (
	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

// Line3 is an infinite 3D line through p0 and p1, which also bounds
// the directed segment p0->p1.
type Line3 struct {
	p0, p1 vec.V3
}

// NewLine3 returns the line through (x0,y0,z0) and (x1,y1,z1).
func NewLine3(x0, y0, z0, x1, y1, z1 float64) (Line3, error) {
	return NewLine3Points(vec.V3{X: x0, Y: y0, Z: z0}, vec.V3{X: x1, Y: y1, Z: z1})
}

// NewLine3Points returns the line through p0 and p1. The points must not
// be the same within the process-wide tolerance.
func NewLine3Points(p0, p1 vec.V3) (Line3, error) {
	if tolerance.Default().Same3(p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z) {
		return Line3{}, errors.Wrapf(ErrSamePoint, "%s same point as %s", vec.String3(p0), vec.String3(p1))
	}
	return Line3{p0: p0, p1: p1}, nil
}

// P0 returns the first defining point.
func (l Line3) P0() vec.V3 { return l.p0 }

// P1 returns the second defining point.
func (l Line3) P1() vec.V3 { return l.p1 }

// Vector returns p1-p0.
func (l Line3) Vector() vec.V3 { return l.p1.Sub(l.p0) }

// Length returns the segment length.
func (l Line3) Length() float64 { return l.Vector().Length() }

// PointAt returns p0 + t*(p1-p0).
func (l Line3) PointAt(t float64) vec.V3 {
	return vec.V3{
		X: l.p0.X + t*(l.p1.X-l.p0.X),
		Y: l.p0.Y + t*(l.p1.Y-l.p0.Y),
		Z: l.p0.Z + t*(l.p1.Z-l.p0.Z),
	}
}

// Distance returns the distance from p to the line.
func (l Line3) Distance(p vec.V3) float64 {
	v := l.Vector()
	return vec.Cross3(v, p.Sub(l.p0)).Length() / v.Length()
}

// Closest returns the parameter of the point on the line closest to p.
func (l Line3) Closest(p vec.V3) float64 {
	v := l.Vector()
	return p.Sub(l.p0).Dot(v) / v.Dot(v)
}

// ClosestPoint returns the point on the line closest to p.
func (l Line3) ClosestPoint(p vec.V3) vec.V3 { return l.PointAt(l.Closest(p)) }

// SegmentDistance returns the distance from p to the segment p0->p1.
func (l Line3) SegmentDistance(p vec.V3) float64 {
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
func (l Line3) Translate(d vec.V3) Line3 {
	return Line3{p0: l.p0.Add(d), p1: l.p1.Add(d)}
}

// Scale returns the line with both points scaled componentwise about the
// origin. It fails if the scaled points coincide.
func (l Line3) Scale(sx, sy, sz float64) (Line3, error) {
	return NewLine3(l.p0.X*sx, l.p0.Y*sy, l.p0.Z*sz, l.p1.X*sx, l.p1.Y*sy, l.p1.Z*sz)
}

// Flip returns the line with its points swapped.
func (l Line3) Flip() Line3 { return Line3{p0: l.p1, p1: l.p0} }

// Normalize returns the line with p0 kept and p1 moved so the segment has
// unit length.
func (l Line3) Normalize() Line3 {
	v := l.Vector()
	return Line3{p0: l.p0, p1: l.p0.Add(v.MulScalar(1 / v.Length()))}
}

// Same reports whether both of l's points lie on o within tol.
func (l Line3) Same(o Line3, tol tolerance.Tolerance) bool {
	return tol.IsZero(o.Distance(l.p0)) && tol.IsZero(o.Distance(l.p1))
}

// SameSegment reports whether l and o have the same points, in order,
// within tol.
func (l Line3) SameSegment(o Line3, tol tolerance.Tolerance) bool {
	return tol.Same3(l.p0.X, l.p0.Y, l.p0.Z, o.p0.X, o.p0.Y, o.p0.Z) &&
		tol.Same3(l.p1.X, l.p1.Y, l.p1.Z, o.p1.X, o.p1.Y, o.p1.Z)
}

// Equal reports bitwise equality.
func (l Line3) Equal(o Line3) bool {
	return tolerance.BitEqual(l.p0.X, o.p0.X) && tolerance.BitEqual(l.p0.Y, o.p0.Y) &&
		tolerance.BitEqual(l.p0.Z, o.p0.Z) && tolerance.BitEqual(l.p1.X, o.p1.X) &&
		tolerance.BitEqual(l.p1.Y, o.p1.Y) && tolerance.BitEqual(l.p1.Z, o.p1.Z)
}

func (l Line3) String() string {
	return vec.String3(l.p0) + "," + vec.String3(l.p1)
}
