package euclid

import (
	"math"
	"strconv"

	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// Triangle2 is a 2D triangle with vertices p0, p1 and p2. Edge i runs
// from vertex i to vertex i+1.
type Triangle2 struct {
	p [3]vec.V2
}

// NewTriangle2 returns the triangle with the given vertices. Degenerate
// triangles are allowed; operations that need area report them.
func NewTriangle2(p0, p1, p2 vec.V2) Triangle2 {
	return Triangle2{p: [3]vec.V2{p0, p1, p2}}
}

// Vertex returns vertex i, which must be 0, 1 or 2.
func (t Triangle2) Vertex(i int) vec.V2 { return t.p[i] }

// SignedArea2 returns twice the signed area, positive for counterclockwise
// vertices.
func (t Triangle2) SignedArea2() float64 {
	a := t.p[1].Sub(t.p[0])
	b := t.p[2].Sub(t.p[0])
	return a.X*b.Y - a.Y*b.X
}

// Area returns the unsigned area.
func (t Triangle2) Area() float64 { return math.Abs(t.SignedArea2()) / 2 }

// EdgeLength returns the length of edge i.
func (t Triangle2) EdgeLength(i int) float64 {
	return t.p[(i+1)%3].Sub(t.p[i]).Length()
}

// Perimeter returns the sum of the edge lengths.
func (t Triangle2) Perimeter() float64 {
	return t.EdgeLength(0) + t.EdgeLength(1) + t.EdgeLength(2)
}

// Centroid returns the mean of the vertices.
func (t Triangle2) Centroid() vec.V2 {
	return t.p[0].Add(t.p[1]).Add(t.p[2]).MulScalar(1.0 / 3)
}

// InscribedRadius returns the radius of the incircle, 0 for degenerate
// triangles.
func (t Triangle2) InscribedRadius() float64 {
	per := t.Perimeter()
	if per == 0 {
		return 0
	}
	return 2 * t.Area() / per
}

// CircumscribedRadius returns the radius of the circumcircle.
func (t Triangle2) CircumscribedRadius() (float64, error) {
	area := t.Area()
	if area == 0 {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	return t.EdgeLength(0) * t.EdgeLength(1) * t.EdgeLength(2) / (4 * area), nil
}

// Ratio returns the circumradius over the inradius. It is 2 for an
// equilateral triangle and grows as the triangle gets thinner.
func (t Triangle2) Ratio() (float64, error) {
	r, err := t.CircumscribedRadius()
	if err != nil {
		return 0, err
	}
	return r / t.InscribedRadius(), nil
}

// Inscribed returns the incircle.
func (t Triangle2) Inscribed() (Circle2, error) {
	if t.Area() == 0 {
		return Circle2{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	// Vertices weighted by the length of the opposite edge.
	a, b, c := t.EdgeLength(1), t.EdgeLength(2), t.EdgeLength(0)
	center := t.p[0].MulScalar(a).Add(t.p[1].MulScalar(b)).Add(t.p[2].MulScalar(c)).MulScalar(1 / (a + b + c))
	return NewCircle2(center, t.InscribedRadius())
}

// Circumscribed returns the circumcircle.
func (t Triangle2) Circumscribed() (Circle2, error) {
	d := 2 * t.SignedArea2()
	if d == 0 {
		return Circle2{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	b := t.p[1].Sub(t.p[0])
	c := t.p[2].Sub(t.p[0])
	bb, cc := b.Dot(b), c.Dot(c)
	u := vec.V2{X: (c.Y*bb - b.Y*cc) / d, Y: (b.X*cc - c.X*bb) / d}
	return NewCircle2(t.p[0].Add(u), u.Length())
}

// Barycentric returns the barycentric coordinates of p. They sum to 1.
func (t Triangle2) Barycentric(p vec.V2) ([3]float64, error) {
	bc, ok := barycentric(t.p[0], t.p[1], t.p[2], p)
	if !ok {
		return [3]float64{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	return bc, nil
}

// barycentric reports false when p0, p1 and p2 are collinear.
func barycentric(p0, p1, p2, p vec.V2) ([3]float64, bool) {
	u1 := p0.X - p2.X
	u2 := p1.X - p2.X
	u3 := p.X - p0.X
	u4 := p.X - p2.X
	v1 := p0.Y - p2.Y
	v2 := p1.Y - p2.Y
	v3 := p.Y - p0.Y
	v4 := p.Y - p2.Y

	denom := v1*u2 - v2*u1
	if denom == 0 {
		return [3]float64{}, false
	}
	b0 := (v4*u2 - v2*u4) / denom
	b1 := (v1*u3 - v3*u1) / denom
	return [3]float64{b0, b1, 1 - b0 - b1}, true
}

// Contains reports whether p lies inside or on t, within tol. Degenerate
// triangles contain nothing.
func (t Triangle2) Contains(p vec.V2, tol tolerance.Tolerance) bool {
	bc, err := t.Barycentric(p)
	if err != nil {
		return false
	}
	for _, b := range bc {
		if b < 0 && !tol.IsZero(b) {
			return false
		}
	}
	return true
}

func (t Triangle2) String() string {
	return vec.String2(t.p[0]) + "," + vec.String2(t.p[1]) + "," + vec.String2(t.p[2])
}

// Triangle3 is a 3D triangle with vertices p0, p1 and p2.
type Triangle3 struct {
	p [3]vec.V3
}

// NewTriangle3 returns the triangle with the given vertices.
func NewTriangle3(p0, p1, p2 vec.V3) Triangle3 {
	return Triangle3{p: [3]vec.V3{p0, p1, p2}}
}

// Vertex returns vertex i, which must be 0, 1 or 2.
func (t Triangle3) Vertex(i int) vec.V3 { return t.p[i] }

func (t Triangle3) cross() vec.V3 {
	return vec.Cross3(t.p[1].Sub(t.p[0]), t.p[2].Sub(t.p[0]))
}

// Area returns the area.
func (t Triangle3) Area() float64 { return t.cross().Length() / 2 }

// EdgeLength returns the length of edge i.
func (t Triangle3) EdgeLength(i int) float64 {
	return t.p[(i+1)%3].Sub(t.p[i]).Length()
}

// Perimeter returns the sum of the edge lengths.
func (t Triangle3) Perimeter() float64 {
	return t.EdgeLength(0) + t.EdgeLength(1) + t.EdgeLength(2)
}

// Centroid returns the mean of the vertices.
func (t Triangle3) Centroid() vec.V3 {
	return t.p[0].Add(t.p[1]).Add(t.p[2]).MulScalar(1.0 / 3)
}

// InscribedRadius returns the radius of the incircle, 0 for degenerate
// triangles.
func (t Triangle3) InscribedRadius() float64 {
	per := t.Perimeter()
	if per == 0 {
		return 0
	}
	return 2 * t.Area() / per
}

// CircumscribedRadius returns the radius of the circumcircle.
func (t Triangle3) CircumscribedRadius() (float64, error) {
	area := t.Area()
	if area == 0 {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	return t.EdgeLength(0) * t.EdgeLength(1) * t.EdgeLength(2) / (4 * area), nil
}

// Ratio returns the circumradius over the inradius.
func (t Triangle3) Ratio() (float64, error) {
	r, err := t.CircumscribedRadius()
	if err != nil {
		return 0, err
	}
	return r / t.InscribedRadius(), nil
}

// Inscribed returns the sphere centered on the incenter whose radius is
// the inradius.
func (t Triangle3) Inscribed() (Sphere3, error) {
	if t.Area() == 0 {
		return Sphere3{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	a, b, c := t.EdgeLength(1), t.EdgeLength(2), t.EdgeLength(0)
	center := t.p[0].MulScalar(a).Add(t.p[1].MulScalar(b)).Add(t.p[2].MulScalar(c)).MulScalar(1 / (a + b + c))
	return NewSphere3(center, t.InscribedRadius())
}

// Circumscribed returns the smallest sphere through the three vertices.
func (t Triangle3) Circumscribed() (Sphere3, error) {
	n := t.cross()
	nn := n.Dot(n)
	if nn == 0 {
		return Sphere3{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	a := t.p[1].Sub(t.p[0])
	b := t.p[2].Sub(t.p[0])
	w := b.MulScalar(a.Dot(a)).Sub(a.MulScalar(b.Dot(b)))
	u := vec.Cross3(w, n).MulScalar(1 / (2 * nn))
	return NewSphere3(t.p[0].Add(u), u.Length())
}

// Barycentric returns the barycentric coordinates of p projected onto t's
// plane along the dominant axis of the normal. They sum to 1.
func (t Triangle3) Barycentric(p vec.V3) ([3]float64, error) {
	axis, err := vec.MaxMag(vec.Slice3(t.cross()))
	if err != nil {
		return [3]float64{}, err
	}
	drop := func(v vec.V3) vec.V2 {
		switch axis {
		case 0:
			return vec.V2{X: v.Y, Y: v.Z}
		case 1:
			return vec.V2{X: v.Z, Y: v.X}
		}
		return vec.V2{X: v.X, Y: v.Y}
	}
	bc, ok := barycentric(drop(t.p[0]), drop(t.p[1]), drop(t.p[2]), drop(p))
	if !ok {
		return [3]float64{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	return bc, nil
}

// Normal returns the unit normal, oriented by the right-hand rule over
// p0, p1, p2.
func (t Triangle3) Normal() (vec.V3, error) {
	c := t.cross()
	l := c.Length()
	if l == 0 {
		return vec.V3{}, errors.Wrapf(ErrDegenerateTriangle, "%s", t)
	}
	return c.MulScalar(1 / l), nil
}

// Plane returns the plane containing t.
func (t Triangle3) Plane() (Plane3, error) {
	n, err := t.Normal()
	if err != nil {
		return Plane3{}, err
	}
	return NewPlane3(t.p[0], n)
}

// Contains reports whether p lies strictly inside t, using a same-side
// test against each edge. p is assumed to lie in t's plane.
func (t Triangle3) Contains(p vec.V3) bool {
	return sameSide(p, t.p[2], t.p[0], t.p[1]) &&
		sameSide(p, t.p[0], t.p[1], t.p[2]) &&
		sameSide(p, t.p[1], t.p[2], t.p[0])
}

// sameSide reports whether p and c are on the same side of edge a-b.
func sameSide(p, c, a, b vec.V3) bool {
	ab := b.Sub(a)
	return vec.Cross3(ab, p.Sub(a)).Dot(vec.Cross3(ab, c.Sub(a))) > 0
}

func (t Triangle3) String() string {
	return vec.String3(t.p[0]) + "," + vec.String3(t.p[1]) + "," + vec.String3(t.p[2])
}
