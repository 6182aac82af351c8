package euclid

import (
	"math"

	"github.com/chazu/euclid/pkg/hyperplane"
	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

// Plane3 is a 3D plane given by a reference point and a unit normal.
type Plane3 struct {
	p vec.V3
	n vec.V3
}

// NewPlane3 returns the plane through p with normal n. The normal is
// normalized; a normal that is zero within the process-wide tolerance is
// rejected.
func NewPlane3(p, n vec.V3) (Plane3, error) {
	if tolerance.Default().Zero3(n.X, n.Y, n.Z) {
		return Plane3{}, errors.Wrapf(ErrZeroLengthVector, "normal %s", vec.String3(n))
	}
	return Plane3{p: p, n: n.MulScalar(1 / n.Length())}, nil
}

// Point returns the reference point.
func (p Plane3) Point() vec.V3 { return p.p }

// Normal returns the unit normal.
func (p Plane3) Normal() vec.V3 { return p.n }

// A returns the x coefficient of ax+by+cz+d = 0.
func (p Plane3) A() float64 { return p.n.X }

// B returns the y coefficient.
func (p Plane3) B() float64 { return p.n.Y }

// C returns the z coefficient.
func (p Plane3) C() float64 { return p.n.Z }

// D returns the constant, -(n·p).
func (p Plane3) D() float64 { return -p.n.Dot(p.p) }

// Eval returns ax+by+cz+d for q, the signed distance from the plane.
func (p Plane3) Eval(q vec.V3) float64 { return p.n.Dot(q) + p.D() }

// Distance returns the distance from q to the plane.
func (p Plane3) Distance(q vec.V3) float64 { return math.Abs(p.Eval(q)) }

// Closest returns the projection of q onto the plane.
func (p Plane3) Closest(q vec.V3) vec.V3 {
	return q.Sub(p.n.MulScalar(p.Eval(q)))
}

// Same reports whether p and o have the same normal and o passes through
// p's reference point, within tol.
func (p Plane3) Same(o Plane3, tol tolerance.Tolerance) bool {
	return tol.Same3(p.n.X, p.n.Y, p.n.Z, o.n.X, o.n.Y, o.n.Z) && tol.IsZero(o.Eval(p.p))
}

// Equal reports bitwise equality of point and normal.
func (p Plane3) Equal(o Plane3) bool {
	return tolerance.BitEqual(p.p.X, o.p.X) && tolerance.BitEqual(p.p.Y, o.p.Y) &&
		tolerance.BitEqual(p.p.Z, o.p.Z) && tolerance.BitEqual(p.n.X, o.n.X) &&
		tolerance.BitEqual(p.n.Y, o.n.Y) && tolerance.BitEqual(p.n.Z, o.n.Z)
}

// Hyperplane returns the plane's equation.
func (p Plane3) Hyperplane() hyperplane.Hyperplane {
	h, err := hyperplane.New(p.D(), p.n.X, p.n.Y, p.n.Z)
	if err != nil {
		panic(err) // three components are always present
	}
	return h
}

func (p Plane3) String() string {
	return "p=" + vec.String3(p.p) + ",n=" + vec.String3(p.n)
}
