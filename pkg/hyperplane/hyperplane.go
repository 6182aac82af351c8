// Package hyperplane represents the implicit equation n·p + c = 0 in any
// dimension. In 1D it is a point on the number line, in 2D a line and in
// 3D a plane. When n has unit length, Eval returns the signed distance.
package hyperplane

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

var (
	// ErrDimension is returned for an empty normal, an unsupported
	// dimension, or an assignment across dimensions.
	ErrDimension = errors.New("hyperplane: bad dimension")
	// ErrZeroNormal is returned when a named factory would have to
	// normalize a zero vector.
	ErrZeroNormal = errors.New("hyperplane: zero length normal")
)

// Hyperplane is the equation n·p + c = 0. Its dimension is fixed when it
// is constructed. The zero value has dimension 0 and is not usable.
type Hyperplane struct {
	n []float64
	c float64
}

// New returns the hyperplane with the given constant and normal. The
// normal is copied and not normalized.
func New(c float64, n ...float64) (Hyperplane, error) {
	if len(n) == 0 {
		return Hyperplane{}, errors.Wrap(ErrDimension, "empty normal")
	}
	return Hyperplane{n: append([]float64(nil), n...), c: c}, nil
}

// Point1 returns the 1D hyperplane x' - x = 0.
func Point1(x float64) Hyperplane {
	return Hyperplane{n: []float64{1}, c: -x}
}

// FromPoints2 returns the unit-normal equation of the 2D line through
// (x0,y0) and (x1,y1).
func FromPoints2(x0, y0, x1, y1 float64) (Hyperplane, error) {
	h := Hyperplane{n: make([]float64, 2)}
	if err := h.SetPoints2(x0, y0, x1, y1); err != nil {
		return Hyperplane{}, err
	}
	return h, nil
}

// FromPointNormal3 returns the plane through (px,py,pz) with normal
// (nx,ny,nz). The normal is normalized.
func FromPointNormal3(px, py, pz, nx, ny, nz float64) (Hyperplane, error) {
	h := Hyperplane{n: make([]float64, 3)}
	if err := h.SetPointNormal3(px, py, pz, nx, ny, nz); err != nil {
		return Hyperplane{}, err
	}
	return h, nil
}

// FromVectors dispatches on len(u): two 2D points u and v, or a 3D point
// u with normal v.
func FromVectors(u, v []float64) (Hyperplane, error) {
	if len(u) != len(v) {
		return Hyperplane{}, errors.Wrapf(vec.ErrDimensionMismatch, "%d != %d", len(u), len(v))
	}
	switch len(u) {
	case 2:
		return FromPoints2(u[0], u[1], v[0], v[1])
	case 3:
		return FromPointNormal3(u[0], u[1], u[2], v[0], v[1], v[2])
	}
	return Hyperplane{}, errors.Wrapf(ErrDimension, "no point form for dimension %d", len(u))
}

func (h *Hyperplane) requireDim(d int) error {
	if len(h.n) != d {
		return errors.Wrapf(ErrDimension, "hyperplane has dimension %d, not %d", len(h.n), d)
	}
	return nil
}

// Set copies o into h. Both must have the same dimension.
func (h *Hyperplane) Set(o Hyperplane) error {
	if err := h.requireDim(len(o.n)); err != nil {
		return err
	}
	copy(h.n, o.n)
	h.c = o.c
	return nil
}

// SetPoints2 reassigns a 2D hyperplane to the line through two points.
func (h *Hyperplane) SetPoints2(x0, y0, x1, y1 float64) error {
	if err := h.requireDim(2); err != nil {
		return err
	}
	n0, n1 := y0-y1, x1-x0
	l := math.Sqrt(n0*n0 + n1*n1)
	if l == 0 {
		return errors.Wrapf(ErrZeroNormal, "(%g,%g) and (%g,%g)", x0, y0, x1, y1)
	}
	s := 1 / l
	h.n[0], h.n[1] = n0*s, n1*s
	h.c = (x0*y1 - x1*y0) * s
	return nil
}

// SetPointNormal3 reassigns a 3D hyperplane to the plane through a point
// with the given normal.
func (h *Hyperplane) SetPointNormal3(px, py, pz, nx, ny, nz float64) error {
	if err := h.requireDim(3); err != nil {
		return err
	}
	n, err := vec.Normalize([]float64{nx, ny, nz})
	if err != nil {
		return errors.Wrap(ErrZeroNormal, err.Error())
	}
	copy(h.n, n)
	h.c = -(n[0]*px + n[1]*py + n[2]*pz)
	return nil
}

// Dimension returns the number of components of the normal.
func (h Hyperplane) Dimension() int { return len(h.n) }

// Normal returns a copy of n.
func (h Hyperplane) Normal() []float64 { return append([]float64(nil), h.n...) }

// C returns the constant term.
func (h Hyperplane) C() float64 { return h.c }

// Eval returns n·p + c. It fails when p does not match the dimension.
func (h Hyperplane) Eval(p []float64) (float64, error) {
	if len(p) != len(h.n) || len(p) == 0 {
		return 0, errors.Wrapf(vec.ErrDimensionMismatch, "point has %d components, hyperplane %d", len(p), len(h.n))
	}
	s := float64(h.n[0] * p[0])
	for i := 1; i < len(p); i++ {
		s = float64(s + float64(h.n[i]*p[i]))
	}
	return float64(s + h.c), nil
}

// Eval1 is Eval for a 1D hyperplane. It panics on any other dimension.
func (h Hyperplane) Eval1(x float64) float64 {
	h.mustDimension(1, "Eval1")
	return float64(float64(h.n[0]*x) + h.c)
}

// Eval2 is Eval for a 2D hyperplane. It panics on any other dimension.
func (h Hyperplane) Eval2(x, y float64) float64 {
	h.mustDimension(2, "Eval2")
	s := float64(float64(h.n[0]*x) + float64(h.n[1]*y))
	return float64(s + h.c)
}

// Eval3 is Eval for a 3D hyperplane. It panics on any other dimension.
func (h Hyperplane) Eval3(x, y, z float64) float64 {
	h.mustDimension(3, "Eval3")
	s := float64(float64(h.n[0]*x) + float64(h.n[1]*y))
	s = float64(s + float64(h.n[2]*z))
	return float64(s + h.c)
}

func (h Hyperplane) mustDimension(d int, op string) {
	if len(h.n) != d {
		panic(fmt.Sprintf("hyperplane.%s: dimension %d", op, len(h.n)))
	}
}

// SameSide reports whether p and q lie strictly on the same side. A point
// within tol of the hyperplane is on neither side.
func (h Hyperplane) SameSide(tol tolerance.Tolerance, p, q []float64) (bool, error) {
	a, err := h.Eval(p)
	if err != nil {
		return false, err
	}
	b, err := h.Eval(q)
	if err != nil {
		return false, err
	}
	if tol.IsZero(a) || tol.IsZero(b) {
		return false, nil
	}
	return (a > 0) == (b > 0), nil
}

// Equal reports bitwise equality of the equations.
func (h Hyperplane) Equal(o Hyperplane) bool {
	if len(h.n) != len(o.n) || !tolerance.BitEqual(h.c, o.c) {
		return false
	}
	for i := range h.n {
		if !tolerance.BitEqual(h.n[i], o.n[i]) {
			return false
		}
	}
	return true
}

// String formats h as n0*c0+n1*c1+...+c.
func (h Hyperplane) String() string {
	var sb strings.Builder
	for i, x := range h.n {
		fmt.Fprintf(&sb, "%g*c%d+", x, i)
	}
	fmt.Fprintf(&sb, "%g", h.c)
	return sb.String()
}
