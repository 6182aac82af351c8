package euclid

import (
	"math"

	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
)

// Circle2 is a 2D circle.
type Circle2 struct {
	c vec.V2
	r float64
}

// NewCircle2 returns the circle with center c and radius r.
func NewCircle2(c vec.V2, r float64) (Circle2, error) {
	if r < 0 || math.IsNaN(r) {
		return Circle2{}, errors.Wrapf(ErrNegativeRadius, "r=%g", r)
	}
	return Circle2{c: c, r: r}, nil
}

// Center returns the center.
func (c Circle2) Center() vec.V2 { return c.c }

// Radius returns the radius.
func (c Circle2) Radius() float64 { return c.r }

// Area returns the enclosed area.
func (c Circle2) Area() float64 { return math.Pi * c.r * c.r }

// Circumference returns the perimeter.
func (c Circle2) Circumference() float64 { return 2 * math.Pi * c.r }

// Contains reports whether p lies inside or on the circle, within tol.
func (c Circle2) Contains(p vec.V2, tol tolerance.Tolerance) bool {
	d := p.Sub(c.c).Length() - c.r
	return d < 0 || tol.IsZero(d)
}

func (c Circle2) String() string {
	return "c=" + vec.String2(c.c) + ",r=" + formatFloat(c.r)
}

// Sphere3 is a 3D sphere.
type Sphere3 struct {
	c vec.V3
	r float64
}

// NewSphere3 returns the sphere with center c and radius r.
func NewSphere3(c vec.V3, r float64) (Sphere3, error) {
	if r < 0 || math.IsNaN(r) {
		return Sphere3{}, errors.Wrapf(ErrNegativeRadius, "r=%g", r)
	}
	return Sphere3{c: c, r: r}, nil
}

// Center returns the center.
func (s Sphere3) Center() vec.V3 { return s.c }

// Radius returns the radius.
func (s Sphere3) Radius() float64 { return s.r }

// Area returns the surface area.
func (s Sphere3) Area() float64 { return 4 * math.Pi * s.r * s.r }

// Volume returns the enclosed volume.
func (s Sphere3) Volume() float64 { return 4 * math.Pi * s.r * s.r * s.r / 3 }

// CircleArea returns the area of a great circle.
func (s Sphere3) CircleArea() float64 { return math.Pi * s.r * s.r }

// Contains reports whether p lies inside or on the sphere, within tol.
func (s Sphere3) Contains(p vec.V3, tol tolerance.Tolerance) bool {
	d := p.Sub(s.c).Length() - s.r
	return d < 0 || tol.IsZero(d)
}

func (s Sphere3) String() string {
	return "c=" + vec.String3(s.c) + ",r=" + formatFloat(s.r)
}
