// Package vec provides the vector arithmetic used by the geometric
// routines. Fixed-size 2D and 3D vectors are the sdfx vector types; slices
// of arbitrary length go through gonum's floats package after an explicit
// dimension check, since floats panics where we want an error.
package vec

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// V2 is a 2D vector or point.
type V2 = v2.Vec

// V3 is a 3D vector or point.
type V3 = v3.Vec

var (
	// ErrDimensionMismatch is returned when two vector arguments differ in length.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")
	// ErrNotThreeDimensional is returned by Cross for non-3D input.
	ErrNotThreeDimensional = errors.New("vec: cross product needs 3 components")
	// ErrEmptyVector is returned where at least one component is needed.
	ErrEmptyVector = errors.New("vec: empty vector")
	// ErrZeroVector is returned when normalizing a zero-length vector.
	ErrZeroVector = errors.New("vec: zero length vector")
)

func sameDim(u, v []float64) error {
	if len(u) != len(v) {
		return errors.Wrapf(ErrDimensionMismatch, "%d != %d", len(u), len(v))
	}
	return nil
}

// Dot returns u·v.
func Dot(u, v []float64) (float64, error) {
	if err := sameDim(u, v); err != nil {
		return 0, err
	}
	return floats.Dot(u, v), nil
}

// SelfDot returns u·u, the squared length of u.
func SelfDot(u []float64) float64 {
	return floats.Dot(u, u)
}

// Length returns the Euclidean length of u.
func Length(u []float64) float64 {
	return math.Sqrt(SelfDot(u))
}

// Distance returns the Euclidean distance between points u and v.
func Distance(u, v []float64) (float64, error) {
	d, err := Sub(u, v)
	if err != nil {
		return 0, err
	}
	return Length(d), nil
}

// Cross returns the right-handed cross product u×v of two 3D vectors.
func Cross(u, v []float64) ([]float64, error) {
	if len(u) != 3 || len(v) != 3 {
		return nil, errors.Wrapf(ErrNotThreeDimensional, "got %d and %d", len(u), len(v))
	}
	w := Cross3(FromSlice3(u), FromSlice3(v))
	return []float64{w.X, w.Y, w.Z}, nil
}

// Cross3 returns (u1v2-u2v1, u2v0-u0v2, u0v1-u1v0).
func Cross3(u, v V3) V3 {
	return u.Cross(v)
}

// Add returns a new vector u+v.
func Add(u, v []float64) ([]float64, error) {
	if err := sameDim(u, v); err != nil {
		return nil, err
	}
	return floats.AddTo(make([]float64, len(u)), u, v), nil
}

// Sub returns a new vector u-v.
func Sub(u, v []float64) ([]float64, error) {
	if err := sameDim(u, v); err != nil {
		return nil, err
	}
	return floats.SubTo(make([]float64, len(u)), u, v), nil
}

// Scale returns a new vector s*u.
func Scale(u []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(u)), s, u)
}

// Negate returns a new vector -u.
func Negate(u []float64) []float64 {
	w := make([]float64, len(u))
	for i, x := range u {
		w[i] = -x
	}
	return w
}

// AddInPlace sets u to u+v.
func AddInPlace(u, v []float64) error {
	if err := sameDim(u, v); err != nil {
		return err
	}
	floats.Add(u, v)
	return nil
}

// SubInPlace sets u to u-v.
func SubInPlace(u, v []float64) error {
	if err := sameDim(u, v); err != nil {
		return err
	}
	floats.Sub(u, v)
	return nil
}

// ScaleInPlace sets u to s*u.
func ScaleInPlace(u []float64, s float64) {
	floats.Scale(s, u)
}

// NegateInPlace sets u to -u.
func NegateInPlace(u []float64) {
	for i := range u {
		u[i] = -u[i]
	}
}

// Normalize returns u scaled to unit length.
func Normalize(u []float64) ([]float64, error) {
	l := Length(u)
	if l == 0 {
		return nil, errors.Wrapf(ErrZeroVector, "%v", u)
	}
	return Scale(u, 1/l), nil
}

// MaxMag returns the index of the component with the largest magnitude.
// Ties resolve to the lowest index.
func MaxMag(u []float64) (int, error) {
	if len(u) == 0 {
		return 0, ErrEmptyVector
	}
	rv, max := 0, math.Abs(u[0])
	for i := 1; i < len(u); i++ {
		if a := math.Abs(u[i]); a > max {
			rv, max = i, a
		}
	}
	return rv, nil
}

// Min returns the index of the smallest component, ties to the lowest index.
func Min(u []float64) (int, error) {
	if len(u) == 0 {
		return 0, ErrEmptyVector
	}
	return floats.MinIdx(u), nil
}

// Max returns the index of the largest component, ties to the lowest index.
func Max(u []float64) (int, error) {
	if len(u) == 0 {
		return 0, ErrEmptyVector
	}
	return floats.MaxIdx(u), nil
}

// FromSlice2 converts a 2-component slice to a V2. It panics on any
// other length.
func FromSlice2(u []float64) V2 {
	if len(u) != 2 {
		panic(fmt.Sprintf("vec.FromSlice2: length %d", len(u)))
	}
	return V2{X: u[0], Y: u[1]}
}

// FromSlice3 converts a 3-component slice to a V3. It panics on any
// other length.
func FromSlice3(u []float64) V3 {
	if len(u) != 3 {
		panic(fmt.Sprintf("vec.FromSlice3: length %d", len(u)))
	}
	return V3{X: u[0], Y: u[1], Z: u[2]}
}

// Slice2 returns v as a fresh slice.
func Slice2(v V2) []float64 { return []float64{v.X, v.Y} }

// Slice3 returns v as a fresh slice.
func Slice3(v V3) []float64 { return []float64{v.X, v.Y, v.Z} }

// String2 formats a 2D point as (x,y).
func String2(v V2) string { return fmt.Sprintf("(%g,%g)", v.X, v.Y) }

// String3 formats a 3D point as (x,y,z).
func String3(v V3) string { return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z) }
