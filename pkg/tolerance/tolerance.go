// Package tolerance implements the numeric equality policy shared by every
// geometric predicate. A Tolerance value carries its own epsilon; the
// package-level functions read a process-wide default that can be changed
// with SetEpsilon.
package tolerance

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
)

// DefaultEpsilon seeds the process-wide epsilon.
const DefaultEpsilon = 1e-6

// ErrNegativeEpsilon is returned when a negative epsilon is supplied.
var ErrNegativeEpsilon = errors.New("tolerance: epsilon must not be negative")

// shared holds the bits of the process-wide epsilon.
var shared atomic.Uint64

func init() {
	shared.Store(math.Float64bits(DefaultEpsilon))
}

// SetEpsilon replaces the process-wide epsilon. Comparisons already made
// are unaffected; only later calls observe the new value.
func SetEpsilon(eps float64) error {
	if err := check(eps); err != nil {
		return err
	}
	shared.Store(math.Float64bits(eps))
	return nil
}

// Epsilon returns the process-wide epsilon.
func Epsilon() float64 {
	return math.Float64frombits(shared.Load())
}

func check(eps float64) error {
	if eps < 0 || math.IsNaN(eps) {
		return errors.Wrapf(ErrNegativeEpsilon, "epsilon %v", eps)
	}
	return nil
}

// Tolerance is an explicit equality policy. The zero value compares
// exactly (epsilon 0).
type Tolerance struct {
	eps float64
}

// New returns a Tolerance with the given epsilon.
func New(eps float64) (Tolerance, error) {
	if err := check(eps); err != nil {
		return Tolerance{}, err
	}
	return Tolerance{eps: eps}, nil
}

// MustNew is like New but panics on a negative epsilon.
func MustNew(eps float64) Tolerance {
	t, err := New(eps)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns a Tolerance seeded from the current process-wide epsilon.
func Default() Tolerance {
	return Tolerance{eps: Epsilon()}
}

// Epsilon returns the epsilon of t.
func (t Tolerance) Epsilon() float64 { return t.eps }

// IsZero reports whether x == 0 or |x| <= eps.
func (t Tolerance) IsZero(x float64) bool {
	return x == 0 || math.Abs(x) <= t.eps
}

// Same reports whether a == b or |a-b| <= eps.
func (t Tolerance) Same(a, b float64) bool {
	return a == b || math.Abs(a-b) <= t.eps
}

// One reports whether |1-x| <= eps.
func (t Tolerance) One(x float64) bool {
	return math.Abs(1-x) <= t.eps
}

// Zero2 reports whether both components are zero within eps.
func (t Tolerance) Zero2(u0, u1 float64) bool {
	return t.IsZero(u0) && t.IsZero(u1)
}

// Zero3 reports whether all three components are zero within eps.
func (t Tolerance) Zero3(u0, u1, u2 float64) bool {
	return t.IsZero(u0) && t.IsZero(u1) && t.IsZero(u2)
}

// Same2 compares (u0,u1) and (v0,v1) componentwise.
func (t Tolerance) Same2(u0, u1, v0, v1 float64) bool {
	return t.Same(u0, v0) && t.Same(u1, v1)
}

// Same3 compares (u0,u1,u2) and (v0,v1,v2) componentwise.
func (t Tolerance) Same3(u0, u1, u2, v0, v1, v2 float64) bool {
	return t.Same(u0, v0) && t.Same(u1, v1) && t.Same(u2, v2)
}

// ZeroVec reports whether every component of u is zero within eps. An
// empty vector is zero.
func (t Tolerance) ZeroVec(u []float64) bool {
	for _, x := range u {
		if !t.IsZero(x) {
			return false
		}
	}
	return true
}

// SameVec compares u and v componentwise. Vectors of different length are
// never the same.
func (t Tolerance) SameVec(u, v []float64) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if !t.Same(u[i], v[i]) {
			return false
		}
	}
	return true
}

// IsZero tests x against the process-wide epsilon.
func IsZero(x float64) bool { return Default().IsZero(x) }

// Same tests a and b against the process-wide epsilon.
func Same(a, b float64) bool { return Default().Same(a, b) }

// IsZeroWithin tests x against an explicit epsilon.
func IsZeroWithin(x, eps float64) (bool, error) {
	t, err := New(eps)
	if err != nil {
		return false, err
	}
	return t.IsZero(x), nil
}

// SameWithin tests a and b against an explicit epsilon.
func SameWithin(a, b, eps float64) (bool, error) {
	t, err := New(eps)
	if err != nil {
		return false, err
	}
	return t.Same(a, b), nil
}

// BitEqual reports whether a and b have identical bit patterns. It is meant
// for hashing and exact equality, where tolerance is not wanted.
func BitEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
