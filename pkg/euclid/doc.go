// Package euclid holds the 2D and 3D value types (lines, planes, circles,
// spheres, triangles) and the solver that computes closest points between
// lines, line/plane intersections and plane/plane intersection lines.
//
// All value types are immutable. Constructors reject degenerate input using
// the process-wide tolerance; the Solver carries its own explicit
// tolerance.Tolerance and returns a fresh result for every call.
package euclid

import "github.com/pkg/errors"

var (
	// ErrSamePoint is returned when a line's endpoints coincide.
	ErrSamePoint = errors.New("euclid: line endpoints coincide")
	// ErrZeroLengthVector is returned for a zero plane normal.
	ErrZeroLengthVector = errors.New("euclid: zero length vector")
	// ErrNegativeRadius is returned for circles and spheres with r < 0.
	ErrNegativeRadius = errors.New("euclid: negative radius")
	// ErrDegenerateTriangle is returned when barycentric coordinates are
	// undefined because the triangle has no area.
	ErrDegenerateTriangle = errors.New("euclid: degenerate triangle")
)
