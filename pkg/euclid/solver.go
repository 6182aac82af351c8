package euclid

import (
	"fmt"
	"math"

	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
)

// Solver computes intersections between lines and planes. It is a value
// holding only a tolerance; every call returns a fresh result, so a Solver
// may be shared between goroutines.
type Solver struct {
	tol tolerance.Tolerance
}

// NewSolver returns a solver that classifies near-singular configurations
// with tol.
func NewSolver(tol tolerance.Tolerance) Solver {
	return Solver{tol: tol}
}

// DefaultSolver returns a solver using the current process-wide epsilon.
func DefaultSolver() Solver {
	return Solver{tol: tolerance.Default()}
}

// Tolerance returns the solver's tolerance.
func (s Solver) Tolerance() tolerance.Tolerance { return s.tol }

// LineLine is the outcome of a closest-point computation between two
// lines P and Q. Pt is the parameter on P, Qt the parameter on Q.
type LineLine struct {
	Pt, Qt   float64
	Parallel bool
}

// Points2 evaluates the closest points on p and q.
func (r LineLine) Points2(p, q Line2) (vec.V2, vec.V2) {
	return p.PointAt(r.Pt), q.PointAt(r.Qt)
}

// Points3 evaluates the closest points on p and q. For skew lines they
// differ; compare them to learn whether the lines meet.
func (r LineLine) Points3(p, q Line3) (vec.V3, vec.V3) {
	return p.PointAt(r.Pt), q.PointAt(r.Qt)
}

// PlaneLine is the outcome of a plane/line intersection. T is the line
// parameter of the piercing point and is zero when Parallel is set.
// Disjoint is only meaningful for parallel lines: false means the line
// lies in the plane.
type PlaneLine struct {
	T        float64
	Parallel bool
	Disjoint bool
}

// OnSegment reports whether the piercing point lies on the segment
// p0->p1 rather than elsewhere on the infinite line.
func (r PlaneLine) OnSegment() bool {
	return !r.Parallel && r.T >= 0 && r.T <= 1
}

// PlanePlane is the outcome of a plane/plane intersection. Line is valid
// only when Parallel is false. Disjoint is only meaningful for parallel
// planes: false means the planes coincide.
type PlanePlane struct {
	Line     Line3
	Parallel bool
	Disjoint bool
}

// closest solves for the parameters of the mutually closest points of two
// lines from the dot products of their directions u, v and the offset w.
func (s Solver) closest(a, b, c, d, e float64) LineLine {
	denom := a*c - b*b
	if s.tol.IsZero(denom) {
		// b is not guarded; coincident or parallel lines of real length
		// always have b != 0.
		return LineLine{Pt: 0, Qt: d / b, Parallel: true}
	}
	return LineLine{
		Pt: (b*e - c*d) / denom,
		Qt: (a*e - b*d) / denom,
	}
}

// LineLine2 computes the parameters of the closest points between p and q.
// The bool is true when the lines are not parallel, in which case both
// parameters name the same intersection point.
func (s Solver) LineLine2(p, q Line2) (LineLine, bool) {
	u, v := p.Vector(), q.Vector()
	w := p.p0.Sub(q.p0)
	r := s.closest(u.Dot(u), u.Dot(v), v.Dot(v), u.Dot(w), v.Dot(w))
	return r, !r.Parallel
}

// LineLine3 computes the parameters of the closest points between p and q.
// The bool is true when the lines are not parallel.
func (s Solver) LineLine3(p, q Line3) (LineLine, bool) {
	u, v := p.Vector(), q.Vector()
	w := p.p0.Sub(q.p0)
	r := s.closest(u.Dot(u), u.Dot(v), v.Dot(v), u.Dot(w), v.Dot(w))
	return r, !r.Parallel
}

// PlaneLine computes where l pierces p. The bool is true when the line is
// not parallel to the plane.
func (s Solver) PlaneLine(p Plane3, l Line3) (PlaneLine, bool) {
	u := l.Vector()
	w := l.p0.Sub(p.p)
	d := p.n.Dot(u)
	num := -p.n.Dot(w)
	if s.tol.IsZero(d) {
		return PlaneLine{Parallel: true, Disjoint: !s.tol.IsZero(num)}, false
	}
	return PlaneLine{T: num / d}, true
}

// PlanePlane computes the line where p and q meet. The bool is true when
// the planes are not parallel. The returned line runs from a point with
// its dominant coordinate at 0 along the cross product of the normals.
func (s Solver) PlanePlane(p, q Plane3) (PlanePlane, bool) {
	np, nq := p.n, q.n
	dir := vec.Cross3(np, nq)
	if s.tol.IsZero(math.Abs(dir.X) + math.Abs(dir.Y) + math.Abs(dir.Z)) {
		return PlanePlane{Parallel: true, Disjoint: !s.tol.IsZero(p.Eval(q.p))}, false
	}

	axis, err := vec.MaxMag(vec.Slice3(dir))
	if err != nil {
		panic(err)
	}
	d1, d2 := p.D(), q.D()
	var p1 vec.V3
	switch axis {
	case 0:
		mustDivide(dir.X, axis)
		p1 = vec.V3{
			X: 0,
			Y: (d2*np.Z - d1*nq.Z) / dir.X,
			Z: (d1*nq.Y - d2*np.Y) / dir.X,
		}
	case 1:
		mustDivide(dir.Y, axis)
		p1 = vec.V3{
			X: (d1*nq.Z - d2*np.Z) / dir.Y,
			Y: 0,
			Z: (d2*np.X - d1*nq.X) / dir.Y,
		}
	case 2:
		mustDivide(dir.Z, axis)
		p1 = vec.V3{
			X: (d2*np.Y - d1*nq.Y) / dir.Z,
			Y: (d1*nq.X - d2*np.X) / dir.Z,
			Z: 0,
		}
	default:
		panic(fmt.Sprintf("euclid: dominant axis %d out of range", axis))
	}
	return PlanePlane{Line: Line3{p0: p1, p1: p1.Add(dir)}}, true
}

// mustDivide panics when the dominant component of the intersection
// direction is exactly zero. Non-parallel planes cannot produce this.
func mustDivide(x float64, axis int) {
	if x == 0 {
		panic(fmt.Sprintf("euclid: zero divisor on dominant axis %d", axis))
	}
}

// IntersectLines2 is DefaultSolver().LineLine2.
func IntersectLines2(p, q Line2) (LineLine, bool) { return DefaultSolver().LineLine2(p, q) }

// IntersectLines3 is DefaultSolver().LineLine3.
func IntersectLines3(p, q Line3) (LineLine, bool) { return DefaultSolver().LineLine3(p, q) }

// IntersectPlaneLine is DefaultSolver().PlaneLine.
func IntersectPlaneLine(p Plane3, l Line3) (PlaneLine, bool) {
	return DefaultSolver().PlaneLine(p, l)
}

// IntersectPlanes is DefaultSolver().PlanePlane.
func IntersectPlanes(p, q Plane3) (PlanePlane, bool) { return DefaultSolver().PlanePlane(p, q) }
