package engine

import (
	"github.com/chazu/euclid/pkg/euclid"
	"github.com/chazu/euclid/pkg/hyperplane"
	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
)

type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// arity wraps fn so that it only runs with exactly n arguments.
func arity(n int, fn builtin) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != n {
			return zygo.SexpNull, errors.Errorf("%s requires exactly %d arguments, got %d", name, n, len(args))
		}
		return fn(env, name, args)
	}
}

// numbers wraps fn so that it receives exactly n numeric arguments.
func numbers(n int, fn func(f []float64) (zygo.Sexp, error)) builtin {
	return arity(n, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		sx, err := fn(f)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return sx, nil
	})
}

// registerBuiltins installs the geometry builtins into a zygomys
// environment. Intersection builtins classify with tol; constructors use
// the process-wide epsilon.
//
// Source must go through preprocessSource first: kebab-case names are
// registered in their underscore form.
func registerBuiltins(env *zygo.Zlisp, tol tolerance.Tolerance) {
	solver := euclid.NewSolver(tol)

	// -----------------------------------------------------------------------
	// (point2 x y) (point3 x y z)
	// -----------------------------------------------------------------------
	env.AddFunction("point2", numbers(2, func(f []float64) (zygo.Sexp, error) {
		return &sexpPoint2{v: vec.V2{X: f[0], Y: f[1]}}, nil
	}))
	env.AddFunction("point3", numbers(3, func(f []float64) (zygo.Sexp, error) {
		return &sexpPoint3{v: vec.V3{X: f[0], Y: f[1], Z: f[2]}}, nil
	}))

	// -----------------------------------------------------------------------
	// (line2 x0 y0 x1 y1) (line3 x0 y0 z0 x1 y1 z1) (line p0 p1)
	// -----------------------------------------------------------------------
	env.AddFunction("line2", numbers(4, func(f []float64) (zygo.Sexp, error) {
		l, err := euclid.NewLine2(f[0], f[1], f[2], f[3])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpLine2{l: l}, nil
	}))
	env.AddFunction("line3", numbers(6, func(f []float64) (zygo.Sexp, error) {
		l, err := euclid.NewLine3(f[0], f[1], f[2], f[3], f[4], f[5])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpLine3{l: l}, nil
	}))
	env.AddFunction("line", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch p0 := args[0].(type) {
		case *sexpPoint2:
			p1, ok := args[1].(*sexpPoint2)
			if !ok {
				return zygo.SexpNull, errors.Errorf("line: expected point2, got %s", describe(args[1]))
			}
			l, err := euclid.NewLine2Points(p0.v, p1.v)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "line")
			}
			return &sexpLine2{l: l}, nil
		case *sexpPoint3:
			p1, ok := args[1].(*sexpPoint3)
			if !ok {
				return zygo.SexpNull, errors.Errorf("line: expected point3, got %s", describe(args[1]))
			}
			l, err := euclid.NewLine3Points(p0.v, p1.v)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "line")
			}
			return &sexpLine3{l: l}, nil
		}
		return zygo.SexpNull, errors.Errorf("line: expected two points, got %s", describe(args[0]))
	}))

	// -----------------------------------------------------------------------
	// (plane :at (point3 0 0 0) :normal (point3 0 0 1))
	// (plane p n)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		at, okAt := pa.kw["at"]
		normal, okN := pa.kw["normal"]
		if !okAt && !okN && len(pa.positional) == 2 {
			at, normal = pa.positional[0], pa.positional[1]
			okAt, okN = true, true
		}
		if !okAt || !okN {
			return zygo.SexpNull, errors.New("plane requires :at and :normal")
		}
		p, err := toPoint3(at)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane: at")
		}
		n, err := toPoint3(normal)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane: normal")
		}
		pl, err := euclid.NewPlane3(p, n)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane")
		}
		return &sexpPlane{p: pl}, nil
	})

	// -----------------------------------------------------------------------
	// (hyperplane c n0 n1 ...) (hyperplane-of line-or-plane) (eval-at h p)
	// -----------------------------------------------------------------------
	env.AddFunction("hyperplane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "hyperplane")
		}
		if len(f) < 2 {
			return zygo.SexpNull, errors.Wrap(hyperplane.ErrDimension, "hyperplane requires a constant and at least one normal component")
		}
		h, err := hyperplane.New(f[0], f[1:]...)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "hyperplane")
		}
		return &sexpHyperplane{h: h}, nil
	})
	env.AddFunction("hyperplane_of", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch v := args[0].(type) {
		case *sexpLine2:
			h, err := v.l.Hyperplane()
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "hyperplane-of")
			}
			return &sexpHyperplane{h: h}, nil
		case *sexpPlane:
			return &sexpHyperplane{h: v.p.Hyperplane()}, nil
		}
		return zygo.SexpNull, errors.Errorf("hyperplane-of: expected line2 or plane, got %s", describe(args[0]))
	}))
	env.AddFunction("eval_at", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		h, err := toHyperplane(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "eval-at")
		}
		p, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "eval-at")
		}
		d, err := h.Eval(p)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "eval-at")
		}
		return sexpFloat(d), nil
	}))

	// -----------------------------------------------------------------------
	// (line-line a b) (plane-line p l) (plane-plane p q)
	// -----------------------------------------------------------------------
	env.AddFunction("line_line", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch p := args[0].(type) {
		case *sexpLine2:
			q, ok := args[1].(*sexpLine2)
			if !ok {
				return zygo.SexpNull, errors.Errorf("line-line: expected line2, got %s", describe(args[1]))
			}
			r, _ := solver.LineLine2(p.l, q.l)
			return &sexpLineLine{r: r, p2: &p.l, q2: &q.l}, nil
		case *sexpLine3:
			q, ok := args[1].(*sexpLine3)
			if !ok {
				return zygo.SexpNull, errors.Errorf("line-line: expected line3, got %s", describe(args[1]))
			}
			r, _ := solver.LineLine3(p.l, q.l)
			return &sexpLineLine{r: r, p3: &p.l, q3: &q.l}, nil
		}
		return zygo.SexpNull, errors.Errorf("line-line: expected two lines, got %s", describe(args[0]))
	}))
	env.AddFunction("plane_line", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := toPlane(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane-line")
		}
		l, err := toLine3(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane-line")
		}
		r, _ := solver.PlaneLine(p, l)
		return &sexpPlaneLine{r: r, l: l}, nil
	}))
	env.AddFunction("plane_plane", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := toPlane(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane-plane")
		}
		q, err := toPlane(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "plane-plane")
		}
		r, _ := solver.PlanePlane(p, q)
		return &sexpPlanePlane{r: r}, nil
	}))

	// -----------------------------------------------------------------------
	// Result accessors
	// -----------------------------------------------------------------------
	env.AddFunction("pt", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch r := args[0].(type) {
		case *sexpLineLine:
			return sexpFloat(r.r.Pt), nil
		case *sexpPlaneLine:
			return sexpFloat(r.r.T), nil
		}
		return zygo.SexpNull, errors.Errorf("pt: expected line-line or plane-line result, got %s", describe(args[0]))
	}))
	env.AddFunction("qt", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if r, ok := args[0].(*sexpLineLine); ok {
			return sexpFloat(r.r.Qt), nil
		}
		return zygo.SexpNull, errors.Errorf("qt: expected line-line result, got %s", describe(args[0]))
	}))
	env.AddFunction("parallel", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch r := args[0].(type) {
		case *sexpLineLine:
			return sexpBool(r.r.Parallel), nil
		case *sexpPlaneLine:
			return sexpBool(r.r.Parallel), nil
		case *sexpPlanePlane:
			return sexpBool(r.r.Parallel), nil
		}
		return zygo.SexpNull, errors.Errorf("parallel: expected an intersection result, got %s", describe(args[0]))
	}))
	env.AddFunction("disjoint", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch r := args[0].(type) {
		case *sexpPlaneLine:
			return sexpBool(r.r.Disjoint), nil
		case *sexpPlanePlane:
			return sexpBool(r.r.Disjoint), nil
		}
		return zygo.SexpNull, errors.Errorf("disjoint: expected plane-line or plane-plane result, got %s", describe(args[0]))
	}))
	env.AddFunction("intersection_line", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, ok := args[0].(*sexpPlanePlane)
		if !ok {
			return zygo.SexpNull, errors.Errorf("intersection-line: expected plane-plane result, got %s", describe(args[0]))
		}
		if r.r.Parallel {
			return zygo.SexpNull, nil
		}
		return &sexpLine3{l: r.r.Line}, nil
	}))
	env.AddFunction("intersection_point", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, ok := args[0].(*sexpPlaneLine)
		if !ok {
			return zygo.SexpNull, errors.Errorf("intersection-point: expected plane-line result, got %s", describe(args[0]))
		}
		if r.r.Parallel {
			return zygo.SexpNull, nil
		}
		return &sexpPoint3{v: r.l.PointAt(r.r.T)}, nil
	}))
	env.AddFunction("closest_points", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, ok := args[0].(*sexpLineLine)
		if !ok {
			return zygo.SexpNull, errors.Errorf("closest-points: expected line-line result, got %s", describe(args[0]))
		}
		if r.p2 != nil {
			a, b := r.r.Points2(*r.p2, *r.q2)
			return zygo.MakeList([]zygo.Sexp{&sexpPoint2{v: a}, &sexpPoint2{v: b}}), nil
		}
		a, b := r.r.Points3(*r.p3, *r.q3)
		return zygo.MakeList([]zygo.Sexp{&sexpPoint3{v: a}, &sexpPoint3{v: b}}), nil
	}))

	// -----------------------------------------------------------------------
	// (point-at line t) (distance line-or-plane p)
	// -----------------------------------------------------------------------
	env.AddFunction("point_at", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		t, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "point-at")
		}
		switch l := args[0].(type) {
		case *sexpLine2:
			return &sexpPoint2{v: l.l.PointAt(t)}, nil
		case *sexpLine3:
			return &sexpPoint3{v: l.l.PointAt(t)}, nil
		}
		return zygo.SexpNull, errors.Errorf("point-at: expected line, got %s", describe(args[0]))
	}))
	env.AddFunction("distance", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "distance")
		}
		switch g := args[0].(type) {
		case *sexpLine2:
			if len(p) == 2 {
				return sexpFloat(g.l.Distance(vec.FromSlice2(p))), nil
			}
		case *sexpLine3:
			if len(p) == 3 {
				return sexpFloat(g.l.Distance(vec.FromSlice3(p))), nil
			}
		case *sexpPlane:
			if len(p) == 3 {
				return sexpFloat(g.p.Distance(vec.FromSlice3(p))), nil
			}
		default:
			return zygo.SexpNull, errors.Errorf("distance: expected line or plane, got %s", describe(args[0]))
		}
		return zygo.SexpNull, errors.Wrapf(vec.ErrDimensionMismatch, "distance: point %s", describe(args[1]))
	}))

	// -----------------------------------------------------------------------
	// (dot u v) (cross u v) (magnitude u) (epsilon)
	// -----------------------------------------------------------------------
	env.AddFunction("dot", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		u, v, err := twoVectors(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		d, err := vec.Dot(u, v)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return sexpFloat(d), nil
	}))
	env.AddFunction("cross", arity(2, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		u, v, err := twoVectors(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		c, err := vec.Cross(u, v)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return &sexpPoint3{v: vec.FromSlice3(c)}, nil
	}))
	env.AddFunction("magnitude", arity(1, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		u, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, name)
		}
		return sexpFloat(vec.Length(u)), nil
	}))
	env.AddFunction("epsilon", arity(0, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return sexpFloat(tol.Epsilon()), nil
	}))
}

func twoVectors(name string, args []zygo.Sexp) ([]float64, []float64, error) {
	u, err := toVector(args[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	v, err := toVector(args[1])
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	return u, v, nil
}
