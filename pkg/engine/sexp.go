package engine

import (
	"strconv"
	"strings"

	"github.com/chazu/euclid/pkg/euclid"
	"github.com/chazu/euclid/pkg/hyperplane"
	"github.com/chazu/euclid/pkg/vec"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing geometry values through zygomys
// ---------------------------------------------------------------------------

func ff(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func form(head string, parts ...string) string {
	return "(" + head + " " + strings.Join(parts, " ") + ")"
}

type sexpPoint2 struct{ v vec.V2 }

func (p *sexpPoint2) SexpString(ps *zygo.PrintState) string {
	return form("point2", ff(p.v.X), ff(p.v.Y))
}
func (p *sexpPoint2) Type() *zygo.RegisteredType { return nil }

type sexpPoint3 struct{ v vec.V3 }

func (p *sexpPoint3) SexpString(ps *zygo.PrintState) string {
	return form("point3", ff(p.v.X), ff(p.v.Y), ff(p.v.Z))
}
func (p *sexpPoint3) Type() *zygo.RegisteredType { return nil }

type sexpLine2 struct{ l euclid.Line2 }

func (l *sexpLine2) SexpString(ps *zygo.PrintState) string {
	p0, p1 := l.l.P0(), l.l.P1()
	return form("line2", ff(p0.X), ff(p0.Y), ff(p1.X), ff(p1.Y))
}
func (l *sexpLine2) Type() *zygo.RegisteredType { return nil }

type sexpLine3 struct{ l euclid.Line3 }

func (l *sexpLine3) SexpString(ps *zygo.PrintState) string {
	p0, p1 := l.l.P0(), l.l.P1()
	return form("line3", ff(p0.X), ff(p0.Y), ff(p0.Z), ff(p1.X), ff(p1.Y), ff(p1.Z))
}
func (l *sexpLine3) Type() *zygo.RegisteredType { return nil }

type sexpPlane struct{ p euclid.Plane3 }

func (p *sexpPlane) SexpString(ps *zygo.PrintState) string {
	at := &sexpPoint3{v: p.p.Point()}
	n := &sexpPoint3{v: p.p.Normal()}
	return form("plane", ":at", at.SexpString(ps), ":normal", n.SexpString(ps))
}
func (p *sexpPlane) Type() *zygo.RegisteredType { return nil }

type sexpHyperplane struct{ h hyperplane.Hyperplane }

func (h *sexpHyperplane) SexpString(ps *zygo.PrintState) string {
	parts := []string{ff(h.h.C())}
	for _, x := range h.h.Normal() {
		parts = append(parts, ff(x))
	}
	return form("hyperplane", parts...)
}
func (h *sexpHyperplane) Type() *zygo.RegisteredType { return nil }

// sexpLineLine keeps the input lines so the closest points can be
// evaluated later. Exactly one of the 2D or 3D pairs is set.
type sexpLineLine struct {
	r      euclid.LineLine
	p2, q2 *euclid.Line2
	p3, q3 *euclid.Line3
}

func (r *sexpLineLine) SexpString(ps *zygo.PrintState) string {
	return form("line-line", ":pt", ff(r.r.Pt), ":qt", ff(r.r.Qt),
		":parallel", strconv.FormatBool(r.r.Parallel))
}
func (r *sexpLineLine) Type() *zygo.RegisteredType { return nil }

type sexpPlaneLine struct {
	r euclid.PlaneLine
	l euclid.Line3
}

func (r *sexpPlaneLine) SexpString(ps *zygo.PrintState) string {
	if r.r.Parallel {
		return form("plane-line", ":parallel", "true", ":disjoint", strconv.FormatBool(r.r.Disjoint))
	}
	return form("plane-line", ":t", ff(r.r.T), ":parallel", "false")
}
func (r *sexpPlaneLine) Type() *zygo.RegisteredType { return nil }

type sexpPlanePlane struct{ r euclid.PlanePlane }

func (r *sexpPlanePlane) SexpString(ps *zygo.PrintState) string {
	if r.r.Parallel {
		return form("plane-plane", ":parallel", "true", ":disjoint", strconv.FormatBool(r.r.Disjoint))
	}
	l := &sexpLine3{l: r.r.Line}
	return form("plane-plane", ":line", l.SexpString(ps), ":parallel", "false")
}
func (r *sexpPlanePlane) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			// Trailing keyword with no value is a flag.
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	return s.SexpString(nil)
}

// toFloat64 extracts a float64 from a SexpInt or SexpFloat.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, errors.Errorf("expected number, got %T (%s)", s, describe(s))
}

func toFloats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = f
	}
	return out, nil
}

// toVector accepts a point2, a point3, or an array of numbers.
func toVector(s zygo.Sexp) ([]float64, error) {
	switch v := s.(type) {
	case *sexpPoint2:
		return vec.Slice2(v.v), nil
	case *sexpPoint3:
		return vec.Slice3(v.v), nil
	case *zygo.SexpArray:
		return toFloats(v.Val)
	}
	return nil, errors.Errorf("expected point or number array, got %T (%s)", s, describe(s))
}

func toPoint3(s zygo.Sexp) (vec.V3, error) {
	u, err := toVector(s)
	if err != nil {
		return vec.V3{}, err
	}
	if len(u) != 3 {
		return vec.V3{}, errors.Wrapf(vec.ErrDimensionMismatch, "expected 3 components, got %d", len(u))
	}
	return vec.FromSlice3(u), nil
}

func toPlane(s zygo.Sexp) (euclid.Plane3, error) {
	if p, ok := s.(*sexpPlane); ok {
		return p.p, nil
	}
	return euclid.Plane3{}, errors.Errorf("expected plane, got %T (%s)", s, describe(s))
}

func toLine3(s zygo.Sexp) (euclid.Line3, error) {
	if l, ok := s.(*sexpLine3); ok {
		return l.l, nil
	}
	return euclid.Line3{}, errors.Errorf("expected line3, got %T (%s)", s, describe(s))
}

func toHyperplane(s zygo.Sexp) (hyperplane.Hyperplane, error) {
	if h, ok := s.(*sexpHyperplane); ok {
		return h.h, nil
	}
	return hyperplane.Hyperplane{}, errors.Errorf("expected hyperplane, got %T (%s)", s, describe(s))
}

func sexpFloat(f float64) zygo.Sexp { return &zygo.SexpFloat{Val: f} }

func sexpBool(b bool) zygo.Sexp { return &zygo.SexpBool{Val: b} }
