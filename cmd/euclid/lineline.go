package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chazu/euclid/pkg/euclid"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLineLineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lineline [--] p0 p1 q0 q1",
		Short: "Finds the closest points of two lines",
		Long: `
lineline takes two lines as their endpoint coordinates, 8 numbers for 2D
lines or 12 for 3D lines, and prints the parameters of the mutually
closest points, whether the lines are parallel, and the points themselves.
Put -- before the coordinates when any of them is negative.`,
		Example: `  euclid lineline 0 0 1 1 1 0 0 1
  euclid lineline -- 0 0 0 1 0 0 0 1 1 0 -1 1`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 8 && len(args) != 12 {
				return errors.Errorf("need 8 (2D) or 12 (3D) coordinates, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoords(args)
			if err != nil {
				return err
			}
			s := euclid.NewSolver(a.tol)
			if len(c) == 8 {
				return lineLine2(cmd.OutOrStdout(), a.log, s, c)
			}
			return lineLine3(cmd.OutOrStdout(), a.log, s, c)
		},
	}
}

func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i+1)
		}
		out[i] = f
	}
	return out, nil
}

func lineLine2(w io.Writer, log *zap.Logger, s euclid.Solver, c []float64) error {
	p, err := euclid.NewLine2(c[0], c[1], c[2], c[3])
	if err != nil {
		return errors.Wrap(err, "first line")
	}
	q, err := euclid.NewLine2(c[4], c[5], c[6], c[7])
	if err != nil {
		return errors.Wrap(err, "second line")
	}
	r, _ := s.LineLine2(p, q)
	log.Debug("line-line", zap.Stringer("p", p), zap.Stringer("q", q), zap.Bool("parallel", r.Parallel))
	pp, qp := r.Points2(p, q)
	writeLineLine(w, r, vec.String2(pp), vec.String2(qp))
	return nil
}

func lineLine3(w io.Writer, log *zap.Logger, s euclid.Solver, c []float64) error {
	p, err := euclid.NewLine3(c[0], c[1], c[2], c[3], c[4], c[5])
	if err != nil {
		return errors.Wrap(err, "first line")
	}
	q, err := euclid.NewLine3(c[6], c[7], c[8], c[9], c[10], c[11])
	if err != nil {
		return errors.Wrap(err, "second line")
	}
	r, _ := s.LineLine3(p, q)
	log.Debug("line-line", zap.Stringer("p", p), zap.Stringer("q", q), zap.Bool("parallel", r.Parallel))
	pp, qp := r.Points3(p, q)
	writeLineLine(w, r, vec.String3(pp), vec.String3(qp))
	return nil
}

func writeLineLine(w io.Writer, r euclid.LineLine, p, q string) {
	fmt.Fprintf(w, "pt %s\n", strconv.FormatFloat(r.Pt, 'g', -1, 64))
	fmt.Fprintf(w, "qt %s\n", strconv.FormatFloat(r.Qt, 'g', -1, 64))
	fmt.Fprintf(w, "parallel %t\n", r.Parallel)
	fmt.Fprintf(w, "p %s\n", p)
	fmt.Fprintf(w, "q %s\n", q)
}
