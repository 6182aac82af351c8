package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chazu/euclid/pkg/engine"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [file|-]",
		Short: "Evaluates a geometry script and prints its value",
		Long: `
eval reads a script from the named file, or from stdin when the file is
omitted or "-", and prints the value of its last expression.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			src, err := readSource(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			eng := engine.New(
				engine.WithLogger(a.log.With(zap.String("script", name))),
				engine.WithTolerance(a.tol),
				engine.WithTimeout(a.timeout),
			)
			v, evalErrs, err := eng.Evaluate(src)
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, e.Error())
				}
				return errors.Errorf("%d evaluation error(s) in %s", len(evalErrs), name)
			}
			if v != "" {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func readSource(stdin io.Reader, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(b), nil
}
