// Package engine evaluates geometry scripts. It wraps zygomys in a
// sandboxed environment with builtins for points, lines, planes,
// hyperplanes and the intersection solver, and returns the printed value
// of the last expression.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/euclid/pkg/tolerance"
	zygo "github.com/glycerine/zygomys/zygo"
	"go.uber.org/zap"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a rejected
// geometric construction.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTolerance sets the tolerance the intersection builtins classify
// with. The default is the process-wide epsilon at construction time.
func WithTolerance(tol tolerance.Tolerance) Option {
	return func(e *Engine) { e.tol = tol }
}

// WithTimeout sets the hard limit for a single evaluation. Non-positive
// values keep DefaultTimeout.
//
// Evaluate returns when the limit passes, but zygomys cannot be
// interrupted mid-run: a script that never terminates keeps its goroutine
// and sandbox alive until the process exits. Its result is discarded.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Engine wraps the zygomys interpreter for geometry scripts.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	tol     tolerance.Tolerance
	timeout time.Duration
	log     *zap.Logger
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		tol:     tolerance.Default(),
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Tolerance returns the tolerance used by the intersection builtins.
func (e *Engine) Tolerance() tolerance.Tolerance { return e.tol }

// Evaluate runs a geometry script and returns the printed form of its
// last expression. Each call creates a fresh zygomys sandbox.
//
// Return semantics:
//   - On success: returns value + nil errors + nil error
//   - On parse/eval failure: returns "" + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns "" + nil + error
func (e *Engine) Evaluate(source string) (string, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	log := e.log.With(zap.Uint64("generation", gen))
	log.Debug("evaluation started", zap.Int("bytes", len(source)))
	start := time.Now()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		v, evalErrs, err := e.evaluate(source)
		ch <- evalResult{value: v, errors: evalErrs, err: err}
	}()

	v, evalErrs, err := waitWithTimeout(ch, gen, e.timeout, e.currentGeneration)
	elapsed := zap.Duration("elapsed", time.Since(start))
	switch {
	case err != nil:
		log.Warn("evaluation failed", elapsed, zap.Error(err))
	case len(evalErrs) > 0:
		log.Debug("evaluation finished with errors", elapsed, zap.Int("errors", len(evalErrs)))
	default:
		log.Debug("evaluation finished", elapsed)
	}
	return v, evalErrs, err
}

func (e *Engine) currentGeneration() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (string, []EvalError, error) {
	// Empty source is a valid program with no value.
	if strings.TrimSpace(source) == "" {
		return "", nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, e.tol)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return "", parseZygomysError(err), nil
	}

	res, err := env.Run()
	if err != nil {
		return "", parseZygomysError(err), nil
	}
	return res.SexpString(nil), nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
