package engine

import (
	"time"

	"github.com/pkg/errors"
)

// DefaultTimeout is the hard limit for a single evaluation unless
// WithTimeout says otherwise.
const DefaultTimeout = 5 * time.Second

// evalResult passes evaluation results through channels.
type evalResult struct {
	value  string
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if the evaluation exceeds timeout. Results whose generation is no longer
// current are discarded.
//
// On timeout, the goroutine may still be running; the generation check
// ensures its result is discarded when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	timeout time.Duration,
	current func() uint64,
) (string, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if gen != current() {
			return "", nil, errors.New("evaluation superseded by newer request")
		}
		return res.value, res.errors, res.err

	case <-timer.C:
		return "", nil, errors.Errorf("evaluation timed out after %s", timeout)
	}
}
