package roots

import (
	"fmt"
	"math"
)

// NewtonRaphson solves f(x) == 0 by Newton–Raphson iteration starting
// from x0, using df as the derivative of f.
//
// Contracts:
//   - f and df must be non-nil pure scalar functions.
//   - The loop guard tests |f(x)| > eps on the current estimate before
//     every update; the very first test uses x0 unmodified.
//   - A zero derivative is not trapped: f(x)/df(x) follows IEEE-754
//     division (±Inf or NaN) and flows through the iteration. A NaN
//     residual fails the guard and is returned as-is with a nil error.
//
// Errors: ErrNilFunc, ErrOptionViolation, and ErrConvergence once the
// iteration count exceeds the cap without |f(x)| < eps.
//
// Complexity: quadratic convergence near a simple root; two f calls and
// one df call per iteration (plus one f call per guard test).
func NewtonRaphson(f, df Func, x0 float64, options ...Option) (float64, error) {
	opts, err := buildOptions(options)
	if err != nil {
		return 0, err
	}
	if f == nil || df == nil {
		return 0, fmt.Errorf("%w: NewtonRaphson requires f and df", ErrNilFunc)
	}

	return newtonIterate(f, df, x0, opts)
}

// newtonIterate runs the Newton–Raphson loop with opts.MaxIterations as
// the effective cap; Solve reuses it with its stage-specific cap.
func newtonIterate(f, df Func, x0 float64, opts Options) (float64, error) {
	var (
		x         = x0
		iteration = 0
	)
	for math.Abs(f(x)) > opts.Eps {
		x = x - f(x)/df(x)
		iteration++
		if opts.OnIteration != nil {
			opts.OnIteration(iteration, x, f(x))
		}
		if iteration > opts.MaxIterations {
			return 0, fmt.Errorf("%w: Newton-Raphson exceeded %d iterations", ErrConvergence, opts.MaxIterations)
		}
	}

	return x, nil
}
