// Package roots - composite dispatcher over the two solvers.
//
// Solve is the canonical entry point: run Newton–Raphson for speed,
// fall back to bisection for robustness. The fallback fires only on
// ErrConvergence from the Newton stage; every other failure propagates
// unchanged, and bisection gets exactly one attempt.
package roots

import (
	"errors"
	"fmt"
)

// Solve finds a root of f, trying NewtonRaphson from x0 first and
// falling back to Bisection over [x0, x1] if Newton fails to converge.
//
// Contracts:
//   - f and df must be non-nil pure scalar functions.
//   - x0 doubles as the Newton starting point and the left bracket end.
//   - The Newton stage is capped by MaxNewtonIterations, the bisection
//     stage by MaxBisectionIterations (WithMaxIterations sets both).
//   - Only ErrConvergence from the Newton stage triggers the fallback;
//     bisection's own ErrConvergence or ErrBracketSign reaches the
//     caller as-is. No retry beyond the one fallback.
//
// Errors: ErrNilFunc, ErrOptionViolation, and whatever the bisection
// stage returns once the fallback fires.
func Solve(f, df Func, x0, x1 float64, options ...Option) (float64, error) {
	opts, err := buildOptions(options)
	if err != nil {
		return 0, err
	}
	if f == nil || df == nil {
		return 0, fmt.Errorf("%w: Solve requires f and df", ErrNilFunc)
	}

	// Stage 1 - Newton–Raphson under its own cap.
	newtonOpts := opts
	newtonOpts.MaxIterations = opts.MaxNewtonIterations
	x, err := newtonIterate(f, df, x0, newtonOpts)
	if err == nil {
		return x, nil
	}
	if !errors.Is(err, ErrConvergence) {
		return 0, err
	}

	// Stage 2 - bisection over the supplied bracket.
	bisectOpts := opts
	bisectOpts.MaxIterations = opts.MaxBisectionIterations

	return bisectIterate(f, x0, x1, bisectOpts)
}
