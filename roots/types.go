// Package roots: option types and defaults shared by all solvers.
package roots

import (
	"fmt"
	"math"
)

// Func is a scalar function ℝ→ℝ. Solvers call it repeatedly and assume
// it is pure: same x, same result, no side effects.
type Func func(x float64) float64

// Default solver parameters, applied by DefaultOptions.
const (
	// DefaultEps is the convergence tolerance on |f(x)|.
	DefaultEps = 1.0e-5

	// DefaultMaxIterations caps the refinement steps of a single solver
	// stage before it gives up with ErrConvergence.
	DefaultMaxIterations = 20
)

// Options holds parameters and callbacks shared by NewtonRaphson,
// Bisection and Solve.
type Options struct {
	// Eps is the tolerance: convergence is |f(x)| < Eps. Must be a
	// positive finite value.
	Eps float64

	// MaxIterations caps NewtonRaphson and Bisection when called
	// directly. Zero is legal and fails on the first non-converged pass.
	MaxIterations int

	// MaxNewtonIterations caps the Newton stage inside Solve.
	MaxNewtonIterations int

	// MaxBisectionIterations caps the bisection stage inside Solve.
	MaxBisectionIterations int

	// OnIteration, when non-nil, observes every completed refinement
	// step: the 1-based iteration count, the current estimate and its
	// residual f(x). Leaving it nil keeps the evaluation pattern of the
	// solvers untouched.
	OnIteration func(iteration int, x, fx float64)

	// internal error recorded during option parsing
	err error
}

// Option configures solver behavior via functional arguments. Options
// are applied in call order; later options win. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*Options)

// DefaultOptions returns Options with the package defaults:
//   - Eps == DefaultEps
//   - every iteration cap == DefaultMaxIterations
//   - no iteration hook.
func DefaultOptions() Options {
	return Options{
		Eps:                    DefaultEps,
		MaxIterations:          DefaultMaxIterations,
		MaxNewtonIterations:    DefaultMaxIterations,
		MaxBisectionIterations: DefaultMaxIterations,
		OnIteration:            nil,
		err:                    nil,
	}
}

// WithEps sets the convergence tolerance on |f(x)|.
// eps must be positive and finite; anything else → ErrOptionViolation.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Eps must be positive and finite (%v)", ErrOptionViolation, eps)

			return
		}
		o.Eps = eps
	}
}

// WithMaxIterations sets the iteration cap for every solver stage:
// MaxIterations, MaxNewtonIterations and MaxBisectionIterations all
// take the given value. Use the stage-specific setters to tune the
// stages of Solve independently.
//
//	n > 0:  allow up to n refinement steps
//	n == 0: fail on the first non-converged pass
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
		o.MaxNewtonIterations = n
		o.MaxBisectionIterations = n
	}
}

// WithMaxNewtonIterations caps only the Newton stage of Solve.
// Negative values → ErrOptionViolation; zero forces the fallback.
func WithMaxNewtonIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNewtonIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxNewtonIterations = n
	}
}

// WithMaxBisectionIterations caps only the bisection stage of Solve.
// Negative values → ErrOptionViolation.
func WithMaxBisectionIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxBisectionIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxBisectionIterations = n
	}
}

// WithOnIteration registers a callback observing each completed
// refinement step (iteration count, estimate, residual).
func WithOnIteration(fn func(iteration int, x, fx float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// buildOptions applies the supplied options over the defaults and
// surfaces any recorded option violation.
func buildOptions(options []Option) (Options, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.err != nil {
		return Options{}, opts.err
	}

	return opts, nil
}
