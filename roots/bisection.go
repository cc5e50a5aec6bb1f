package roots

import (
	"fmt"
	"math"
)

// Bisection solves f(x) == 0 by interval halving over the bracket
// [x0, x1]. f(x0) and f(x1) must differ in sign; the bracket is
// re-validated on every pass, not only at entry.
//
// Contracts:
//   - f must be a non-nil pure scalar function.
//   - The loop guard tests |f(mid)| > eps on the previous midpoint;
//     mid is recomputed inside the body. A pass whose narrowing cases
//     all fail leaves the bracket untouched and still counts toward
//     the cap.
//   - Each pass evaluates f(mid), f(x0) and f(x1) afresh; no values
//     are cached between passes.
//   - The sign check is strict: an endpoint evaluating to exactly zero
//     passes the bracket validation.
//
// Errors: ErrNilFunc, ErrOptionViolation, ErrBracketSign when both
// endpoints share a strict sign, and ErrConvergence once the iteration
// count exceeds the cap.
//
// Complexity: the bracket halves each narrowing pass, one bit of
// accuracy per iteration; four f calls per iteration.
func Bisection(f Func, x0, x1 float64, options ...Option) (float64, error) {
	opts, err := buildOptions(options)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, fmt.Errorf("%w: Bisection requires f", ErrNilFunc)
	}

	return bisectIterate(f, x0, x1, opts)
}

// bisectIterate runs the bisection loop with opts.MaxIterations as the
// effective cap; Solve reuses it with its stage-specific cap.
func bisectIterate(f Func, x0, x1 float64, opts Options) (float64, error) {
	var (
		iteration = 0
		mid       = (x0 + x1) / 2
	)
	for math.Abs(f(mid)) > opts.Eps {
		mid = (x0 + x1) / 2
		fMid := f(mid)
		fX0 := f(x0)
		fX1 := f(x1)

		// Bracket validity; strict signs only, a zero endpoint passes.
		if fX0 > 0 && fX1 > 0 {
			return 0, fmt.Errorf("%w: f(x) positive for both endpoints", ErrBracketSign)
		}
		if fX0 < 0 && fX1 < 0 {
			return 0, fmt.Errorf("%w: f(x) negative for both endpoints", ErrBracketSign)
		}

		// Narrowing: ordered cases, first match wins, x0 before x1.
		// When none match (fMid exactly zero against mismatched endpoint
		// signs) the bracket stays put and the next guard test exits.
		switch {
		case fMid < 0 && fX0 < 0:
			x0 = mid
		case fMid > 0 && fX0 > 0:
			x0 = mid
		case fMid > 0 && fX1 > 0:
			x1 = mid
		case fMid < 0 && fX1 < 0:
			x1 = mid
		}

		iteration++
		if opts.OnIteration != nil {
			opts.OnIteration(iteration, mid, fMid)
		}
		if iteration > opts.MaxIterations {
			return 0, fmt.Errorf("%w: bisection exceeded %d iterations", ErrConvergence, opts.MaxIterations)
		}
	}

	return mid, nil
}
