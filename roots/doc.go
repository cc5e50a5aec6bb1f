// Package roots provides scalar root-finding for nonlinear equations
// f(x) == 0, combining a fast local method with a robust bracketing
// fallback.
//
// 🚀 What is roots?
//
//	Three solvers over a plain func(float64) float64:
//	  • NewtonRaphson — iterate x ← x − f(x)/f'(x) until |f(x)| < eps.
//	  • Bisection     — halve a sign-changing bracket [x0,x1] until
//	    |f(mid)| < eps, re-validating the bracket every pass.
//	  • Solve         — run NewtonRaphson first; on ErrConvergence fall
//	    back to Bisection over the supplied bracket. Nothing else.
//
// ✨ Key features:
//   - functional options: WithEps, WithMaxIterations, stage-specific caps
//   - strict sentinel errors matched via errors.Is
//   - per-iteration hook (WithOnIteration) for tracing estimates/residuals
//   - deterministic: identical inputs yield bit-identical results
//
// Algorithm outline (NewtonRaphson):
//  1. Test |f(x)| > eps on the current x (the first test uses x0 itself).
//  2. Update x ← x − f(x)/f'(x); count the iteration.
//  3. Fail with ErrConvergence once the count exceeds the cap.
//     A zero derivative is not trapped: the division follows IEEE-754
//     (±Inf/NaN) and propagates through the iteration.
//
// Algorithm outline (Bisection):
//  1. mid = (x0+x1)/2 once up front; the loop guard tests |f(mid)| > eps
//     on the previous midpoint before mid is recomputed.
//  2. Each pass freshly evaluates f(mid), f(x0), f(x1); endpoints that
//     are both strictly positive or both strictly negative fail with
//     ErrBracketSign (an exactly-zero endpoint passes the check).
//  3. The half retaining the sign change replaces one endpoint; when no
//     narrowing case matches (f(mid) exactly zero against mismatched
//     endpoint signs) the bracket stays put for that pass and the next
//     guard test exits.
//
// Errors (sentinel):
//
//	– ErrConvergence     if the iteration cap is exceeded before |f| < eps.
//	– ErrBracketSign     if both bracket endpoints share a strict sign.
//	– ErrNilFunc         if a required function handle is nil.
//	– ErrOptionViolation if an invalid Option is supplied.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/roots"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	x, err := roots.Solve(f, df, 1.0, 2.0,
//	    roots.WithEps(1e-5),
//	    roots.WithMaxNewtonIterations(20),
//	    roots.WithMaxBisectionIterations(20),
//	)
//	if err != nil {
//	    // errors.Is(err, roots.ErrConvergence) / roots.ErrBracketSign
//	}
//	fmt.Println("root:", x)
//
// Complexity:
//
//   - NewtonRaphson: quadratic convergence near a simple root;
//     two f calls + one df call per iteration.
//   - Bisection: one bit of accuracy per iteration (bracket halves);
//     four f calls per iteration, no caching between passes.
//   - Solve: cost of the Newton stage, plus the bisection stage when
//     the fallback fires.
//
// See example_test.go for runnable scenarios.
package roots
