package roots

import "errors"

// Sentinel errors returned by the solvers. Callers match them with
// errors.Is; contextual detail is attached via %w wrapping at the point
// of failure, never by replacing the sentinel.
var (
	// ErrConvergence indicates the iteration cap was exceeded before the
	// residual |f(x)| dropped below the tolerance.
	ErrConvergence = errors.New("roots: failed to converge within the iteration cap")

	// ErrBracketSign indicates both bracket endpoints evaluated with the
	// same strict sign; the wrapped message names which case occurred.
	// An endpoint evaluating to exactly zero does not trigger it.
	ErrBracketSign = errors.New("roots: bracket endpoints have the same sign")

	// ErrNilFunc indicates a required function handle (f, or df for the
	// Newton stage) was nil.
	ErrNilFunc = errors.New("roots: nil function handle")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// e.g. a non-positive tolerance or a negative iteration cap.
	ErrOptionViolation = errors.New("roots: invalid option supplied")
)
