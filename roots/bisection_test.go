package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/roots"
)

// TestBisection_SqrtTwo verifies convergence to √2 on f(x)=x²−2 over
// the bracket [0, 2] within the default tolerance and cap.
func TestBisection_SqrtTwo(t *testing.T) {
	x, err := roots.Bisection(quadratic, 0.0, 2.0)
	require.NoError(t, err, "valid bracket must converge")
	assert.InDelta(t, math.Sqrt2, x, 1e-5, "root should be within eps of √2")
}

// TestBisection_PositiveEndpoints verifies ErrBracketSign on a bracket
// where f is strictly positive at both ends (f(x)=x²+1 everywhere).
func TestBisection_PositiveEndpoints(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := roots.Bisection(f, -1.0, 1.0)
	require.ErrorIs(t, err, roots.ErrBracketSign, "rootless positive f must fail on the first pass")
	assert.Contains(t, err.Error(), "positive for both endpoints", "message must name the positive-positive case")
}

// TestBisection_NegativeEndpoints verifies the symmetric failure when f
// is strictly negative at both ends.
func TestBisection_NegativeEndpoints(t *testing.T) {
	f := func(x float64) float64 { return -x*x - 1 }

	_, err := roots.Bisection(f, -1.0, 1.0)
	require.ErrorIs(t, err, roots.ErrBracketSign, "rootless negative f must fail on the first pass")
	assert.Contains(t, err.Error(), "negative for both endpoints", "message must name the negative-negative case")
}

// TestBisection_ZeroEndpointPassesCheck verifies the strict sign check:
// an endpoint evaluating to exactly zero does not trigger ErrBracketSign
// even though both non-zero evaluations share a sign.
func TestBisection_ZeroEndpointPassesCheck(t *testing.T) {
	identity := func(x float64) float64 { return x }

	x, err := roots.Bisection(identity, 0.0, 1.0)
	require.NoError(t, err, "f(x0)==0 must pass the bracket validation")
	assert.InDelta(t, 0.0, x, 1e-5, "halving toward the zero endpoint must converge")
}

// TestBisection_ExactZeroMidpoint verifies the no-match narrowing pass:
// when f(mid) is exactly zero against mismatched endpoint signs the
// bracket stays put for that pass, and the next guard test exits with
// the exact root.
func TestBisection_ExactZeroMidpoint(t *testing.T) {
	identity := func(x float64) float64 { return x }

	var iterations []int
	hook := func(iteration int, mid, fMid float64) {
		iterations = append(iterations, iteration)
	}

	// [-1,3] narrows to [-1,1] on the first pass; the second pass lands
	// mid exactly on 0 with no matching narrowing case.
	x, err := roots.Bisection(identity, -1.0, 3.0, roots.WithOnIteration(hook))
	require.NoError(t, err)
	assert.Equal(t, 0.0, x, "midpoint landing exactly on the root must be returned as-is")
	assert.Equal(t, []int{1, 2}, iterations, "the no-match pass still counts toward the cap")
}

// TestBisection_IterationCapExceeded verifies a too-small cap fails with
// ErrConvergence.
func TestBisection_IterationCapExceeded(t *testing.T) {
	_, err := roots.Bisection(quadratic, 0.0, 2.0, roots.WithMaxIterations(3))
	assert.ErrorIs(t, err, roots.ErrConvergence, "cap 3 is too low for eps=1e-5 on [0,2]")
}

// TestBisection_NilFunc verifies that nil f is rejected.
func TestBisection_NilFunc(t *testing.T) {
	_, err := roots.Bisection(nil, 0.0, 2.0)
	assert.ErrorIs(t, err, roots.ErrNilFunc, "nil f must be rejected")
}

// TestBisection_OptionViolation verifies invalid options surface before
// any evaluation of f.
func TestBisection_OptionViolation(t *testing.T) {
	calls := 0
	counted := func(x float64) float64 {
		calls++

		return x*x - 2
	}

	_, err := roots.Bisection(counted, 0.0, 2.0, roots.WithEps(0))
	assert.ErrorIs(t, err, roots.ErrOptionViolation, "Eps == 0 must error")
	assert.Zero(t, calls, "f must not be evaluated on option violations")
}

// TestBisection_Idempotent verifies two identical calls yield
// bit-identical results.
func TestBisection_Idempotent(t *testing.T) {
	a, err := roots.Bisection(quadratic, 0.0, 2.0)
	require.NoError(t, err)
	b, err := roots.Bisection(quadratic, 0.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b), "pure inputs must give bit-identical roots")
}
