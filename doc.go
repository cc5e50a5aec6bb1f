// Package rootfind is your in-memory toolbox for locating roots of
// one-dimensional nonlinear equations — a fast local method, a robust
// bracketing fallback, and a single entry point that combines them.
//
// 🚀 What is rootfind?
//
//	A small, focused library that solves f(x) == 0 for scalar f:
//		• Newton–Raphson: fast local iteration driven by f and f'
//		• Bisection: guaranteed progress on a sign-changing bracket
//		• Solve: Newton first, automatic bisection fallback on failure
//
// ✨ Why choose rootfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict bracket checks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – per-iteration hooks for tracing and diagnostics
//
// All code lives in one subpackage:
//
//	roots/ — NewtonRaphson, Bisection and the composite Solve dispatcher
//
// Quick ASCII example:
//
//	    f(x)
//	     │    ╱
//	   ──┼──●───── x        ● = root, found by halving [x0,x1]
//	     │ ╱                    or by sliding down the tangent
//
// Dive into roots/doc.go for algorithm outlines, error contracts and
// complexity notes, and roots/example_test.go for runnable examples.
//
//	go get github.com/katalvlaran/rootfind/roots
package rootfind
