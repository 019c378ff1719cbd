// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Path: n=1 < min=2: ...").
//   • Validation order: size first, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
