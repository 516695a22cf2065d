// SPDX-License-Identifier: MIT
// Package rep: sentinel error set.

package rep

import "errors"

// ErrDegenerate is returned when a family cannot produce invertible
// generator images at the given parameter — for the Standard family,
// when z² = 1 (or the derived y² = 1) collapses a required square root
// to exact zero. Surfaced as a computation failure, never coerced.
var ErrDegenerate = errors.New("rep: degenerate representation parameter")
