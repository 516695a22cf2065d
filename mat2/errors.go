// SPDX-License-Identifier: MIT
// Package mat2: sentinel error set.
// Algorithms return these sentinels and tests match them via errors.Is.
// Panics are reserved for programmer errors (nil cells in constructors).

package mat2

import "errors"

// ErrSingular is returned when a matrix inverse is required but the
// determinant is exactly zero. With a correctly constructed generator
// representation this never fires; it indicates a misconfigured or
// degenerate representation, and is surfaced rather than coerced.
var ErrSingular = errors.New("mat2: matrix is singular")
