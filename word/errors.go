// SPDX-License-Identifier: MIT
// Package word: sentinel error set.
// All user-triggered failures surface as these sentinels, optionally
// wrapped with position or value context at the facade; match with
// errors.Is.

package word

import "errors"

var (
	// ErrInvalidLetter is returned by Parse when the input contains a
	// character outside {a, b, A, B}. Reported immediately; no partial
	// word is ever produced.
	ErrInvalidLetter = errors.New("word: letter outside {a,b,A,B}")

	// ErrInvalidFraction is returned by Derive when (p, q) is not a pair
	// of coprime positive integers. Rejected before any tree descent.
	ErrInvalidFraction = errors.New("word: fraction must be coprime positive integers")

	// ErrFractionTooLarge is returned by Derive when p+q does not fit the
	// address space of a word (the derived word has exactly p+q letters).
	ErrFractionTooLarge = errors.New("word: derived word length overflows")
)
