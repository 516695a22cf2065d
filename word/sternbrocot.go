// SPDX-License-Identifier: MIT

package word

import (
	"fmt"
	"math"
	"math/bits"
)

// Derive — canonical Stern–Brocot (Christoffel) word of a rational
//
// Description:
//
//	Every reduced positive rational p/q labels exactly one node of the
//	Stern–Brocot tree, the infinite binary tree generated by mediant
//	subdivision between the boundary fractions 0/1 and 1/0. Replaying
//	the descent to that node, concatenating sub-words by the mediant
//	rule, yields the canonical unreduced word over {a, b} for p/q.
//
// Algorithm Outline:
//  1. Reject (p, q) unless p, q ≥ 1 and gcd(p, q) = 1.
//  2. Maintain two bracketing fractions with their words:
//     low  = 0/1 carrying "a",  high = 1/0 carrying "b".
//  3. Repeat: med = mediant(low, high) = (lowN+highN)/(lowD+highD).
//     - med < p/q: descend right — low becomes med, and the low word
//     becomes lowWord ++ highWord;
//     - med > p/q: descend left — high becomes med, and the high word
//     becomes lowWord ++ highWord;
//     - med = p/q: the node is reached; the answer is lowWord ++ highWord.
//  4. All fraction comparisons use full-width cross multiplication, so
//     the descent is exact for any uint64 inputs.
//
// The descent is the subtractive Euclidean algorithm on (p, q) in
// disguise: each right step subtracts q from p (in continued-fraction
// terms), each left step subtracts p from q, and the descent terminates
// exactly because gcd(p, q) = 1.
//
// Properties (pinned by tests):
//   - Derive(3, 2) = "ababb".
//   - len(Derive(p, q)) = p + q; 'b' occurs p times, 'a' occurs q times.
//   - Derive(1, 1) = "ab", the root mediant.
//
// Errors:
//   - ErrInvalidFraction  — p or q is zero, or gcd(p, q) ≠ 1.
//   - ErrFractionTooLarge — p+q letters do not fit a Word.
//
// Complexity: O(p+q) output letters; descent depth equals the sum of the
// continued-fraction partial quotients of p/q.
func Derive(p, q uint64) (Word, error) {
	// Validate before any descent.
	if p == 0 || q == 0 {
		return nil, fmt.Errorf("%d/%d: %w", p, q, ErrInvalidFraction)
	}
	if gcd(p, q) != 1 {
		return nil, fmt.Errorf("%d/%d: %w", p, q, ErrInvalidFraction)
	}
	const maxLen = uint64(math.MaxInt)
	if p > maxLen || q > maxLen-p {
		return nil, fmt.Errorf("%d/%d: %w", p, q, ErrFractionTooLarge)
	}

	// Bracketing fractions with their primitive words.
	lowN, lowD := uint64(0), uint64(1)
	highN, highD := uint64(1), uint64(0)
	lowW := Word{GenA}
	highW := Word{GenB}

	for {
		medN, medD := lowN+highN, lowD+highD
		switch cross(medN, q, p, medD) {
		case -1: // med < p/q: the target sits in (med, high)
			lowN, lowD = medN, medD
			lowW = concat(lowW, highW)
		case +1: // med > p/q: the target sits in (low, med)
			highN, highD = medN, medD
			highW = concat(lowW, highW)
		default: // med = p/q: node reached
			return concat(lowW, highW), nil
		}
	}
}

// gcd returns the greatest common divisor of a and b (both > 0).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// cross compares a/b with c/d via the 128-bit products a·b′ vs c·d′,
// returning -1, 0 or +1. Full-width multiplication keeps the comparison
// exact even when the mediant components grow toward p+q.
func cross(a, b, c, d uint64) int {
	lhi, llo := bits.Mul64(a, b)
	rhi, rlo := bits.Mul64(c, d)
	switch {
	case lhi < rhi || (lhi == rhi && llo < rlo):
		return -1
	case lhi > rhi || (lhi == rhi && llo > rlo):
		return +1
	default:
		return 0
	}
}

// concat returns u ++ v as a fresh word; neither operand is aliased, so
// the bracketing words stay immutable across descent steps.
func concat(u, v Word) Word {
	w := make(Word, 0, len(u)+len(v))
	w = append(w, u...)
	w = append(w, v...)

	return w
}
