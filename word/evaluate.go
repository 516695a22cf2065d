// SPDX-License-Identifier: MIT

package word

import (
	"fmt"

	"github.com/katalvlaran/sl2word/mat2"
)

// Representation supplies the matrix image of each letter. The word
// package stays independent of which representation family produced the
// images; rep.Representation is the canonical implementation, and tests
// substitute trivial or integer-valued ones.
//
// Contract: Image must return the same matrix for the same letter
// throughout a run (images are fixed once z and the precision are
// chosen), and must report an error for letters outside the alphabet.
type Representation interface {
	// Image returns the matrix image of l at the run precision.
	Image(l Letter) (*mat2.Matrix, error)
}

// Evaluate folds the word's letter images, left to right, into a single
// matrix: starting from the identity at prec bits,
//
//	acc = acc · image(w[0]) · image(w[1]) · … · image(w[len-1])
//
// The left letter lands on the left of the running product. This order
// is a binding contract: matrix multiplication is non-commutative, and
// the reversed fold evaluates a different group element with a different
// trace. The empty word returns the exact identity (trace 2).
//
// Evaluate is a pure function of (w, rep, prec): no I/O, no shared state,
// no reduction of cancelling letter pairs — "aA" multiplies two honest
// inverse matrices and lands near the identity only up to rounding.
//
// Errors: any Image failure aborts immediately, wrapped with the letter
// position; no partial result is returned.
// Complexity: O(len(w)) matrix products, each O(M(prec)).
func Evaluate(w Word, rep Representation, prec uint) (*mat2.Matrix, error) {
	if rep == nil {
		panic("word: Evaluate called with nil representation")
	}

	acc := mat2.Identity(prec)
	for i, l := range w {
		img, err := rep.Image(l)
		if err != nil {
			return nil, fmt.Errorf("letter %d (%q): %w", i, byte(l), err)
		}
		acc = acc.Mul(img)
	}

	return acc, nil
}
