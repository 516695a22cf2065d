// SPDX-License-Identifier: MIT

package rep

import (
	"fmt"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
	"github.com/katalvlaran/sl2word/word"
)

// Family produces the two generator images for a parameter z. Any
// implementation returning two invertible matrices, continuously
// dependent on z, is a valid family; the rest of the system never looks
// inside. The returned matrices must carry z's precision.
type Family interface {
	// Generators returns (image('a'), image('b')) at parameter z, or
	// ErrDegenerate when no invertible images exist there.
	Generators(z *bigcplx.Complex) (imgA, imgB *mat2.Matrix, err error)
}

// Representation memoizes the four letter images of a family at a fixed
// (z, precision): the two generator images and their matrix inverses.
// It implements word.Representation. Immutable after construction.
type Representation struct {
	prec uint
	imgA *mat2.Matrix // image('a')
	imgB *mat2.Matrix // image('b')
	invA *mat2.Matrix // image('A') = image('a')⁻¹
	invB *mat2.Matrix // image('B') = image('b')⁻¹
}

// New builds the memoized representation of fam at z. The four images
// are computed exactly once; every subsequent Image call is a lookup.
// Returns ErrDegenerate (possibly wrapping mat2.ErrSingular) when a
// generator image does not exist or cannot be inverted.
// Panics on nil arguments (programmer error).
func New(fam Family, z *bigcplx.Complex) (*Representation, error) {
	if fam == nil || z == nil {
		panic("rep: New called with nil family or parameter")
	}

	imgA, imgB, err := fam.Generators(z)
	if err != nil {
		return nil, err
	}

	invA, err := imgA.Inv()
	if err != nil {
		return nil, fmt.Errorf("image of 'A': %w", ErrDegenerate)
	}
	invB, err := imgB.Inv()
	if err != nil {
		return nil, fmt.Errorf("image of 'B': %w", ErrDegenerate)
	}

	return &Representation{
		prec: z.Prec(),
		imgA: imgA, imgB: imgB,
		invA: invA, invB: invB,
	}, nil
}

// Prec reports the bit precision the images were built at.
func (r *Representation) Prec() uint { return r.prec }

// Image returns the memoized matrix image of l.
// Letters outside the alphabet report word.ErrInvalidLetter.
// Complexity: O(1).
func (r *Representation) Image(l word.Letter) (*mat2.Matrix, error) {
	switch l {
	case word.GenA:
		return r.imgA, nil
	case word.GenB:
		return r.imgB, nil
	case word.InvA:
		return r.invA, nil
	case word.InvB:
		return r.invB, nil
	default:
		return nil, fmt.Errorf("%q: %w", byte(l), word.ErrInvalidLetter)
	}
}

// EvaluateWord is the one-call evaluation entry point: it builds the
// memoized representation of fam at z, folds w left to right, and
// returns the resulting matrix together with its trace.
// Pure and stateless; errors from construction or evaluation propagate
// unchanged.
func EvaluateWord(w word.Word, fam Family, z *bigcplx.Complex) (*mat2.Matrix, *bigcplx.Complex, error) {
	r, err := New(fam, z)
	if err != nil {
		return nil, nil, err
	}

	m, err := word.Evaluate(w, r, z.Prec())
	if err != nil {
		return nil, nil, err
	}

	return m, m.Trace(), nil
}
