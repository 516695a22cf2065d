package word_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
	"github.com/katalvlaran/sl2word/word"
)

const prec = 128

// shearRep maps the generators to the integer shear matrices
//
//	a ↦ [[1,1],[0,1]]   b ↦ [[1,0],[1,1]]
//
// and the inverse letters to their exact matrix inverses. Every product
// of these images is exact in binary floating point, so evaluation
// results can be compared with strict equality.
type shearRep struct{ prec uint }

func (r shearRep) Image(l word.Letter) (*mat2.Matrix, error) {
	cell := func(v float64) *bigcplx.Complex { return bigcplx.FromFloat64(v, 0, r.prec) }
	switch l {
	case word.GenA:
		return mat2.New(cell(1), cell(1), cell(0), cell(1)), nil
	case word.GenB:
		return mat2.New(cell(1), cell(0), cell(1), cell(1)), nil
	case word.InvA:
		return mat2.New(cell(1), cell(-1), cell(0), cell(1)), nil
	case word.InvB:
		return mat2.New(cell(1), cell(0), cell(-1), cell(1)), nil
	default:
		return nil, fmt.Errorf("shearRep: no image for %q", byte(l))
	}
}

// realMat builds an exact real-valued matrix at the test precision.
func realMat(m00, m01, m10, m11 float64) *mat2.Matrix {
	return mat2.New(
		bigcplx.FromFloat64(m00, 0, prec), bigcplx.FromFloat64(m01, 0, prec),
		bigcplx.FromFloat64(m10, 0, prec), bigcplx.FromFloat64(m11, 0, prec),
	)
}

// mustParse builds a Word or fails the test.
func mustParse(t *testing.T, s string) word.Word {
	t.Helper()
	w, err := word.Parse(s)
	require.NoError(t, err)

	return w
}

// TestEvaluate_EmptyWordIsIdentity pins the empty-word contract: exact
// identity, trace exactly 2.
func TestEvaluate_EmptyWordIsIdentity(t *testing.T) {
	m, err := word.Evaluate(word.Word{}, shearRep{prec}, prec)
	require.NoError(t, err)

	assert.True(t, m.Equal(mat2.Identity(prec)), "empty word maps to I")
	assert.True(t, m.Trace().Equal(bigcplx.FromFloat64(2, 0, prec)), "trace is exactly 2")
}

// TestEvaluate_FoldOrder pins the left-to-right order on the shear pair:
// "ab" must give a·b = [[2,1],[1,1]], not b·a = [[1,1],[1,2]].
func TestEvaluate_FoldOrder(t *testing.T) {
	rep := shearRep{prec}

	ab, err := word.Evaluate(mustParse(t, "ab"), rep, prec)
	require.NoError(t, err)
	ba, err := word.Evaluate(mustParse(t, "ba"), rep, prec)
	require.NoError(t, err)

	assert.True(t, ab.Equal(realMat(2, 1, 1, 1)), `"ab" evaluates to a·b`)
	assert.True(t, ba.Equal(realMat(1, 1, 1, 2)), `"ba" evaluates to b·a`)
	assert.False(t, ab.Equal(ba), "reversed fold is a different element")
}

// TestEvaluate_Homomorphism verifies evaluate(w1 ++ w2) ==
// evaluate(w1) · evaluate(w2) exactly under the integer representation.
func TestEvaluate_Homomorphism(t *testing.T) {
	rep := shearRep{prec}
	cases := [][2]string{
		{"ab", "ba"}, {"aB", "Abb"}, {"", "ab"}, {"bbA", ""}, {"aA", "bB"},
	}
	for _, c := range cases {
		w1, w2 := mustParse(t, c[0]), mustParse(t, c[1])
		whole, err := word.Evaluate(append(append(word.Word{}, w1...), w2...), rep, prec)
		require.NoError(t, err)

		left, err := word.Evaluate(w1, rep, prec)
		require.NoError(t, err)
		right, err := word.Evaluate(w2, rep, prec)
		require.NoError(t, err)

		assert.True(t, whole.Equal(left.Mul(right)),
			"homomorphism fails for %q ++ %q", c[0], c[1])
	}
}

// TestEvaluate_CancellingPair shows "aA" hitting the exact identity when
// the images are integer matrices (exact inverses, no rounding).
func TestEvaluate_CancellingPair(t *testing.T) {
	for _, s := range []string{"aA", "Aa", "bB", "Bb", "abBA"} {
		m, err := word.Evaluate(mustParse(t, s), shearRep{prec}, prec)
		require.NoError(t, err)
		assert.True(t, m.Equal(mat2.Identity(prec)), "%q must cancel exactly", s)
	}
}

// TestEvaluate_ImageErrorAborts verifies immediate, position-wrapped
// abortion when the representation rejects a letter.
func TestEvaluate_ImageErrorAborts(t *testing.T) {
	bogus := word.Word{word.GenA, word.Letter('x')} // bypasses Parse on purpose

	_, err := word.Evaluate(bogus, shearRep{prec}, prec)
	require.Error(t, err)
	assert.ErrorContains(t, err, "letter 1", "the failing position is named")

	assert.Panics(t, func() { _, _ = word.Evaluate(bogus, nil, prec) }, "nil representation is a programmer error")
}
