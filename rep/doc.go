// Package rep maps free-group letters to 2×2 complex matrices: the
// representation layer between words and matrix evaluation.
//
// 🚀 What is a representation here?
//
//	A Family turns the run parameter z into the two generator images
//	image('a') and image('b'); a Representation memoizes those two
//	matrices together with their inverses (the images of 'A' and 'B'),
//	computed once per run — every letter of every word reuses one of
//	the same four matrices.
//
// ✨ What the package provides:
//
//   - Family — the pluggable strategy interface: any function producing
//     two invertible matrices from z is a valid family, which keeps the
//     evaluator and the Stern–Brocot deriver independent of the concrete
//     research mapping
//   - Standard — the built-in family:
//     image('a') = [cz c; c cz] with c = 1/√(z²−1), and
//     image('b') = [cy ci; −ci cy] with y = −z/√(z²−1), c = 1/√(y²−1);
//     both images are unimodular wherever they are defined
//   - Trivial — both generators ↦ identity, for substitution testing
//   - EvaluateWord — the one-call entry point: build the representation,
//     fold the word, report matrix and trace
//
// Degenerate parameters (z² = 1, or y² = 1 for the 'b' image) make a
// generator image undefined; they surface as ErrDegenerate and are never
// coerced.
//
// ⚙️ Usage:
//
//	z := bigcplx.FromFloat64(1, 2, 100)
//	m, tr, err := rep.EvaluateWord(w, rep.Standard{}, z)
//
// Complexity: building a Representation costs a constant number of
// complex operations; Image is O(1) lookup afterwards.
package rep
