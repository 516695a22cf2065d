// Package word models elements of the free group on two generators and
// the two ways this repo produces them: Stern–Brocot derivation from a
// rational, and uniform random synthesis — plus their evaluation into a
// single 2×2 matrix under a pluggable representation.
//
// 🚀 What is a word?
//
//	A finite sequence over the four-letter alphabet {a, b, A, B}, where
//	'A' and 'B' are the formal inverses of 'a' and 'b'. Words are never
//	reduced: "aA" is a legal word and evaluates honestly through matrix
//	multiplication, landing near (not exactly on) the identity.
//
// ✨ What the package provides:
//
//   - Parse / String — strict validation against the 4-letter alphabet
//   - Derive(p, q) — the canonical Christoffel word of a reduced positive
//     rational, read off a mediant descent of the Stern–Brocot tree;
//     Derive(3, 2) is exactly "ababb", and len == p+q always
//   - Random(n, rng) — n letters drawn uniformly and independently
//   - Evaluate(w, rep, prec) — left-to-right fold of letter images from
//     the identity: acc = acc · image(letter). The fold order is a binding
//     contract, not an implementation detail — matrix multiplication does
//     not commute, and the opposite order evaluates a different group
//     element.
//
// ⚙️ Usage:
//
//	w, err := word.Derive(3, 2)               // "ababb"
//	m, err := word.Evaluate(w, rep, 100)      // rep: word.Representation
//	fmt.Println(m.Trace())
//
// Letter-to-boundary convention (calibrated against reference output):
// the tree descends between 0/1, carrying the primitive word "a", and
// 1/0, carrying "b". Consequently the numerator p counts 'b' letters and
// the denominator q counts 'a' letters in the derived word.
//
// Complexity: Derive is O(p+q) letters of output and O(depth) descent
// steps; Evaluate is O(len(w)) matrix products.
package word
