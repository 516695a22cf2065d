// SPDX-License-Identifier: MIT
// Package word: Letter and Word domain types plus parsing and random
// synthesis. Derivation and evaluation live in dedicated files.

package word

import (
	"fmt"
	"math/rand"
)

// Letter is one symbol of the free-group alphabet. 'a' and 'b' are the
// base generators; 'A' and 'B' are their formal inverses. No other byte
// is a valid Letter.
type Letter byte

const (
	// GenA is the first base generator.
	GenA Letter = 'a'
	// GenB is the second base generator.
	GenB Letter = 'b'
	// InvA is the formal inverse of GenA.
	InvA Letter = 'A'
	// InvB is the formal inverse of GenB.
	InvB Letter = 'B'
)

// alphabet lists the four valid letters in the order used by Random.
var alphabet = [4]Letter{GenA, GenB, InvA, InvB}

// Valid reports whether l is one of the four alphabet symbols.
// Complexity: O(1).
func (l Letter) Valid() bool {
	return l == GenA || l == GenB || l == InvA || l == InvB
}

// IsInverse reports whether l is a formal inverse ('A' or 'B').
func (l Letter) IsInverse() bool {
	return l == InvA || l == InvB
}

// Base returns the base generator of l: 'a' for 'a'/'A', 'b' for 'b'/'B'.
// The result is undefined for invalid letters.
func (l Letter) Base() Letter {
	if l == InvA {
		return GenA
	}
	if l == InvB {
		return GenB
	}

	return l
}

// Word is a finite ordered sequence of letters, possibly empty and never
// implicitly reduced. The empty word evaluates to the identity matrix.
type Word []Letter

// Parse validates s against the alphabet and returns it as a Word.
// The first invalid character aborts with ErrInvalidLetter, wrapped with
// its position; no partial word is returned.
// Complexity: O(len(s)).
func Parse(s string) (Word, error) {
	w := make(Word, len(s))
	for i := 0; i < len(s); i++ {
		l := Letter(s[i])
		if !l.Valid() {
			return nil, fmt.Errorf("position %d (%q): %w", i, s[i], ErrInvalidLetter)
		}
		w[i] = l
	}

	return w, nil
}

// String renders the word as its letter string. Satisfies fmt.Stringer.
func (w Word) String() string {
	b := make([]byte, len(w))
	for i, l := range w {
		b[i] = byte(l)
	}

	return string(b)
}

// Random returns n letters drawn independently and uniformly from the
// four-letter alphabet using rng. Callers own the seeding policy; a fixed
// seed reproduces the same word.
// Panics on negative n or nil rng (programmer errors).
// Complexity: O(n).
func Random(n int, rng *rand.Rand) Word {
	if n < 0 {
		panic("word: Random called with negative length")
	}
	if rng == nil {
		panic("word: Random called with nil rng")
	}

	w := make(Word, n)
	for i := range w {
		w[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return w
}
