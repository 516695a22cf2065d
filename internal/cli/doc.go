// SPDX-License-Identifier: MIT

// Package cli implements the sl2word command surface.
//
// Two subcommands cover the two pure entry points of the library:
//
//   - eval   — build the standard representation at a complex parameter z
//     and a bit precision, obtain a word (literal, derived from a
//     rational, or random), fold it to a matrix, and print the
//     matrix, its trace, and the dominant eigenpair.
//   - derive — print the canonical Stern–Brocot word of a rational p/q.
//
// Flags may be pre-seeded from a YAML run-configuration file via
// --config; explicitly set flags win over file values. Diagnostics go
// to stderr through log/slog; results go to stdout only.
package cli
