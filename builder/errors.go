// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors attach context using `%w` wrapping.
//   • Constructors MUST NOT panic on caller input; every invalid parameter
//     surfaces as a sentinel before the first push. Panics are confined to
//     internal push sequencing bugs (see helpers.go must).

package builder

import "errors"

// ErrFewSides indicates that Polygon was asked for fewer than two sides.
// The digon (n = 2) is the smallest valid abstract polygon; below it the
// diamond property cannot hold.
// Usage: if errors.Is(err, ErrFewSides) { /* reject n */ }.
var ErrFewSides = errors.New("builder: polygon needs at least 2 sides")

// ErrBadRank indicates a rank below -1 was passed to one of the infinite
// families. Rank -1 is the nullitope; no structure exists below it.
// Usage: if errors.Is(err, ErrBadRank) { /* reject rank */ }.
var ErrBadRank = errors.New("builder: rank below -1")
