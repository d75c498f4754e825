// Package builder provides canonical incidence structures: deterministic,
// pre-sorted fixtures for every rank, from the nullitope up through the
// classical infinite families. It lives alongside core and flags to keep
// construction logic in one place, so tests and callers never hand-assemble
// incidence lists.
//
// The package offers the following constructors:
//
//   - Degenerate ranks:
//     – Nullitope:  rank -1, the single minimal element, no flags.
//     – Point:      rank 0, one vertex, one (empty) flag.
//     – Dyad:       rank 1, two vertices joined by one edge, two flags.
//   - Polygons:
//     – Polygon(n): rank 2, the abstract n-gon for n ≥ 2 (the digon is
//     valid abstractly even though it cannot be drawn flat), 2n flags.
//   - Infinite families, by rank:
//     – Simplex(r):   elements are vertex subsets, (r+1)! flags.
//     – Hypercube(r): elements are fixed/free axis vectors, 2^r·r! flags.
//     – Orthoplex(r): elements are signed axis subsets, 2^r·r! flags.
//   - Non-orientable fixture:
//     – Hemicube(): rank 3, the cube with antipodal points identified,
//     24 flags, the smallest classical structure whose flag graph admits
//     no consistent parity.
//
// Guarantees:
//
//   - Every constructor returns a structure that passes core.Validate.
//   - Every constructor returns a sorted structure, ready for flag
//     traversal with no further preparation.
//   - Element numbering is documented per shape and identical across runs,
//     so flags and orbits are reproducible byte for byte.
//   - Structured runtime errors (fmt.Errorf with %w) wrapping the package
//     sentinels ErrFewSides and ErrBadRank; no panics.
//
// See individual constructor documentation for the exact element numbering
// and the incidence layout of each family.
package builder
