// Package either provides Either[L, R], an immutable value that is exactly
// one of two variants: Left carrying an L, or Right carrying an R.
//
// The variant is fixed at construction. Reading the payload of the other
// variant returns ds.ErrInvalidState. Equality is variant sensitive: a Left
// and a Right are never equal, even with equal payloads.
//
// Highlights:
// - Left/Right: construct an Either
// - Fold: match both variants exhaustively
// - Map/MapLeft: transform one variant, pass the other through
// - Swap: exchange the variants
package either
