// Package ds holds what the value-holder packages share: the error kinds
// returned on contract violations, a few small interfaces, and structural
// equality and hashing for arbitrary payloads.
//
// The holders themselves live in subpackages:
// - box: a mutable single-value cell
// - optional: presence-or-absence with fallbacks and handler dispatch
// - either: a Left/Right tagged union
// - tuple: Pair, Tuple, Triple and Entry records with copy-on-write "with" methods
// - wrapper: an immutable single-value holder
package ds
