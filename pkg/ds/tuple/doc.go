// Package tuple provides immutable fixed-arity records:
// - Pair[T]: two values of the same type
// - Tuple[A, B]: two values of independent types
// - Triple[A, B, C]: three values of independent types
// - Entry[K, V]: a key and a value
//
// Every field has a getter and a With method that returns a copy with that
// one field replaced; the receiver is never modified. Equality and hashing
// are structural over all fields.
package tuple
