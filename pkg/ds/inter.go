package ds

// Equaler is implemented by holders that compare structurally.
type Equaler[T any] interface {
	// Equal reports whether both values hold equal payloads
	Equal(other T) bool
}

// Hasher is implemented by holders whose hash is derived from their payloads.
// Values that are Equal must return the same Hash.
type Hasher interface {
	// Hash returns a deterministic 64-bit hash of the payloads
	Hash() uint64
}

// ValueProvider exposes a single payload.
type ValueProvider[T any] interface {
	// Value returns the held payload
	Value() T
}
