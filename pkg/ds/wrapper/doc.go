// Package wrapper provides Wrapper[T], an immutable holder of a single value
// that compares and hashes by that value.
package wrapper
