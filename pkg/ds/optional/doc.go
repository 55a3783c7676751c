// Package optional provides Optional[T], an immutable container that either
// holds a value or holds nothing.
//
// Common usage:
// - Of/Empty/FromPtr: construct an Optional
// - Value/ValueOr/ValueOrElse: read the value, with or without a fallback
// - Convert: map a present value to an Optional of another type
// - Handle: dispatch to a Handler's OnValue or OnNoValue callback
//
// A present Optional may hold the zero value of T; presence is tracked
// separately from the payload. Optionals encode to JSON and YAML as their
// payload, or as null when absent.
package optional
