// Package box provides Box[T], a mutable cell holding one replaceable value.
// A Box has no locking; callers sharing one across goroutines synchronize
// access themselves.
package box
