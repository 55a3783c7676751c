package optional

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

type Optional[T any] struct {
	value    T
	hasValue bool
}

func Of[T any](v T) Optional[T] {
	return Optional[T]{
		value:    v,
		hasValue: true,
	}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional holding *p, or an empty one when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

// Value returns the held value, or an error wrapping ds.ErrNotFound.
func (o Optional[T]) Value() (T, error) {
	if !o.hasValue {
		var zero T
		return zero, fmt.Errorf("optional has no value: %w", ds.ErrNotFound)
	}
	return o.value, nil
}

func (o Optional[T]) ValueOr(fallback T) T {
	if o.hasValue {
		return o.value
	}
	return fallback
}

// ValueOrElse returns the held value, or calls provider when there is none.
// Errors from provider are returned as is.
func (o Optional[T]) ValueOrElse(provider func() (T, error)) (T, error) {
	if provider == nil {
		var zero T
		return zero, fmt.Errorf("provider is nil: %w", ds.ErrInvalidArgument)
	}
	if o.hasValue {
		return o.value, nil
	}
	return provider()
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.hasValue {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) Filter(keep func(T) bool) (Optional[T], error) {
	if keep == nil {
		return Empty[T](), fmt.Errorf("predicate is nil: %w", ds.ErrInvalidArgument)
	}
	if o.hasValue && keep(o.value) {
		return o, nil
	}
	return Empty[T](), nil
}

func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	return !o.hasValue || ds.Equal(o.value, other.value)
}

func (o Optional[T]) Hash() uint64 {
	if !o.hasValue {
		return ds.Hash(false)
	}
	return ds.Hash(true, o.value)
}

// IsZero reports whether o is absent.
func (o Optional[T]) IsZero() bool {
	return !o.hasValue
}

func (o Optional[T]) String() string {
	if !o.hasValue {
		return "Optional[]"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
