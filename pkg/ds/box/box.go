package box

import "fmt"

// Box holds a single value that can be replaced in place. The zero Box holds
// the zero value of T.
type Box[T any] struct {
	value T
}

func New[T any](v T) *Box[T] {
	return &Box[T]{value: v}
}

func (b *Box[T]) Value() T {
	return b.value
}

func (b *Box[T]) SetValue(v T) {
	b.value = v
}

func (b *Box[T]) String() string {
	return fmt.Sprintf("Box[%v]", b.value)
}
