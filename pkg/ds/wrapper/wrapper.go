package wrapper

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

type Wrapper[T any] struct {
	value T
}

func New[T any](v T) Wrapper[T] {
	return Wrapper[T]{value: v}
}

func (w Wrapper[T]) Value() T {
	return w.value
}

func (w Wrapper[T]) Equal(other Wrapper[T]) bool {
	return ds.Equal(w.value, other.value)
}

func (w Wrapper[T]) Hash() uint64 {
	return ds.Hash(w.value)
}

func (w Wrapper[T]) String() string {
	return fmt.Sprintf("Wrapper[%v]", w.value)
}
