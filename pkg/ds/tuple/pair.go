package tuple

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

// Pair groups two values of the same type.
type Pair[T any] struct {
	first  T
	second T
}

func NewPair[T any](first, second T) Pair[T] {
	return Pair[T]{first: first, second: second}
}

func (p Pair[T]) First() T {
	return p.first
}

func (p Pair[T]) WithFirst(first T) Pair[T] {
	return NewPair(first, p.second)
}

func (p Pair[T]) Second() T {
	return p.second
}

func (p Pair[T]) WithSecond(second T) Pair[T] {
	return NewPair(p.first, second)
}

func (p Pair[T]) Values() (T, T) {
	return p.first, p.second
}

func (p Pair[T]) Equal(other Pair[T]) bool {
	return ds.Equal(p.first, other.first) && ds.Equal(p.second, other.second)
}

func (p Pair[T]) Hash() uint64 {
	return ds.Hash(p.first, p.second)
}

func (p Pair[T]) String() string {
	return fmt.Sprintf("Pair[%v, %v]", p.first, p.second)
}
