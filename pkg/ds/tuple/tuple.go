package tuple

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

// Tuple groups two values of independent types.
type Tuple[A, B any] struct {
	first  A
	second B
}

func NewTuple[A, B any](first A, second B) Tuple[A, B] {
	return Tuple[A, B]{first: first, second: second}
}

func (t Tuple[A, B]) First() A {
	return t.first
}

func (t Tuple[A, B]) WithFirst(first A) Tuple[A, B] {
	return NewTuple(first, t.second)
}

func (t Tuple[A, B]) Second() B {
	return t.second
}

func (t Tuple[A, B]) WithSecond(second B) Tuple[A, B] {
	return NewTuple(t.first, second)
}

func (t Tuple[A, B]) Values() (A, B) {
	return t.first, t.second
}

func (t Tuple[A, B]) Equal(other Tuple[A, B]) bool {
	return ds.Equal(t.first, other.first) && ds.Equal(t.second, other.second)
}

func (t Tuple[A, B]) Hash() uint64 {
	return ds.Hash(t.first, t.second)
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("Tuple[%v, %v]", t.first, t.second)
}
