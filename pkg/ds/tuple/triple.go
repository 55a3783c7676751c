package tuple

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

type Triple[A, B, C any] struct {
	first  A
	second B
	third  C
}

func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{first: first, second: second, third: third}
}

func (t Triple[A, B, C]) First() A {
	return t.first
}

func (t Triple[A, B, C]) WithFirst(first A) Triple[A, B, C] {
	return NewTriple(first, t.second, t.third)
}

func (t Triple[A, B, C]) Second() B {
	return t.second
}

func (t Triple[A, B, C]) WithSecond(second B) Triple[A, B, C] {
	return NewTriple(t.first, second, t.third)
}

func (t Triple[A, B, C]) Third() C {
	return t.third
}

func (t Triple[A, B, C]) WithThird(third C) Triple[A, B, C] {
	return NewTriple(t.first, t.second, third)
}

func (t Triple[A, B, C]) Values() (A, B, C) {
	return t.first, t.second, t.third
}

func (t Triple[A, B, C]) Equal(other Triple[A, B, C]) bool {
	return ds.Equal(t.first, other.first) &&
		ds.Equal(t.second, other.second) &&
		ds.Equal(t.third, other.third)
}

func (t Triple[A, B, C]) Hash() uint64 {
	return ds.Hash(t.first, t.second, t.third)
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("Triple[%v, %v, %v]", t.first, t.second, t.third)
}
