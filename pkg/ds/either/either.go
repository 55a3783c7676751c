package either

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		left:    v,
		isRight: false,
	}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		right:   v,
		isRight: true,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the Left payload, or an error wrapping ds.ErrInvalidState
// when e is a Right.
func (e Either[L, R]) LeftValue() (L, error) {
	if e.isRight {
		var zero L
		return zero, fmt.Errorf("right has no left value: %w", ds.ErrInvalidState)
	}
	return e.left, nil
}

// RightValue returns the Right payload, or an error wrapping ds.ErrInvalidState
// when e is a Left.
func (e Either[L, R]) RightValue() (R, error) {
	if !e.isRight {
		var zero R
		return zero, fmt.Errorf("left has no right value: %w", ds.ErrInvalidState)
	}
	return e.right, nil
}

func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return ds.Equal(e.right, other.right)
	}
	return ds.Equal(e.left, other.left)
}

func (e Either[L, R]) Hash() uint64 {
	if e.isRight {
		return ds.Hash(true, e.right)
	}
	return ds.Hash(false, e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right[%v]", e.right)
	}
	return fmt.Sprintf("Left[%v]", e.left)
}
