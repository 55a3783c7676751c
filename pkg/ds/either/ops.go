package either

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

// Fold calls onLeft or onRight with the payload of the matching variant.
func Fold[L, R, Out any](e Either[L, R],
	onLeft func(l L) Out,
	onRight func(r R) Out) (Out, error) {

	if onLeft == nil || onRight == nil {
		var zero Out
		return zero, fmt.Errorf("fold callback is nil: %w", ds.ErrInvalidArgument)
	}

	if e.isRight {
		return onRight(e.right), nil
	}
	return onLeft(e.left), nil
}

// Map transforms a Right payload. A Left is carried over unchanged.
func Map[L, R, Out any](e Either[L, R], onRight func(r R) Out) (Either[L, Out], error) {
	if onRight == nil {
		return Either[L, Out]{}, fmt.Errorf("mapper is nil: %w", ds.ErrInvalidArgument)
	}

	if e.isRight {
		return Right[L](onRight(e.right)), nil
	}
	return Left[L, Out](e.left), nil
}

// MapLeft transforms a Left payload. A Right is carried over unchanged.
func MapLeft[L, R, Out any](e Either[L, R], onLeft func(l L) Out) (Either[Out, R], error) {
	if onLeft == nil {
		return Either[Out, R]{}, fmt.Errorf("mapper is nil: %w", ds.ErrInvalidArgument)
	}

	if e.isRight {
		return Right[Out](e.right), nil
	}
	return Left[Out, R](onLeft(e.left)), nil
}

func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}
