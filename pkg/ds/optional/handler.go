package optional

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

// Handler receives exactly one callback per Handle call, depending on
// whether the Optional holds a value.
type Handler[T, R any] interface {
	// OnValue is called with the held value
	OnValue(v T) R
	// OnNoValue is called when the Optional is empty
	OnNoValue() R
}

// HandlerFuncs adapts a pair of functions to Handler.
type HandlerFuncs[T, R any] struct {
	OnValueFunc   func(v T) R
	OnNoValueFunc func() R
}

func (h HandlerFuncs[T, R]) OnValue(v T) R {
	return h.OnValueFunc(v)
}

func (h HandlerFuncs[T, R]) OnNoValue() R {
	return h.OnNoValueFunc()
}

// ConvertingHandler turns a present value into an Optional of the mapped
// value and an absent one into an empty Optional.
type ConvertingHandler[T, R any] struct {
	mapper func(T) R
}

func NewConvertingHandler[T, R any](mapper func(T) R) (ConvertingHandler[T, R], error) {
	if mapper == nil {
		return ConvertingHandler[T, R]{}, fmt.Errorf("mapper is nil: %w", ds.ErrInvalidArgument)
	}
	return ConvertingHandler[T, R]{mapper: mapper}, nil
}

func (c ConvertingHandler[T, R]) OnValue(v T) Optional[R] {
	return Of(c.mapper(v))
}

func (c ConvertingHandler[T, R]) OnNoValue() Optional[R] {
	return Empty[R]()
}

// Handle calls handler.OnValue or handler.OnNoValue and returns its result.
func Handle[T, R any](o Optional[T], handler Handler[T, R]) (R, error) {
	var zero R
	if ds.IsNil(handler) {
		return zero, fmt.Errorf("handler is nil: %w", ds.ErrInvalidArgument)
	}
	switch funcs := handler.(type) {
	case HandlerFuncs[T, R]:
		if funcs.OnValueFunc == nil || funcs.OnNoValueFunc == nil {
			return zero, fmt.Errorf("handler callback is nil: %w", ds.ErrInvalidArgument)
		}
	case *HandlerFuncs[T, R]:
		if funcs == nil || funcs.OnValueFunc == nil || funcs.OnNoValueFunc == nil {
			return zero, fmt.Errorf("handler callback is nil: %w", ds.ErrInvalidArgument)
		}
	}

	if o.hasValue {
		return handler.OnValue(o.value), nil
	}
	return handler.OnNoValue(), nil
}

// Convert maps a present value with mapper. An empty Optional stays empty
// and mapper is not called.
func Convert[T, R any](o Optional[T], mapper func(T) R) (Optional[R], error) {
	converter, err := NewConvertingHandler(mapper)
	if err != nil {
		return Empty[R](), err
	}
	return Handle[T, Optional[R]](o, converter)
}
