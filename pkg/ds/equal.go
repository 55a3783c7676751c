package ds

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are structurally equal. Nil values are equal
// only to nil values of the same type. Pointers are followed, and types that
// declare an Equal method are compared through it.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, allowUnexported)
}
