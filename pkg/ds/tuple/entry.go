package tuple

import (
	"fmt"

	"github.com/ib-77/holders/pkg/ds"
)

// Entry is a key/value record, e.g. one element of a map snapshot.
type Entry[K, V any] struct {
	key   K
	value V
}

func NewEntry[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Entries snapshots m into a slice of entries in unspecified order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, NewEntry(k, v))
	}
	return out
}

func (e Entry[K, V]) Key() K {
	return e.key
}

func (e Entry[K, V]) WithKey(key K) Entry[K, V] {
	return NewEntry(key, e.value)
}

func (e Entry[K, V]) Value() V {
	return e.value
}

func (e Entry[K, V]) WithValue(value V) Entry[K, V] {
	return NewEntry(e.key, value)
}

func (e Entry[K, V]) Values() (K, V) {
	return e.key, e.value
}

func (e Entry[K, V]) Equal(other Entry[K, V]) bool {
	return ds.Equal(e.key, other.key) && ds.Equal(e.value, other.value)
}

func (e Entry[K, V]) Hash() uint64 {
	return ds.Hash(e.key, e.value)
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("Entry[%v: %v]", e.key, e.value)
}
