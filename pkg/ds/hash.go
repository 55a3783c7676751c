package ds

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

var (
	hasherType = reflect.TypeOf((*Hasher)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
)

const (
	tagNil byte = iota
	tagValue
	tagCycle
	tagOpaque
)

// Hash returns a hash over values that agrees with Equal: structurally equal
// inputs produce the same hash. Map entries are combined independently of
// iteration order.
func Hash(values ...any) uint64 {
	h := hashState{d: xxhash.New(), seen: map[visit]struct{}{}}
	for _, v := range values {
		h.value(reflect.ValueOf(v))
	}
	return h.d.Sum64()
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type hashState struct {
	d    *xxhash.Digest
	seen map[visit]struct{}
	buf  [8]byte
}

func (h *hashState) writeByte(b byte) {
	h.buf[0] = b
	_, _ = h.d.Write(h.buf[:1])
}

func (h *hashState) writeUint(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hashState) writeFloat(f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	h.writeUint(math.Float64bits(f))
}

func (h *hashState) value(v reflect.Value) {
	if !v.IsValid() {
		h.writeByte(tagNil)
		return
	}

	if v.CanInterface() && v.Type().Implements(hasherType) && !isNilRef(v) {
		h.writeByte(tagValue)
		h.writeUint(v.Interface().(Hasher).Hash())
		return
	}

	// Equal compares these through their Equal method, so only what that
	// method looks at may reach the digest.
	if v.Type() == timeType {
		if !v.CanInterface() {
			h.writeByte(tagOpaque)
			return
		}
		t := v.Interface().(time.Time)
		h.writeByte(tagValue)
		h.writeUint(uint64(t.Unix()))
		h.writeUint(uint64(t.Nanosecond()))
		return
	}
	if hasEqualMethod(v.Type()) {
		h.writeByte(tagOpaque)
		_, _ = h.d.WriteString(v.Type().String())
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			h.writeByte(1)
		} else {
			h.writeByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.writeUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.writeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.writeFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		h.writeFloat(real(c))
		h.writeFloat(imag(c))
	case reflect.String:
		s := v.String()
		h.writeUint(uint64(len(s)))
		_, _ = h.d.WriteString(s)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			h.value(v.Index(i))
		}
	case reflect.Slice:
		if v.IsNil() {
			h.writeByte(tagNil)
			return
		}
		h.writeByte(tagValue)
		h.writeUint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			h.value(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			h.writeByte(tagNil)
			return
		}
		h.writeByte(tagValue)
		h.writeUint(uint64(v.Len()))
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := hashState{d: xxhash.New(), seen: h.seen}
			entry.value(iter.Key())
			entry.value(iter.Value())
			sum += entry.d.Sum64()
		}
		h.writeUint(sum)
	case reflect.Ptr:
		if v.IsNil() {
			h.writeByte(tagNil)
			return
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if _, ok := h.seen[key]; ok {
			h.writeByte(tagCycle)
			return
		}
		h.seen[key] = struct{}{}
		h.writeByte(tagValue)
		h.value(v.Elem())
		delete(h.seen, key)
	case reflect.Interface:
		if v.IsNil() {
			h.writeByte(tagNil)
			return
		}
		h.writeByte(tagValue)
		h.value(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			h.value(v.Field(i))
		}
	case reflect.Func:
		// funcs are only equal when both are nil
		if v.IsNil() {
			h.writeByte(tagNil)
		} else {
			h.writeByte(tagValue)
		}
	case reflect.Chan, reflect.UnsafePointer:
		h.writeUint(uint64(v.Pointer()))
	}
}

func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// hasEqualMethod mirrors go-cmp: a method Equal(U) bool on t where t is
// assignable to U.
func hasEqualMethod(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	ft := m.Type
	return ft.NumIn() == 2 && ft.NumOut() == 1 &&
		ft.Out(0).Kind() == reflect.Bool &&
		ft.In(0).AssignableTo(ft.In(1))
}
