package tuple

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTuple_GettersAndWith(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	tp := NewTuple(id, "name")

	assert.Equal(t, id, tp.First())
	assert.Equal(t, "name", tp.Second())

	renamed := tp.WithSecond("other")
	assert.Equal(t, id, renamed.First())
	assert.Equal(t, "other", renamed.Second())
	assert.Equal(t, "name", tp.Second())

	other := uuid.New()
	moved := tp.WithFirst(other)
	assert.Equal(t, other, moved.First())
	assert.Equal(t, "name", moved.Second())
	assert.Equal(t, id, tp.First())
}

func TestTuple_Equal(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	base := NewTuple(id, 7)

	cases := []struct {
		name  string
		other Tuple[uuid.UUID, int]
		equal bool
	}{
		{"same fields", NewTuple(id, 7), true},
		{"first changed", base.WithFirst(uuid.New()), false},
		{"second changed", base.WithSecond(8), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.equal, base.Equal(tc.other))
			if tc.equal {
				assert.Equal(t, base.Hash(), tc.other.Hash())
			}
		})
	}
}

func TestTuple_Values(t *testing.T) {
	t.Parallel()
	a, b := NewTuple("k", 1.5).Values()
	assert.Equal(t, "k", a)
	assert.Equal(t, 1.5, b)
}

func TestTuple_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Tuple[a, 1]", NewTuple("a", 1).String())
}
