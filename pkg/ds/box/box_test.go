package box

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	assert.Equal(t, id, New(id).Value())
}

func TestZeroBox(t *testing.T) {
	t.Parallel()
	var b Box[*int]
	assert.Nil(t, b.Value())

	b2 := new(Box[string])
	assert.Equal(t, "", b2.Value())
}

func TestSetValue(t *testing.T) {
	t.Parallel()
	first, second := uuid.New(), uuid.New()

	b := New(first)
	b.SetValue(second)
	assert.Equal(t, second, b.Value())
}

func TestSetValue_Nil(t *testing.T) {
	t.Parallel()
	n := 1

	b := New(&n)
	b.SetValue(nil)
	assert.Nil(t, b.Value())

	var anyBox Box[any]
	anyBox.SetValue("x")
	anyBox.SetValue(nil)
	assert.Nil(t, anyBox.Value())
}

func TestSharedMutation(t *testing.T) {
	t.Parallel()
	b := New(1)
	alias := b
	alias.SetValue(2)
	assert.Equal(t, 2, b.Value())
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Box[3]", New(3).String())
}
