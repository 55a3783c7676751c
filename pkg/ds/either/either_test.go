package either

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/holders/pkg/ds"
)

func TestLeft(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	e := Left[uuid.UUID, string](id)

	assert.True(t, e.IsLeft())
	assert.False(t, e.IsRight())

	l, err := e.LeftValue()
	require.NoError(t, err)
	assert.Equal(t, id, l)

	_, err = e.RightValue()
	assert.ErrorIs(t, err, ds.ErrInvalidState)
}

func TestRight(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	e := Right[string](id)

	assert.True(t, e.IsRight())
	assert.False(t, e.IsLeft())

	r, err := e.RightValue()
	require.NoError(t, err)
	assert.Equal(t, id, r)

	_, err = e.LeftValue()
	assert.ErrorIs(t, err, ds.ErrInvalidState)
}

func TestNilPayload(t *testing.T) {
	t.Parallel()

	l, err := Left[*int, *int](nil).LeftValue()
	require.NoError(t, err)
	assert.Nil(t, l)

	r, err := Right[*int, *int](nil).RightValue()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestZeroValueIsLeft(t *testing.T) {
	t.Parallel()
	var e Either[int, string]
	assert.True(t, e.IsLeft())
}

func TestEqual(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	assert.True(t, Left[uuid.UUID, uuid.UUID](id).Equal(Left[uuid.UUID, uuid.UUID](id)))
	assert.True(t, Right[uuid.UUID](id).Equal(Right[uuid.UUID](id)))
	assert.False(t, Left[uuid.UUID, uuid.UUID](id).Equal(Right[uuid.UUID](id)), "variants must differ")
	assert.False(t, Left[uuid.UUID, uuid.UUID](id).Equal(Left[uuid.UUID, uuid.UUID](uuid.New())))
	assert.True(t, Left[*int, int](nil).Equal(Left[*int, int](nil)))
}

func TestHash(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	assert.Equal(t, Left[uuid.UUID, uuid.UUID](id).Hash(), Left[uuid.UUID, uuid.UUID](id).Hash())
	assert.Equal(t, Right[uuid.UUID](id).Hash(), Right[uuid.UUID](id).Hash())
	assert.NotEqual(t, Left[uuid.UUID, uuid.UUID](id).Hash(), Right[uuid.UUID](id).Hash())
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Left[1]", Left[int, string](1).String())
	assert.Equal(t, "Right[x]", Right[int]("x").String())
}
