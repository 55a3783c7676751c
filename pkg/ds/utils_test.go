package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var f func()
	var m map[string]int
	var s []int
	var h Hasher
	n := 1

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(h))

	assert.False(t, IsNil(&n))
	assert.False(t, IsNil(func() {}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
