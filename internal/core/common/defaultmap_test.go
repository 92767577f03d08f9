package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap_MissReturnsDefault(t *testing.T) {
	m := NewDefaultMap[string]("fallback")

	assert.Equal(t, "fallback", m.Get("absent"))

	// A miss must not insert the default.
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("absent"))
}

func TestDefaultMap_SetAndGet(t *testing.T) {
	m := NewDefaultMap[string](0)

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3) // overwrite

	assert.Equal(t, 3, m.Get("a"))
	assert.Equal(t, 2, m.Get("b"))
	assert.Equal(t, 0, m.Get("c"))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))
}

func TestDefaultMap_Keys(t *testing.T) {
	m := NewDefaultMap[string](0)
	m.Set("x", 1)
	m.Set("y", 2)

	keys := m.Keys()
	assert.Len(t, keys, 2)
	assert.ElementsMatch(t, []string{"x", "y"}, keys)
}

func TestDefaultMap_NilSetDefault(t *testing.T) {
	// Set-valued maps use a nil set default: it reads as empty and a miss
	// can never leak a shared mutable set.
	m := NewDefaultMap[string](map[string]struct{}(nil))

	got := m.Get("absent")
	assert.Nil(t, got)
	assert.Equal(t, 0, len(got))
}
