package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorWraps(t *testing.T) {
	c := NewCursor(3)

	c.Next()
	c.Next()
	c.Next()
	assert.Equal(t, 0, c.Index())

	c.Previous()
	assert.Equal(t, 2, c.Index())
}

func TestCursorEmptyIsNoop(t *testing.T) {
	c := NewCursor(0)

	c.Next()
	assert.Equal(t, 0, c.Index())
	c.Previous()
	assert.Equal(t, 0, c.Index())
}

func TestCursorSetTotal(t *testing.T) {
	c := NewCursor(5)
	c.Previous()
	assert.Equal(t, 4, c.Index())

	c.SetTotal(6)
	assert.Equal(t, 4, c.Index(), "growing keeps the index")

	c.SetTotal(3)
	assert.Equal(t, 0, c.Index(), "shrinking below the index resets it")
	assert.Equal(t, 3, c.Total())

	c.SetTotal(-1)
	assert.Equal(t, 0, c.Total())
}
