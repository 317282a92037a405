package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapBoundary(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Go(1))

	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Prev())
	assert.True(t, c.HasNext())
	assert.True(t, c.HasPrev())
}

func TestClampBoundary(t *testing.T) {
	c := New(2, WithBoundary(Clamp))

	assert.Equal(t, 0, c.Prev())
	assert.False(t, c.HasPrev())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.False(t, c.HasNext())
}

func TestGoOutOfRange(t *testing.T) {
	c := New(3)
	assert.ErrorIs(t, c.Go(3), ErrOutOfRange)
	assert.ErrorIs(t, c.Go(-1), ErrOutOfRange)
	assert.Equal(t, 0, c.Index())

	require.NoError(t, c.Go(2))
	assert.Equal(t, 2, c.Index())
}

func TestEmptyAndSingle(t *testing.T) {
	empty := New(0)
	assert.Equal(t, 0, empty.Next())
	assert.Equal(t, 0, empty.Prev())
	assert.ErrorIs(t, empty.Go(0), ErrOutOfRange)

	one := New(1)
	assert.Equal(t, 0, one.Next())
	assert.False(t, one.HasNext())
	assert.False(t, one.HasPrev())
}

func TestPeekDoesNotMove(t *testing.T) {
	c := New(3)
	assert.Equal(t, 1, c.Peek(true))
	assert.Equal(t, 2, c.Peek(false))
	assert.Equal(t, 0, c.Index())
}

func TestAutoplay(t *testing.T) {
	assert.Zero(t, New(2, WithAutoplay(-time.Second)).Autoplay())
	assert.Equal(t, 5*time.Second, New(2, WithAutoplay(5*time.Second)).Autoplay())
}

func TestIndependentCursors(t *testing.T) {
	a, b := New(3), New(3)
	a.Next()
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, 0, b.Index())
}
