package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterFiresAndWraps(t *testing.T) {
	c, err := NewCounter(0.5, 3)
	require.NoError(t, err)

	c.Update(0.3)
	assert.False(t, c.IsActive())
	c.Update(0.3)
	assert.True(t, c.IsActive())
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 0.0, c.Elapsed)

	c.Update(0.1)
	assert.False(t, c.IsActive(), "predicate holds only for the firing update")

	c.Update(0.5)
	c.Update(0.5)
	assert.Equal(t, 0, c.Index, "index wraps at Max")
}

func TestCounterLargeDtFiresOnce(t *testing.T) {
	c, err := NewCounter(0.1, 10)
	require.NoError(t, err)
	c.Update(1.0)
	assert.True(t, c.IsActive())
	assert.Equal(t, 1, c.Index)
}

func TestCounterRejectsBadThreshold(t *testing.T) {
	_, err := NewCounter(0, 1)
	assert.True(t, errors.Is(err, ErrThreshold))
	_, err = NewAnimationCounter(-1, 4)
	assert.ErrorIs(t, err, ErrThreshold)
}

func TestAnimationCounter(t *testing.T) {
	a, err := NewAnimationCounter(0.4, 12)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		a.Update(0.4)
		assert.True(t, a.IsChange())
	}
	assert.Equal(t, 0, a.Frame())

	a.Update(0.4)
	assert.Equal(t, 1, a.Frame())
	a.Reset()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.IsChange())
}
