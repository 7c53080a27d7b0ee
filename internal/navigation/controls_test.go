package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControls(t *testing.T) {
	s, err := NewService(3)
	require.NoError(t, err)

	c := s.Controls()
	assert.True(t, c.RetreatDisabled)
	assert.Equal(t, NextLabel, c.AdvanceLabel)
	assert.Equal(t, KindNext, c.AdvanceCommand)
	assert.Equal(t, "1 / 3", c.Progress())

	s.Next()
	c = s.Controls()
	assert.False(t, c.RetreatDisabled)
	assert.False(t, c.OnLastSlide())
	assert.Equal(t, "2 / 3", c.Progress())

	s.Next()
	c = s.Controls()
	assert.True(t, c.OnLastSlide())
	assert.Equal(t, RestartLabel, c.AdvanceLabel)
	assert.Equal(t, KindRestart, c.AdvanceCommand)
	assert.Equal(t, "3 / 3", c.Progress())
}

func TestControlsSingleSlide(t *testing.T) {
	s, err := NewService(1)
	require.NoError(t, err)

	c := s.Controls()
	assert.True(t, c.RetreatDisabled)
	assert.True(t, c.OnLastSlide())
	assert.Equal(t, "1 / 1", c.Progress())
}
