package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodFlags(t *testing.T) {
	now := time.Now()

	t.Run("defaults to current month", func(t *testing.T) {
		m, y, err := periodFlags(0, 0)
		require.NoError(t, err)
		assert.Equal(t, now.Month(), m)
		assert.Equal(t, now.Year(), y)
	})

	t.Run("explicit month and year", func(t *testing.T) {
		m, y, err := periodFlags(7, 2024)
		require.NoError(t, err)
		assert.Equal(t, time.July, m)
		assert.Equal(t, 2024, y)
	})

	t.Run("rejects out-of-range month", func(t *testing.T) {
		_, _, err := periodFlags(13, 2024)
		require.Error(t, err)
	})
}
