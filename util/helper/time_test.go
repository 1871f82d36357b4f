package helper_util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("ValidDate", func(t *testing.T) {
		got, err := ParseDate("2026-03-14")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("USFormatRejected", func(t *testing.T) {
		_, err := ParseDate("03/14/2026")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestParseNullableTime(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		got, err := ParseNullableTime(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("TimeValue", func(t *testing.T) {
		now := time.Now()
		got, err := ParseNullableTime(now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(now))
	})

	t.Run("RFC3339String", func(t *testing.T) {
		got, err := ParseNullableTime("2026-03-14T09:30:00Z")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		_, err := ParseNullableTime(42)
		assert.Error(t, err)
	})
}
