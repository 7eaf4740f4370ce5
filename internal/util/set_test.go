package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Run("add reports new members", func(t *testing.T) {
		s := NewSet[string]()
		require.True(t, s.Add("a"))
		require.False(t, s.Add("a"))
		require.True(t, s.Add("b"))
	})
	t.Run("initial items are members", func(t *testing.T) {
		s := NewSet[int32](3, 1, 3)
		require.False(t, s.Add(1))
		require.False(t, s.Add(3))
		require.True(t, s.Add(2))
	})
}
