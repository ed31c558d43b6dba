package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{"a", "b"}, "a"))
	require.False(t, ContainsString([]string{"a", "b"}, "c"))
	require.False(t, ContainsString(nil, "a"))
}

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 1, Min(2, 1))
	require.Equal(t, -3, Min(-3, 0))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	require.Len(t, s, 8)
	for _, c := range s {
		require.True(t, c >= 'a' && c <= 'z')
	}
}

func TestTextToMd5Hash(t *testing.T) {
	hash, err := TextToMd5Hash("hello")
	require.NoError(t, err)
	require.Equal(t, "5d41402abc4b2a76b9719d911017c592", hash)
}
