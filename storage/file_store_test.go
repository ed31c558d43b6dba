package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicObjectURL(t *testing.T) {
	base := "https://cdn.example.com/avatars/"

	require.Equal(t, "https://cdn.example.com/avatars/u1/pic.png", PublicObjectURL(base, "u1/pic.png"))
	require.Equal(t, "https://cdn.example.com/avatars/u1/pic.png", PublicObjectURL("https://cdn.example.com/avatars", "/u1/pic.png"))
	// no stored path means no image
	require.Equal(t, "", PublicObjectURL(base, ""))
}

func TestMediaKeyIsNamespacedByOwner(t *testing.T) {
	key := MediaKey("user42", "holiday.jpg")
	require.True(t, strings.HasPrefix(key, "user42/"))
	require.True(t, strings.HasSuffix(key, ".jpg"))

	// extension-less uploads still get a valid key
	bare := MediaKey("user42", "blob")
	require.True(t, strings.HasPrefix(bare, "user42/"))
	require.False(t, strings.Contains(strings.TrimPrefix(bare, "user42/"), "."))

	require.NotEqual(t, key, MediaKey("user42", "holiday.jpg"))
}

func TestFakeFileStoreRoundTrip(t *testing.T) {
	store := NewFakeFileStore()

	url, err := store.Upload("u1/a.png", strings.NewReader("payload"), "image/png")
	require.NoError(t, err)
	require.Equal(t, store.PublicURL("u1/a.png"), url)

	data, ok := store.Get("u1/a.png")
	require.True(t, ok)
	require.Equal(t, "payload", string(data))

	_, ok = store.Get("missing")
	require.False(t, ok)
}
