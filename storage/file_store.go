package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists uploaded avatar and post media bytes and hands back the
// public URL clients should render.
type FileStore interface {
	// Upload stores body under key and returns the public URL for it.
	Upload(key string, body io.Reader, contentType string) (string, error)
	// PublicURL returns the URL a stored key is served from.
	PublicURL(key string) string
}

// MediaKey produces the object key for a fresh upload. Keys are namespaced
// by owner so per-user cleanup stays a prefix listing.
func MediaKey(userID string, fileName string) string {
	ext := ""
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		ext = fileName[idx:]
	}
	return fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)
}

// PublicObjectURL joins a public base URL with a stored relative path. An
// empty path yields an empty URL; the client shows its fallback icon then.
func PublicObjectURL(baseURL string, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
