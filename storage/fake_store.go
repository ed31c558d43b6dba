package storage

import (
	"io"
	"io/ioutil"
	"sync"
)

// FakeFileStore keeps uploads in memory. Used in tests and when no media
// bucket is configured in development.
type FakeFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewFakeFileStore() *FakeFileStore {
	return &FakeFileStore{files: map[string][]byte{}}
}

func (s *FakeFileStore) Upload(key string, body io.Reader, contentType string) (string, error) {
	data, err := ioutil.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return s.PublicURL(key), nil
}

func (s *FakeFileStore) PublicURL(key string) string {
	return PublicObjectURL("fake://media", key)
}

// Get returns a stored object for test assertions.
func (s *FakeFileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	return data, ok
}
