// Package memory is an in-memory blob store used in tests and local runs
// where no object storage is available.
package memory

import (
	"context"
	"errors"
	"sync"
)

var ErrUploadsDisabled = errors.New("memory: uploads disabled")

type Store struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailUploads makes every Upload return ErrUploadsDisabled; tests use it
	// to exercise the upstream-failure path.
	FailUploads bool
}

func NewStore() *Store {
	return &Store{objects: make(map[string][]byte)}
}

func (s *Store) Upload(ctx context.Context, key string, data []byte) (string, error) {
	if s.FailUploads {
		return "", ErrUploadsDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf

	return "memory://" + key, nil
}

// Get returns a stored object for assertions in tests.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	return data, ok
}

// Keys returns every stored key.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}
