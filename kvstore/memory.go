package kvstore

var _ Store = (*MemStore)(nil)

// MemStore is a non-durable Store kept entirely in memory. It is meant
// for tests.
type MemStore struct {
	m map[string]string
}

// NewMem returns an empty in-memory store.
func NewMem() *MemStore { return &MemStore{m: make(map[string]string)} }

func (s *MemStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	delete(s.m, key)
	return nil
}

func (s *MemStore) Close() error { return nil }
