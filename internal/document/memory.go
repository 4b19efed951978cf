package document

import "sync"

// Memory is an in-process DocumentStore. Nothing survives the process; it
// exists for tests and for ephemeral runs.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Get returns a copy of the document under key, so callers can never mutate
// the stored bytes.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, true, nil
}

// Set stores a copy of doc under key.
func (m *Memory) Set(key string, doc []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(doc))
	copy(cp, doc)
	m.docs[key] = cp
	return nil
}

// Remove deletes the document under key. Removing an absent key succeeds.
func (m *Memory) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, key)
	return nil
}
