package actor

// Store is the key-value persistence contract actors save into and
// restore from. Reads take a default that is returned when the key is
// missing, so a fresh or partially written save degrades to defaults
// instead of failing.
type Store interface {
	// SetNumber writes a numeric value under key.
	SetNumber(key string, v float64) error
	// Number reads a numeric value, returning def when key is absent.
	Number(key string, def float64) float64
	// SetString writes a string value under key.
	SetString(key, v string) error
	// String reads a string value, returning def when key is absent.
	String(key, def string) string
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	numbers map[string]float64
	strings map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		numbers: make(map[string]float64),
		strings: make(map[string]string),
	}
}

// SetNumber writes a numeric value under key.
func (m *MemStore) SetNumber(key string, v float64) error {
	m.numbers[key] = v
	return nil
}

// Number reads a numeric value, returning def when key is absent.
func (m *MemStore) Number(key string, def float64) float64 {
	if v, ok := m.numbers[key]; ok {
		return v
	}
	return def
}

// SetString writes a string value under key.
func (m *MemStore) SetString(key, v string) error {
	m.strings[key] = v
	return nil
}

// String reads a string value, returning def when key is absent.
func (m *MemStore) String(key, def string) string {
	if v, ok := m.strings[key]; ok {
		return v
	}
	return def
}
