// Package store persists the two pieces of durable state: the single
// in-progress draft and the submitted order log. Both live in named
// slots of a BackingStore; the slot payloads are JSON, matching the
// layout the system has always used.
package store

// BackingStore persists named slots of opaque bytes. Reading a slot that
// was never written returns (nil, nil).
type BackingStore interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
	Delete(slot string) error
}

// MemoryStore is a map-backed BackingStore for tests and ephemeral
// sessions (it is also the fallback when the real store cannot be
// opened: the form stays available, durability is lost).
type MemoryStore struct {
	slots map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Read(slot string) ([]byte, error) {
	data, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStore) Write(slot string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[slot] = stored
	return nil
}

func (m *MemoryStore) Delete(slot string) error {
	delete(m.slots, slot)
	return nil
}
