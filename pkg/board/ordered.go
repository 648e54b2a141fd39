package board

// orderedMap maps string keys to values and remembers insertion order.
// Overwriting a key keeps its original position.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[string]V)}
}

// set stores v under key and reports whether key was already present.
func (m *orderedMap[V]) set(key string, v V) bool {
	_, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return exists
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

// keyList returns a copy of the keys in insertion order, never nil.
func (m *orderedMap[V]) keyList() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
