package common

// DefaultMap pairs a map with a fixed default returned for absent keys.
// Differs from an auto-vivifying map in that a miss never inserts the
// default: graphs are sparse relative to their key space, and the read-heavy
// query phase must not grow the map. Has reflects only explicit stores.
//
// The default is returned as-is on every miss. For set-valued maps use a nil
// set as the default; it reads as empty and cannot be populated by accident.
type DefaultMap[K comparable, V any] struct {
	items map[K]V
	def   V
}

func NewDefaultMap[K comparable, V any](def V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		items: make(map[K]V),
		def:   def,
	}
}

func (m *DefaultMap[K, V]) Get(key K) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	return m.def
}

func (m *DefaultMap[K, V]) Set(key K, value V) {
	m.items[key] = value
}

func (m *DefaultMap[K, V]) Has(key K) bool {
	_, ok := m.items[key]
	return ok
}

func (m *DefaultMap[K, V]) Len() int {
	return len(m.items)
}

func (m *DefaultMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}
