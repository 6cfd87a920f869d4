package objmap

import "iter"

// Map is an insertion-ordered string-keyed collection of Values. Build it
// with NewMap and Set; treat it as read-only once shared.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty Map ready for Set.
func NewMap() Map {
	return Map{values: make(map[string]Value)}
}

// Set stores v under key. Re-setting a key keeps its original position.
func (m *Map) Set(key string, v Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m Map) Len() int { return len(m.keys) }

func (m Map) IsEmpty() bool { return len(m.keys) == 0 }

// Keys returns a copy of the keys in insertion order.
func (m Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// All iterates entries in insertion order.
func (m Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Interface converts m to a map[string]any; see Value.Interface.
func (m Map) Interface() map[string]any {
	out := make(map[string]any, len(m.keys))
	for k, v := range m.All() {
		out[k] = v.Interface()
	}
	return out
}
