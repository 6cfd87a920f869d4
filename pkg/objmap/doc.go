// Package objmap turns encodable Go values into a generic, dynamically
// shaped key/value tree.
//
// ToGenericMap serialises a value to JSON and parses the bytes back into a
// Map whose entries are Value, a tagged union of null, bool, number, string,
// list and map. Consumers switch on Value.Kind instead of type-asserting an
// interface{}:
//
//	m := objmap.ToGenericMap(user)
//	if v, ok := m.Get("email"); ok && v.Kind() == objmap.KindString {
//	    email := v.AsString().OrZero()
//	    ...
//	}
//
// Maps keep the key order of the encoded document. Order is informational
// only: two maps with the same entries in a different order hold the same
// data.
//
// # Strict variants
//
// ToGenericMap never fails; any problem yields an empty Map. Encode, Parse and
// Decode report failures with ErrEncode, ErrInvalidJSON, ErrNotObject and
// ErrDecode for callers that need to know why.
//
// Map.YAML renders a map as YAML and Decode fills a struct from a Map using
// the same `json` tags the value was encoded with.
package objmap
