package objmap

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/valuekit/pkg/logger"
)

// EncodeFunc serialises a value to JSON.
type EncodeFunc func(v any) ([]byte, error)

// Mapper converts values into generic maps.
type Mapper struct {
	encode EncodeFunc
	log    *slog.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithEncoder replaces the default encoding/json encoder.
func WithEncoder(fn EncodeFunc) Option {
	return func(m *Mapper) {
		if fn != nil {
			m.encode = fn
		}
	}
}

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mapper) {
		m.log = logger.OrNop(log)
	}
}

// NewMapper builds a Mapper. Without options it encodes with encoding/json
// and logs nothing.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		encode: json.Marshal,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("objmap"))
	return m
}

// Map encodes value and parses the result into a Map. Any failure yields
// an empty Map; the cause is logged at debug level.
func (m *Mapper) Map(value any) Map {
	out, err := m.TryMap(value)
	if err != nil {
		m.log.Debug("generic map conversion failed", logger.Error(err))
		return NewMap()
	}
	return out
}

// TryMap is Map with the failure reported.
func (m *Mapper) TryMap(value any) (Map, error) {
	data, err := m.encode(value)
	if err != nil {
		return Map{}, errors.Join(ErrEncode, err)
	}
	return Parse(data)
}

var defaultMapper = NewMapper()

// ToGenericMap converts any encodable value into a Map. Values that fail to
// encode, or that do not encode to a JSON object, yield an empty Map.
func ToGenericMap(value any) Map {
	return defaultMapper.Map(value)
}

// Encode serialises value with encoding/json.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

// Parse decodes a JSON object into a Map preserving key order. Duplicate
// keys keep the last value.
func Parse(data []byte) (Map, error) {
	if !gjson.ValidBytes(data) {
		return Map{}, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Map{}, ErrNotObject
	}
	return mapFromResult(res), nil
}

func mapFromResult(res gjson.Result) Map {
	out := NewMap()
	res.ForEach(func(key, val gjson.Result) bool {
		out.Set(key.String(), valueFromResult(val))
		return true
	})
	return out
}

func valueFromResult(res gjson.Result) Value {
	switch res.Type {
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return numberLiteral(res.Raw)
	case gjson.String:
		return String(res.Str)
	case gjson.JSON:
		if res.IsArray() {
			items := make([]Value, 0)
			res.ForEach(func(_, item gjson.Result) bool {
				items = append(items, valueFromResult(item))
				return true
			})
			return List(items...)
		}
		return Object(mapFromResult(res))
	default:
		return Null()
	}
}
