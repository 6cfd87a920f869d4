package objmap

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a generic JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	// num keeps the number literal as written so large integers stay exact.
	num  string
	str  string
	list []Value
	m    Map
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func List(items ...Value) Value { return Value{kind: KindList, list: items} }

func Object(m Map) Value { return Value{kind: KindMap, m: m} }

// Float builds a number from a float64.
func Float(f float64) Value {
	return Value{kind: KindNumber, num: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Int builds a number from an int64.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: strconv.FormatInt(n, 10)}
}

func numberLiteral(raw string) Value {
	return Value{kind: KindNumber, num: raw}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() optional.Option[bool] {
	return optional.Of(v.b, v.kind == KindBool)
}

func (v Value) AsString() optional.Option[string] {
	return optional.Of(v.str, v.kind == KindString)
}

// AsFloat returns any number as float64.
func (v Value) AsFloat() optional.Option[float64] {
	if v.kind != KindNumber {
		return optional.None[float64]()
	}
	f, err := strconv.ParseFloat(v.num, 64)
	return optional.Of(f, err == nil)
}

// AsInt returns the number when it is an integer literal that fits in int64.
func (v Value) AsInt() optional.Option[int64] {
	if v.kind != KindNumber {
		return optional.None[int64]()
	}
	n, err := strconv.ParseInt(v.num, 10, 64)
	return optional.Of(n, err == nil)
}

// AsUint returns the number when it is a non-negative integer literal that
// fits in uint64.
func (v Value) AsUint() optional.Option[uint64] {
	if v.kind != KindNumber {
		return optional.None[uint64]()
	}
	n, err := strconv.ParseUint(v.num, 10, 64)
	return optional.Of(n, err == nil)
}

// isIntegerLiteral reports whether the number was written without a
// fraction or exponent, whatever its magnitude.
func (v Value) isIntegerLiteral() bool {
	return v.kind == KindNumber && !strings.ContainsAny(v.num, ".eE")
}

func (v Value) AsList() optional.Option[[]Value] {
	return optional.Of(v.list, v.kind == KindList)
}

func (v Value) AsMap() optional.Option[Map] {
	return optional.Of(v.m, v.kind == KindMap)
}

// Interface converts v to plain Go values: nil, bool, int64, uint64 or
// float64, string, []any and map[string]any. Integers above math.MaxInt64
// become uint64; only numbers that fit neither become float64.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if n, ok := v.AsInt().Get(); ok {
			return n
		}
		if n, ok := v.AsUint().Get(); ok {
			return n
		}
		return v.AsFloat().OrZero()
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		return v.m.Interface()
	default:
		return nil
	}
}
