package objmap

import "errors"

var (
	// ErrEncode is returned when a value cannot be serialised.
	ErrEncode = errors.New("objmap: failed to encode value")

	// ErrInvalidJSON is returned when the encoded bytes are not valid JSON.
	ErrInvalidJSON = errors.New("objmap: invalid JSON document")

	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("objmap: top-level value is not an object")

	// ErrDecode is returned when a Map cannot be decoded into the target.
	ErrDecode = errors.New("objmap: failed to decode map")
)
