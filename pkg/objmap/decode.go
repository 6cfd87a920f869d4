package objmap

import (
	"errors"

	"github.com/go-viper/mapstructure/v2"
)

// Decode fills out, a pointer to a struct or map, from m. Struct fields are
// matched by their `json` tag so a value survives ToGenericMap and Decode.
func Decode(m Map, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(m.Interface()); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
