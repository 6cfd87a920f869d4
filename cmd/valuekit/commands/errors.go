package commands

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConversion      = errors.New("conversion failed")
)
