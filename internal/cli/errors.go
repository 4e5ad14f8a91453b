package cli

import "errors"

var (
	ErrUnknownOutput = errors.New("cli: unknown output format")
	ErrCheckFailed   = errors.New("cli: snapshot check failed")
)
