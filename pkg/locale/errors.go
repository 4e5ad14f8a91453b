package locale

import "errors"

var (
	ErrEmptyLocale = errors.New("locale: locale cannot be empty")
	ErrInvalidTag  = errors.New("locale: identifier is not a valid BCP 47 tag")
)
