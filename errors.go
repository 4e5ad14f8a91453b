package localefixture

import "errors"

var (
	ErrInvalidSnapshot   = errors.New("localefixture: invalid snapshot")
	ErrEmptyLocale       = errors.New("localefixture: locale identifier cannot be empty")
	ErrDuplicateLocale   = errors.New("localefixture: duplicate locale")
	ErrDuplicateAlias    = errors.New("localefixture: duplicate alias")
	ErrSelfAlias         = errors.New("localefixture: alias maps to itself")
	ErrUnsupportedFormat = errors.New("localefixture: unsupported snapshot format")
)
