package locale

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when no default is configured.
const DefaultLocale = "en"

// Separator divides the parts of a locale identifier, e.g. "zh_Hans_CN".
const Separator = "_"

// Settings holds the default locale and the default fallback locale.
// It is safe for concurrent use.
type Settings struct {
	mu       sync.RWMutex
	def      string
	fallback string
}

// Option configures Settings during construction.
type Option func(*Settings) error

// NewSettings creates Settings with both locales set to DefaultLocale
// unless overridden by options.
func NewSettings(opts ...Option) (*Settings, error) {
	s := &Settings{
		def:      DefaultLocale,
		fallback: DefaultLocale,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithDefault sets the initial default locale.
func WithDefault(id string) Option {
	return func(s *Settings) error {
		if id == "" {
			return ErrEmptyLocale
		}
		s.def = id
		return nil
	}
}

// WithDefaultFallback sets the initial default fallback locale.
func WithDefaultFallback(id string) Option {
	return func(s *Settings) error {
		if id == "" {
			return ErrEmptyLocale
		}
		s.fallback = id
		return nil
	}
}

// Default returns the default locale.
func (s *Settings) Default() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}

// SetDefault replaces the default locale.
func (s *Settings) SetDefault(id string) error {
	if id == "" {
		return ErrEmptyLocale
	}
	s.mu.Lock()
	s.def = id
	s.mu.Unlock()
	return nil
}

// DefaultFallback returns the locale used when a lookup in the default locale fails.
func (s *Settings) DefaultFallback() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// SetDefaultFallback replaces the default fallback locale.
func (s *Settings) SetDefaultFallback(id string) error {
	if id == "" {
		return ErrEmptyLocale
	}
	s.mu.Lock()
	s.fallback = id
	s.mu.Unlock()
	return nil
}

var global = &Settings{def: DefaultLocale, fallback: DefaultLocale}

// Global returns the process-wide Settings used by the package-level functions.
func Global() *Settings {
	return global
}

// Default returns the process-wide default locale.
func Default() string {
	return global.Default()
}

// SetDefault replaces the process-wide default locale.
func SetDefault(id string) error {
	return global.SetDefault(id)
}

// DefaultFallback returns the process-wide default fallback locale.
func DefaultFallback() string {
	return global.DefaultFallback()
}

// SetDefaultFallback replaces the process-wide default fallback locale.
func SetDefaultFallback(id string) error {
	return global.SetDefaultFallback(id)
}

// IsRoot reports whether id has no script, region or variant part.
// Root locales have no further fallback.
func IsRoot(id string) bool {
	return !strings.Contains(id, Separator)
}

// Tag converts a locale identifier into a BCP 47 language tag without
// canonicalizing it, so "iw_IL" stays "iw-IL".
func Tag(id string) (language.Tag, error) {
	if id == "" {
		return language.Und, ErrEmptyLocale
	}
	tag, err := language.Raw.Parse(toBCP47(id))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %s", ErrInvalidTag, id, err)
	}
	return tag, nil
}

// Canonical returns the BCP 47 canonical form of id in identifier notation,
// replacing deprecated codes (e.g. "iw" becomes "he").
func Canonical(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyLocale
	}
	tag, err := language.Parse(toBCP47(id))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", ErrInvalidTag, id, err)
	}
	return FromTag(tag), nil
}

// FromTag renders a language tag in identifier notation, e.g. "zh-Hans-CN" as "zh_Hans_CN".
func FromTag(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", Separator)
}

func toBCP47(id string) string {
	return strings.ReplaceAll(id, Separator, "-")
}
