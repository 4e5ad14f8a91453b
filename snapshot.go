package localefixture

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/localefixture/pkg/locale"
)

// Alias maps a deprecated or non-canonical locale identifier to its canonical replacement.
type Alias struct {
	Alias     string `json:"alias" yaml:"alias"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Snapshot is a validated set of locale reference data.
// It is immutable after creation, making it safe for concurrent use.
// Every accessor returns a copy, so callers may modify the result freely.
type Snapshot struct {
	// Lookup indexes built once from the ordered tables.
	localeIndex map[string]struct{}
	aliasIndex  map[string]string

	version string

	// Ordered tables in snapshot order.
	locales []string
	aliases []Alias

	// Pre-computed root locales, in locale table order.
	roots []string
}

// New creates a Snapshot from the given tables.
// It returns an error wrapping ErrInvalidSnapshot when the tables contain
// empty identifiers, duplicate locales, duplicate aliases or identity aliases.
func New(version string, locales []string, aliases []Alias) (*Snapshot, error) {
	if err := validate(locales, aliases); err != nil {
		return nil, err
	}

	s := &Snapshot{
		version:     version,
		locales:     slices.Clone(locales),
		aliases:     slices.Clone(aliases),
		localeIndex: make(map[string]struct{}, len(locales)),
		aliasIndex:  make(map[string]string, len(aliases)),
	}

	for _, id := range s.locales {
		s.localeIndex[id] = struct{}{}
		if locale.IsRoot(id) {
			s.roots = append(s.roots, id)
		}
	}
	for _, a := range s.aliases {
		s.aliasIndex[a.Alias] = a.Canonical
	}

	return s, nil
}

// Version returns the snapshot version label. Empty when the source did not declare one.
func (s *Snapshot) Version() string {
	return s.version
}

// Locales returns the full locale list in snapshot order.
func (s *Snapshot) Locales() []string {
	return slices.Clone(s.locales)
}

// LocaleAliases returns the alias table keyed by alias.
func (s *Snapshot) LocaleAliases() map[string]string {
	return maps.Clone(s.aliasIndex)
}

// Aliases returns the alias table in snapshot order.
func (s *Snapshot) Aliases() []Alias {
	return slices.Clone(s.aliases)
}

// RootLocales returns the locales that carry no script, region or variant
// sub-tag (e.g. "en" but not "en_GB"), preserving their relative order.
func (s *Snapshot) RootLocales() []string {
	return slices.Clone(s.roots)
}

// HasLocale reports whether id is part of the locale table.
func (s *Snapshot) HasLocale(id string) bool {
	_, ok := s.localeIndex[id]
	return ok
}

// Canonical returns the canonical identifier for alias.
func (s *Snapshot) Canonical(alias string) (string, bool) {
	c, ok := s.aliasIndex[alias]
	return c, ok
}

func validate(locales []string, aliases []Alias) error {
	var errs []error

	seen := make(map[string]struct{}, len(locales))
	for i, id := range locales {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: locales[%d]", ErrEmptyLocale, i))
			continue
		}
		if _, exists := seen[id]; exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLocale, id))
			continue
		}
		seen[id] = struct{}{}
	}

	keys := make(map[string]struct{}, len(aliases))
	for i, a := range aliases {
		if a.Alias == "" || a.Canonical == "" {
			errs = append(errs, fmt.Errorf("%w: aliases[%d]", ErrEmptyLocale, i))
			continue
		}
		if a.Alias == a.Canonical {
			errs = append(errs, fmt.Errorf("%w: %q", ErrSelfAlias, a.Alias))
		}
		if _, exists := keys[a.Alias]; exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateAlias, a.Alias))
			continue
		}
		keys[a.Alias] = struct{}{}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSnapshot}, errs...)...)
}
