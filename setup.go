package localefixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localefixture/pkg/locale"
)

// BaselineLocale is the locale both defaults are reset to before each test.
const BaselineLocale = "en"

// Defaults is the ambient locale configuration consumed by the code under test.
// *locale.Settings implements it.
type Defaults interface {
	Default() string
	SetDefault(id string) error
	DefaultFallback() string
	SetDefaultFallback(id string) error
}

// Setup resets the process-wide default locale and default fallback locale
// to BaselineLocale. The previous values are restored when the test ends.
// Tests calling Setup must not run in parallel.
func Setup(tb testing.TB) {
	tb.Helper()
	SetupWith(tb, locale.Global())
}

// SetupWith is like Setup but resets the given Defaults.
func SetupWith(tb testing.TB, d Defaults) {
	tb.Helper()

	prevDefault, prevFallback := d.Default(), d.DefaultFallback()
	tb.Cleanup(func() {
		assert.NoError(tb, d.SetDefault(prevDefault), "restoring default locale")
		assert.NoError(tb, d.SetDefaultFallback(prevFallback), "restoring default fallback locale")
	})

	require.NoError(tb, d.SetDefault(BaselineLocale))
	require.NoError(tb, d.SetDefaultFallback(BaselineLocale))
}

// RunLocales runs fn as a subtest once per reference locale.
// Setup is called before each invocation.
func RunLocales(t *testing.T, fn func(t *testing.T, id string)) {
	t.Helper()
	for _, tc := range ProvideLocales() {
		t.Run(tc.Name(), func(t *testing.T) {
			Setup(t)
			fn(t, tc.Locale)
		})
	}
}

// RunLocaleAliases runs fn as a subtest once per reference alias.
// Setup is called before each invocation.
func RunLocaleAliases(t *testing.T, fn func(t *testing.T, alias, canonical string)) {
	t.Helper()
	for _, tc := range ProvideLocaleAliases() {
		t.Run(tc.Name(), func(t *testing.T) {
			Setup(t)
			fn(t, tc.Alias, tc.Canonical)
		})
	}
}

// RunRootLocales runs fn as a subtest once per reference root locale.
// Setup is called before each invocation.
func RunRootLocales(t *testing.T, fn func(t *testing.T, id string)) {
	t.Helper()
	for _, tc := range ProvideRootLocales() {
		t.Run(tc.Name(), func(t *testing.T) {
			Setup(t)
			fn(t, tc.Locale)
		})
	}
}
