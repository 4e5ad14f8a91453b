// Package localefixture provides static locale reference data for
// parametrizing tests of internationalization code.
//
// The package embeds a snapshot of supported locale identifiers and a table
// of deprecated locale codes mapped to their canonical replacements. Tests
// can iterate over the data without loading any locale library, so test
// discovery never depends on optional runtime support.
//
// # Reference Data
//
// Three read-only views are available:
//
//	localefixture.Locales()       // ["af", "af_NA", ..., "zu_ZA"]
//	localefixture.LocaleAliases() // {"iw": "he", "zh_CN": "zh_Hans_CN", ...}
//	localefixture.RootLocales()   // ["af", "ak", ..., "zu"]
//
// Root locales are identifiers without a "_" separator ("en", but not
// "en_GB" or "en_US_POSIX"). They are computed once when the package is
// loaded. Every accessor returns a copy.
//
// # Table-Driven Tests
//
// The Provide functions return one row per entry:
//
//	func TestNames(t *testing.T) {
//		for _, tc := range localefixture.ProvideLocaleAliases() {
//			t.Run(tc.Name(), func(t *testing.T) {
//				localefixture.Setup(t)
//				require.Equal(t, lookup(tc.Canonical), lookup(tc.Alias))
//			})
//		}
//	}
//
// RunLocales, RunLocaleAliases and RunRootLocales wrap the same loop:
//
//	localefixture.RunRootLocales(t, func(t *testing.T, id string) {
//		require.NotEmpty(t, names.Get(id))
//	})
//
// # Setup Hook
//
// Setup resets the default locale and the default fallback locale of
// package locale to BaselineLocale and restores them when the test ends.
// Use SetupWith to reset another Defaults implementation. Because the
// defaults are process-wide, tests using Setup must not call t.Parallel.
//
// # Snapshots
//
// The embedded data is a snapshot that is replaced wholesale on refresh.
// Other snapshots can be loaded from YAML or JSON:
//
//	snap, err := localefixture.LoadFile("testdata/locales.json")
//
// Loading validates the tables: empty identifiers, duplicate locales,
// duplicate aliases and aliases mapping to themselves are rejected with an
// error wrapping ErrInvalidSnapshot. The embedded snapshot is validated at
// package initialization and panics on violation.
package localefixture
