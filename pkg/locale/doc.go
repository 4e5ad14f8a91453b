// Package locale holds the process-wide default locale settings and helpers
// for working with underscore-separated locale identifiers.
//
// Identifiers follow the language[_Script][_REGION] pattern, e.g. "en",
// "en_GB" or "zh_Hans_CN". They are treated as opaque, case-sensitive strings;
// Tag and Canonical bridge them to golang.org/x/text/language when a BCP 47
// view is needed.
//
// # Defaults
//
// Code under test reads the default locale and the default fallback locale
// from a Settings value. The package-level functions operate on a shared
// instance:
//
//	_ = locale.SetDefault("de")
//	_ = locale.SetDefaultFallback("en")
//
//	locale.Default()         // "de"
//	locale.DefaultFallback() // "en"
//
// Tests that change the shared instance must not run in parallel with tests
// that read it.
package locale
