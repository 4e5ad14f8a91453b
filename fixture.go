package localefixture

import (
	_ "embed"
)

//go:embed data/snapshot.yaml
var snapshotData []byte

// std is the embedded reference snapshot, decoded and validated once at load time.
var std = mustParse(snapshotData)

func mustParse(data []byte) *Snapshot {
	s, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the embedded reference snapshot.
func Default() *Snapshot {
	return std
}

// Locales returns the full reference locale list in fixed order.
func Locales() []string {
	return std.Locales()
}

// LocaleAliases returns the reference alias table keyed by alias.
func LocaleAliases() map[string]string {
	return std.LocaleAliases()
}

// Aliases returns the reference alias table in fixed order.
func Aliases() []Alias {
	return std.Aliases()
}

// RootLocales returns the reference locales without a separator, for which
// no further fallback is possible.
func RootLocales() []string {
	return std.RootLocales()
}

// ProvideLocales returns one test case per reference locale.
func ProvideLocales() []LocaleCase {
	return std.ProvideLocales()
}

// ProvideLocaleAliases returns one test case per reference alias.
func ProvideLocaleAliases() []AliasCase {
	return std.ProvideLocaleAliases()
}

// ProvideRootLocales returns one test case per reference root locale.
func ProvideRootLocales() []LocaleCase {
	return std.ProvideRootLocales()
}
