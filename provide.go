package localefixture

// LocaleCase is a single-locale test case row.
type LocaleCase struct {
	Locale string
}

// Name returns the subtest name for the case.
func (c LocaleCase) Name() string {
	return c.Locale
}

// AliasCase is an alias test case row.
type AliasCase struct {
	Alias     string
	Canonical string
}

// Name returns the subtest name for the case. Aliases are unique, so the alias alone is enough.
func (c AliasCase) Name() string {
	return c.Alias
}

// ProvideLocales returns one case per locale, in snapshot order.
func (s *Snapshot) ProvideLocales() []LocaleCase {
	return localeCases(s.locales)
}

// ProvideLocaleAliases returns one case per alias, in snapshot order.
func (s *Snapshot) ProvideLocaleAliases() []AliasCase {
	cases := make([]AliasCase, len(s.aliases))
	for i, a := range s.aliases {
		cases[i] = AliasCase{Alias: a.Alias, Canonical: a.Canonical}
	}
	return cases
}

// ProvideRootLocales returns one case per root locale, in snapshot order.
func (s *Snapshot) ProvideRootLocales() []LocaleCase {
	return localeCases(s.roots)
}

func localeCases(ids []string) []LocaleCase {
	cases := make([]LocaleCase, len(ids))
	for i, id := range ids {
		cases[i] = LocaleCase{Locale: id}
	}
	return cases
}
