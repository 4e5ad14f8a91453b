package localefixture_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localefixture"
)

func TestLocales(t *testing.T) {
	t.Parallel()

	t.Run("has no duplicates", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool)
		for _, id := range localefixture.Locales() {
			require.False(t, seen[id], "duplicate locale %q", id)
			seen[id] = true
		}
	})

	t.Run("keeps snapshot order", func(t *testing.T) {
		t.Parallel()
		ids := localefixture.Locales()
		require.Len(t, ids, 626)
		assert.Equal(t, []string{"af", "af_NA", "af_ZA"}, ids[:3])
		assert.Equal(t, []string{"zh_TW", "zu", "zu_ZA"}, ids[len(ids)-3:])
	})

	t.Run("contains reference locales", func(t *testing.T) {
		t.Parallel()
		ids := localefixture.Locales()
		for _, id := range []string{"en", "en_GB", "en_US_POSIX", "zh_Hans_CN", "sr_Latn_XK"} {
			assert.Contains(t, ids, id)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		ids := localefixture.Locales()
		ids[0] = "changed"
		require.Equal(t, "af", localefixture.Locales()[0])
	})
}

func TestLocaleAliases(t *testing.T) {
	t.Parallel()

	t.Run("maps deprecated codes", func(t *testing.T) {
		t.Parallel()
		aliases := localefixture.LocaleAliases()
		require.Len(t, aliases, 41)
		assert.Equal(t, "zh_Hans_CN", aliases["zh_CN"])
		assert.Equal(t, "nb", aliases["no"])
		assert.Equal(t, "fil", aliases["tl"])
		assert.Equal(t, "he", aliases["iw"])
		assert.Equal(t, "id", aliases["in"])
	})

	t.Run("has no identity aliases", func(t *testing.T) {
		t.Parallel()
		for alias, canonical := range localefixture.LocaleAliases() {
			assert.NotEqual(t, alias, canonical)
		}
	})

	t.Run("ordered view matches map", func(t *testing.T) {
		t.Parallel()
		aliases := localefixture.LocaleAliases()
		ordered := localefixture.Aliases()
		require.Len(t, ordered, len(aliases))
		for _, a := range ordered {
			assert.Equal(t, aliases[a.Alias], a.Canonical)
		}
		assert.Equal(t, localefixture.Alias{Alias: "az_AZ", Canonical: "az_Latn_AZ"}, ordered[0])
		assert.Equal(t, localefixture.Alias{Alias: "zh_TW", Canonical: "zh_Hant_TW"}, ordered[len(ordered)-1])
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		aliases := localefixture.LocaleAliases()
		delete(aliases, "iw")
		require.Contains(t, localefixture.LocaleAliases(), "iw")
	})
}

func TestRootLocales(t *testing.T) {
	t.Parallel()

	t.Run("excludes locales with a separator", func(t *testing.T) {
		t.Parallel()
		roots := localefixture.RootLocales()
		require.Len(t, roots, 135)
		assert.Contains(t, roots, "en")
		assert.NotContains(t, roots, "en_GB")
		assert.NotContains(t, roots, "en_US_POSIX")
		for _, id := range roots {
			assert.NotContains(t, id, "_")
		}
	})

	t.Run("is a stable filter of locales", func(t *testing.T) {
		t.Parallel()
		want := slices.DeleteFunc(localefixture.Locales(), func(id string) bool {
			return strings.Contains(id, "_")
		})
		require.Equal(t, want, localefixture.RootLocales())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localefixture.RootLocales(), localefixture.RootLocales())
	})
}

func TestProvide(t *testing.T) {
	t.Parallel()

	t.Run("one row per locale", func(t *testing.T) {
		t.Parallel()
		ids := localefixture.Locales()
		rows := localefixture.ProvideLocales()
		require.Len(t, rows, len(ids))
		for i, row := range rows {
			assert.Equal(t, ids[i], row.Locale)
			assert.Equal(t, ids[i], row.Name())
		}
	})

	t.Run("one row per alias", func(t *testing.T) {
		t.Parallel()
		aliases := localefixture.LocaleAliases()
		rows := localefixture.ProvideLocaleAliases()
		require.Len(t, rows, len(aliases))
		for _, row := range rows {
			assert.Equal(t, aliases[row.Alias], row.Canonical)
		}
		assert.Equal(t, localefixture.AliasCase{Alias: "az_AZ", Canonical: "az_Latn_AZ"}, rows[0])
	})

	t.Run("one row per root locale", func(t *testing.T) {
		t.Parallel()
		roots := localefixture.RootLocales()
		rows := localefixture.ProvideRootLocales()
		require.Len(t, rows, len(roots))
		for i, row := range rows {
			assert.Equal(t, roots[i], row.Locale)
		}
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	snap := localefixture.Default()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Version())
	assert.True(t, snap.HasLocale("en_US_POSIX"))
	assert.False(t, snap.HasLocale("fil"))

	canonical, ok := snap.Canonical("sh_YU")
	require.True(t, ok)
	assert.Equal(t, "sr_Latn_RS", canonical)

	_, ok = snap.Canonical("en")
	assert.False(t, ok)
}
