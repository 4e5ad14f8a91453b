package localefixture_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localefixture"
)

func TestSnapshotEncode(t *testing.T) {
	t.Parallel()

	for _, format := range []localefixture.Format{localefixture.FormatYAML, localefixture.FormatJSON} {
		t.Run("round trips embedded snapshot as "+string(format), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, localefixture.Default().Encode(&buf, format))

			snap, err := localefixture.Parse(buf.Bytes(), localefixture.WithFormat(format))
			require.NoError(t, err)
			assert.Equal(t, localefixture.Locales(), snap.Locales())
			assert.Equal(t, localefixture.Aliases(), snap.Aliases())
			assert.Equal(t, localefixture.RootLocales(), snap.RootLocales())
		})
	}

	t.Run("quotes YAML scalars", func(t *testing.T) {
		t.Parallel()
		snap, err := localefixture.New("v2", []string{"no"}, []localefixture.Alias{{Alias: "no", Canonical: "nb"}})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, snap.Encode(&buf, localefixture.FormatYAML))
		assert.Contains(t, buf.String(), `- "no"`)
		assert.Contains(t, buf.String(), `"no": "nb"`)
	})

	t.Run("writes empty JSON tables", func(t *testing.T) {
		t.Parallel()
		snap, err := localefixture.New("v1", nil, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, snap.Encode(&buf, localefixture.FormatJSON))
		assert.JSONEq(t, `{"version": "v1", "locales": [], "aliases": {}}`, buf.String())
	})

	t.Run("keeps alias order in JSON", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, localefixture.Default().Encode(&buf, localefixture.FormatJSON))
		out := buf.String()
		assert.Less(t, strings.Index(out, `"az_AZ"`), strings.Index(out, `"zh_TW": "zh_Hant_TW"`))
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		t.Parallel()
		err := localefixture.Default().Encode(&bytes.Buffer{}, "xml")
		require.ErrorIs(t, err, localefixture.ErrUnsupportedFormat)
	})
}
