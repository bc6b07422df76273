package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awalczak/presskit"
	"github.com/awalczak/presskit/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := yaml.ReadConfig(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, presskit.DefaultOptions(), opts)
	})

	t.Run("partial config keeps defaults for absent fields", func(t *testing.T) {
		t.Parallel()

		opts, err := yaml.ReadConfig(strings.NewReader("minContentLength: 120\n"))

		require.NoError(t, err)
		assert.Equal(t, 120, opts.MinContentLength)
		assert.True(t, opts.IncludeImages)
		assert.True(t, opts.IncludeLinks)
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		input := `minContentLength: 200
includeImages: false
includeLinks: false
emitHtml: true
emitMarkdown: true
siteSelectors:
  example.com:
    - "#canonical-body"
    - ".article-content"
authorVocabulary:
  - AUTHOR
  - REDAKTOR
noiseVocabulary:
  - FOOTER
`

		opts, err := yaml.ReadConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 200, opts.MinContentLength)
		assert.False(t, opts.IncludeImages)
		assert.False(t, opts.IncludeLinks)
		assert.True(t, opts.EmitHTML)
		assert.True(t, opts.EmitMarkdown)
		assert.Equal(t, []string{"#canonical-body", ".article-content"}, opts.SiteSelectors["example.com"])
		assert.Equal(t, []string{"AUTHOR", "REDAKTOR"}, opts.AuthorVocabulary)
		assert.Equal(t, []string{"FOOTER"}, opts.NoiseVocabulary)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ReadConfig(strings.NewReader("minContentLenght: 120\n"))

		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})

	t.Run("negative minimum length is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ReadConfig(strings.NewReader("minContentLength: -1\n"))

		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "presskit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("emitMarkdown: true\n"), 0o644))

		opts, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.True(t, opts.EmitMarkdown)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})
}
