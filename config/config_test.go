package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()

	assert.Equal(t, "http://localhost:8090", conf.Provider.URL)
	assert.Equal(t, 30*time.Second, conf.Provider.Timeout())
	assert.Equal(t, "context_ru", conf.Column)
	assert.Equal(t, 3, conf.TopNgrams)
	assert.Equal(t, 3, conf.TopStructures)
	assert.True(t, conf.Exclusions().Has("и"))
	assert.True(t, conf.SignatureLabels().Has("punct"))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patmin.yaml")
	data := `
provider:
  url: http://annotator:9000
  timeout_secs: 5
column: phrase
top_ngrams: 10
stoplist:
  - лишь
signature_exclude:
  - punct
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://annotator:9000", conf.Provider.URL)
	assert.Equal(t, 5*time.Second, conf.Provider.Timeout())
	assert.Equal(t, "phrase", conf.Column)
	assert.Equal(t, 10, conf.TopNgrams)
	// untouched keys keep their defaults
	assert.Equal(t, 3, conf.TopStructures)

	assert.True(t, conf.Exclusions().Has("лишь"))
	assert.False(t, conf.Exclusions().Has("и"))
	assert.True(t, conf.SignatureLabels().Has("punct"))
	assert.False(t, conf.SignatureLabels().Has("det"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
