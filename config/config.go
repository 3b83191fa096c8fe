// Package config loads the analyzer configuration from a YAML file and
// provides the built-in defaults. The exclusion vocabularies are plain
// data here so test suites can substitute smaller sets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/korpuslab/patmin/stoplist"
	"gopkg.in/yaml.v3"
)

type Provider struct {
	// URL is the base address of the annotation sidecar service.
	URL string `yaml:"url"`

	// TimeoutSecs bounds every single request to the service.
	TimeoutSecs int `yaml:"timeout_secs"`
}

func (p Provider) Timeout() time.Duration {
	return time.Duration(p.TimeoutSecs) * time.Second
}

type Config struct {
	Provider Provider `yaml:"provider"`

	// CachePath is the SQLite parse cache file. Empty disables the
	// on-disk cache (parses are still memoized in memory per run).
	CachePath string `yaml:"cache_path"`

	// Column is the spreadsheet column holding the sentences.
	Column string `yaml:"column"`

	TopNgrams     int `yaml:"top_ngrams"`
	TopStructures int `yaml:"top_structures"`

	// Workers bounds the parallel parse warm-up.
	Workers int `yaml:"workers"`

	// Stoplist overrides the built-in lemma exclusion set when not empty.
	Stoplist []string `yaml:"stoplist"`

	// SignatureExclude overrides the dependency labels dropped from
	// clause signatures when not empty.
	SignatureExclude []string `yaml:"signature_exclude"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider:      Provider{URL: "http://localhost:8090", TimeoutSecs: 30},
		Column:        "context_ru",
		TopNgrams:     3,
		TopStructures: 3,
		Workers:       4,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return conf, nil
}

// Exclusions returns the lemma exclusion set to use.
func (c *Config) Exclusions() stoplist.Set {
	if len(c.Stoplist) > 0 {
		return stoplist.New(c.Stoplist...)
	}

	return stoplist.Russian()
}

// SignatureLabels returns the set of dependency labels excluded from
// clause signatures.
func (c *Config) SignatureLabels() stoplist.Set {
	if len(c.SignatureExclude) > 0 {
		return stoplist.New(c.SignatureExclude...)
	}

	return stoplist.SignatureLabels()
}
