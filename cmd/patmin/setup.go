package main

import (
	"context"
	"fmt"

	"github.com/korpuslab/patmin/config"
	"github.com/korpuslab/patmin/pipeline"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/storage/zombiezen"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}

	return config.Default(), nil
}

// buildProvider assembles the provider chain: the annotation source
// (HTTP sidecar, or a pre-annotated JSON corpus for offline runs) wrapped
// in the parse cache. The returned closer releases the cache database.
func buildProvider(ctx context.Context, conf *config.Config, annotations string) (provider.Provider, func(), error) {
	var inner provider.Provider
	if annotations != "" {
		static, err := provider.LoadStatic(annotations)
		if err != nil {
			return nil, nil, err
		}
		inner = static
	} else {
		client := provider.NewHTTPClient(conf.Provider.URL, conf.Provider.Timeout())
		if err := client.Ping(ctx); err != nil {
			return nil, nil, err
		}
		inner = client
	}

	closer := func() {}
	var store *zombiezen.ParseStore
	if conf.CachePath != "" {
		var err error
		store, err = zombiezen.Open(ctx, conf.CachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open parse cache: %w", err)
		}
		closer = func() { store.Close() }
	}

	if store != nil {
		return provider.NewCached(inner, store), closer, nil
	}

	return provider.NewCached(inner, nil), closer, nil
}

func analyzerOptions(conf *config.Config, log zerolog.Logger, onStage func(string)) pipeline.Options {
	return pipeline.Options{
		Exclude:       conf.Exclusions(),
		ExcludeLabels: conf.SignatureLabels(),
		TopNgrams:     conf.TopNgrams,
		TopStructures: conf.TopStructures,
		Workers:       conf.Workers,
		Logger:        log,
		OnStage:       onStage,
	}
}
