package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/t-okuda/relwatch/pkg/domain/model"
)

// Sources holds source registry configuration.
type Sources struct {
	Path string
}

type sourcesFile struct {
	Sources []model.SourceConfig `toml:"sources"`
}

// Flags returns CLI flags for source registry configuration
func (c *Sources) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sources",
			Usage:       "TOML file overriding the built-in source registry",
			Destination: &c.Path,
			Sources:     cli.EnvVars("RELWATCH_SOURCES"),
		},
	}
}

// Load returns the monitored sources: the TOML file when given, the built-in
// registry otherwise.
func (c *Sources) Load() ([]model.SourceConfig, error) {
	if c.Path == "" {
		return model.DefaultSources(), nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sources file", goerr.V("path", c.Path))
	}

	var f sourcesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse sources file", goerr.V("path", c.Path))
	}
	if len(f.Sources) == 0 {
		return nil, goerr.New("sources file defines no sources", goerr.V("path", c.Path))
	}

	for _, src := range f.Sources {
		if src.Key == "" || src.FetchURL == "" {
			return nil, goerr.New("source entry missing key or url", goerr.V("source", src))
		}
	}

	return f.Sources, nil
}
