// File: yaml.go
// Role: Optional YAML-file loading for Options, in the dungeon config.go
// style (a tagged struct plus a LoadFile reading it with gopkg.in/yaml.v3).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zxlab/zxrewrite/zxerr"
)

// FileOptions is the YAML-serializable mirror of Options. Field names are
// lower-cased in the file, matching the dungeon corpus's config.go
// convention.
type FileOptions struct {
	MaxIterations int   `yaml:"maxIterations"`
	Seed          int64 `yaml:"seed"`
	Verbose       bool  `yaml:"verbose"`
	StopOnInvalid bool  `yaml:"stopOnInvalid"`
}

// LoadFile reads a YAML configuration file and converts it to Options.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, zxerr.Wrap("config.LoadFile", err)
	}

	var fo FileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return Options{}, zxerr.Wrap("config.LoadFile", err)
	}

	return New(
		WithMaxIterations(fo.MaxIterations),
		WithSeed(fo.Seed),
		WithVerbose(fo.Verbose),
		WithStopOnInvalid(fo.StopOnInvalid),
	), nil
}
