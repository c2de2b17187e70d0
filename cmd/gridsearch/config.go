package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridsearch/rabinkarp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration accepted by --config. Flags set on the
// command line override values from the file.
//
//	hash:
//	  base_col: 31
//	  base_row: 37
//	  modulus: 1000000007
//	workers: 4
//	randomize: false
//	seed: 0
//	format: human
//	color: auto
//	grayscale: false
type Config struct {
	Hash      rabinkarp.HashParams `yaml:"hash"`
	Workers   int                  `yaml:"workers"`
	Randomize bool                 `yaml:"randomize"`
	Seed      uint64               `yaml:"seed"`
	Format    string               `yaml:"format"`
	Color     string               `yaml:"color"`
	Grayscale bool                 `yaml:"grayscale"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Hash:    rabinkarp.DefaultHashParams(),
		Workers: rabinkarp.DefaultWorkers,
		Format:  "human",
		Color:   "auto",
	}
}

// LoadConfig reads path over DefaultConfig. Keys missing from the file keep
// their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// Options converts the configuration into searcher options.
// A non-zero Seed implies Randomize.
func (c Config) Options() []rabinkarp.Option {
	opts := []rabinkarp.Option{
		rabinkarp.WithHashParams(c.Hash),
		rabinkarp.WithWorkers(c.Workers),
	}
	if c.Randomize || c.Seed != 0 {
		opts = append(opts, rabinkarp.WithRandomizedBases(c.Seed))
	}

	return opts
}

// overrideFromFlags copies every flag the user set explicitly into cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("base-col") {
		cfg.Hash.BaseCol = findBaseCol
	}
	if flags.Changed("base-row") {
		cfg.Hash.BaseRow = findBaseRow
	}
	if flags.Changed("modulus") {
		cfg.Hash.Modulus = findModulus
	}
	if flags.Changed("workers") {
		cfg.Workers = findWorkers
	}
	if flags.Changed("randomize") {
		cfg.Randomize = findRandomize
	}
	if flags.Changed("seed") {
		cfg.Seed = findSeed
	}
	if flags.Changed("format") {
		cfg.Format = findFormat
	}
	if flags.Changed("color") {
		cfg.Color = findColor
	}
	if flags.Changed("grayscale") {
		cfg.Grayscale = findGrayscale
	}
}
