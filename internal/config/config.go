// Package config holds the tunables of the CPU backend and loads them from YAML.
//
// Example file:
//
//	parallel:
//	  enabled: true
//	  num_workers: 8
//	  min_chunk_size: 4096
//	matmul:
//	  use_blas: true
//	random:
//	  seed: 42 # 0 seeds from entropy
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/internal/parallel"
)

// MatMul controls the matrix multiplication kernels.
type MatMul struct {
	// UseBLAS routes float32/float64 products through gonum BLAS.
	UseBLAS bool `yaml:"use_blas"`
}

// Random controls the backend's random generator.
type Random struct {
	// Seed of a generator private to the backend. 0 uses the process-wide generator.
	Seed uint64 `yaml:"seed"`
}

// Config is the complete backend configuration.
type Config struct {
	Parallel parallel.Config `yaml:"parallel"`
	MatMul   MatMul          `yaml:"matmul"`
	Random   Random          `yaml:"random"`
}

// Default returns the configuration used when none is given.
func Default() Config {
	return Config{
		Parallel: parallel.DefaultConfig(),
		MatMul:   MatMul{UseBLAS: true},
	}
}

// Validate checks the configuration for values no kernel can work with.
func (c Config) Validate() error {
	if c.Parallel.NumWorkers < 0 {
		return errors.Errorf("config: parallel.num_workers must be >= 0, got %d", c.Parallel.NumWorkers)
	}
	if c.Parallel.MinChunkSize < 0 {
		return errors.Errorf("config: parallel.min_chunk_size must be >= 0, got %d", c.Parallel.MinChunkSize)
	}
	return nil
}

// Parse decodes YAML on top of Default, so omitted keys keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.WithMessage(err, path)
	}
	return cfg, nil
}
