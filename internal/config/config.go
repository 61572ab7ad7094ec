// Package config loads the cpkit driver settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cpkit/modint"
)

// Supported modulus names.
const (
	Modulus1e9_7     = "1e9+7"
	Modulus998244353 = "998244353"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// FractionConfig bounds the rational reconstruction search.
type FractionConfig struct {
	MaxNumerator   int64 `yaml:"max_numerator"`
	MaxDenominator int64 `yaml:"max_denominator"`
}

// Config is the driver configuration.
type Config struct {
	// Modulus names the prime field used by the fraction command.
	Modulus string `yaml:"modulus"`
	// Workers is how many independent test cases are solved at once.
	Workers  int            `yaml:"workers"`
	Fraction FractionConfig `yaml:"fraction"`
}

// Default returns the built-in settings: 1e9+7, one worker per CPU, and
// fraction bounds 100 / 1e6.
func Default() *Config {
	return &Config{
		Modulus: Modulus1e9_7,
		Workers: runtime.GOMAXPROCS(0),
		Fraction: FractionConfig{
			MaxNumerator:   modint.DefaultMaxNumerator,
			MaxDenominator: modint.DefaultMaxDenominator,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// named file that cannot be read is an error, so a mistyped path never falls
// back to defaults silently.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	switch c.Modulus {
	case Modulus1e9_7, Modulus998244353:
	default:
		return fmt.Errorf("%w: unknown modulus %q", ErrInvalid, c.Modulus)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	if c.Fraction.MaxNumerator <= 0 || c.Fraction.MaxDenominator <= 0 {
		return fmt.Errorf("%w: fraction bounds must be positive", ErrInvalid)
	}

	return nil
}

// FractionOptions converts the bounds into modint options.
func (c *Config) FractionOptions() []modint.FractionOption {
	return []modint.FractionOption{
		modint.WithMaxNumerator(c.Fraction.MaxNumerator),
		modint.WithMaxDenominator(c.Fraction.MaxDenominator),
	}
}
