// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/laguide/matrix"
)

// Defaults.
const (
	DefaultLogLevel = "warn"
)

// Config is the root of a laguide TOML file.
//
//	[cipher]
//	key  = [[1, 2], [3, 5]]
//	seed = 42
//
//	[matrix]
//	tolerance = 1e-12
//
//	[log]
//	level = "debug"
type Config struct {
	Cipher CipherConfig `toml:"cipher"`
	Matrix MatrixConfig `toml:"matrix"`
	Log    LogConfig    `toml:"log"`
}

// CipherConfig holds the Hill key and the padding seed. Seed 0 means
// cryptographic padding.
type CipherConfig struct {
	Key  [][]int `toml:"key"`
	Seed int64   `toml:"seed"`
}

// MatrixConfig tunes the numeric kernels. A nil Tolerance means unset;
// an explicit 0 disables chopping.
type MatrixConfig struct {
	Tolerance *float64 `toml:"tolerance"`
}

// LogConfig selects the go-log level for every laguide subsystem.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// Load decodes path, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SetDefaults fills zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Matrix.Tolerance == nil {
		tol := matrix.DefaultTolerance
		c.Matrix.Tolerance = &tol
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// ValidationError names one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every ValidationError found by Validate.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks structural constraints only. Key invertibility is left to
// hill.NewCipher, which reports it with the proper sentinel.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if len(c.Cipher.Key) > 0 {
		n := len(c.Cipher.Key)
		for i, row := range c.Cipher.Key {
			if len(row) != n {
				errs = append(errs, ValidationError{
					Field:   "cipher.key",
					Message: fmt.Sprintf("row %d has %d entries, want %d (key must be square)", i, len(row), n),
				})
				break
			}
		}
	}
	if c.Matrix.Tolerance != nil {
		if err := matrix.ValidateTolerance(*c.Matrix.Tolerance); err != nil {
			errs = append(errs, ValidationError{Field: "matrix.tolerance", Message: err.Error()})
		}
	}
	if _, err := logging.LevelFromString(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s'", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Tolerance returns the configured chop tolerance, or matrix.DefaultTolerance
// when none was set.
func (c *Config) Tolerance() float64 {
	if c.Matrix.Tolerance == nil {
		return matrix.DefaultTolerance
	}
	return *c.Matrix.Tolerance
}

// HasKey reports whether a cipher key was configured.
func (c *Config) HasKey() bool { return len(c.Cipher.Key) > 0 }
