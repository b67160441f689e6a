// Package config holds the provable VM's run-time configuration: the
// interpreter's step cap and the proof system's curve and key paths.
package config

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/provablevm/provablevm/internal/provablevm/vm"
)

// Config is the provable VM's run-time configuration.
type Config struct {
	// MaxSteps caps the number of steps the interpreter executes. Run
	// treats zero as vm.DefaultMaxSteps; Validate rejects zero.
	MaxSteps int

	// Curve is the elliptic curve the proof system is fixed to.
	Curve ecc.ID

	// ProvingKeyPath and VerifyingKeyPath are the default on-disk
	// locations the CLI reads/writes circuit-specific keys from.
	ProvingKeyPath   string
	VerifyingKeyPath string
}

// DefaultConfig returns the provable VM's default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxSteps:         vm.DefaultMaxSteps,
		Curve:            ecc.BLS12_381,
		ProvingKeyPath:   "provablevm.pk",
		VerifyingKeyPath: "provablevm.vk",
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("config: max steps must be positive, got %d", c.MaxSteps)
	}
	if c.Curve != ecc.BLS12_381 {
		return fmt.Errorf("config: unsupported curve %s, only BLS12-381 is implemented", c.Curve)
	}
	if c.ProvingKeyPath == "" {
		return fmt.Errorf("config: proving key path must not be empty")
	}
	if c.VerifyingKeyPath == "" {
		return fmt.Errorf("config: verifying key path must not be empty")
	}
	return nil
}

// WithMaxSteps sets the interpreter's step cap.
func (c *Config) WithMaxSteps(steps int) *Config {
	c.MaxSteps = steps
	return c
}

// WithProvingKeyPath sets the proving key's default path.
func (c *Config) WithProvingKeyPath(path string) *Config {
	c.ProvingKeyPath = path
	return c
}

// WithVerifyingKeyPath sets the verifying key's default path.
func (c *Config) WithVerifyingKeyPath(path string) *Config {
	c.VerifyingKeyPath = path
	return c
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
