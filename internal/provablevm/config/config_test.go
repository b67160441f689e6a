package config

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
}

func TestValidateRejectsNonPositiveMaxSteps(t *testing.T) {
	c := DefaultConfig().WithMaxSteps(0)
	if err := c.Validate(); err == nil {
		t.Error("expected an error for MaxSteps = 0")
	}
}

func TestValidateRejectsUnsupportedCurve(t *testing.T) {
	c := DefaultConfig()
	c.Curve = ecc.BN254
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an unsupported curve")
	}
}

func TestValidateRejectsEmptyKeyPaths(t *testing.T) {
	if err := DefaultConfig().WithProvingKeyPath("").Validate(); err == nil {
		t.Error("expected an error for an empty proving key path")
	}
	if err := DefaultConfig().WithVerifyingKeyPath("").Validate(); err == nil {
		t.Error("expected an error for an empty verifying key path")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.WithMaxSteps(42)
	if c.MaxSteps == 42 {
		t.Error("mutating a clone affected the original config")
	}
}

func TestFluentSettersChain(t *testing.T) {
	c := DefaultConfig().
		WithMaxSteps(10).
		WithProvingKeyPath("a.pk").
		WithVerifyingKeyPath("a.vk")
	if c.MaxSteps != 10 || c.ProvingKeyPath != "a.pk" || c.VerifyingKeyPath != "a.vk" {
		t.Errorf("c = %+v, want chained values applied", c)
	}
}
