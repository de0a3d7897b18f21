package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// CipherSettings holds tuning and hardening options for the AES engine
type CipherSettings struct {
	PaddingMode       string `mapstructure:"padding_mode" validate:"required,oneof=strict lenient"`
	Workers           int    `mapstructure:"workers" validate:"gte=0,lte=256"`
	ParallelThreshold int    `mapstructure:"parallel_threshold" validate:"gte=1"`
}

// DefaultCipherSettings returns strict padding with automatic worker sizing.
func DefaultCipherSettings() *CipherSettings {
	return &CipherSettings{
		PaddingMode:       crypto.PaddingModeStrict,
		Workers:           0,
		ParallelThreshold: 256,
	}
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}

	return nil
}
