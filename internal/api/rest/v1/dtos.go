package v1

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// EncryptRequest is the body of POST /aes/encrypt. KeySize, when set, pins
// the AES variant and the key must be exactly that many bytes.
type EncryptRequest struct {
	Message string `json:"message"`
	Key     string `json:"key" validate:"required,aeskey"`
	KeySize uint32 `json:"key_size,omitempty" validate:"omitempty,aeskeysize"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	return crypto.CheckKeySize(r.Key, int(r.KeySize))
}

// DecryptRequest is the body of POST /aes/decrypt
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required"`
	Key        string `json:"key" validate:"required,aeskey"`
	KeySize    uint32 `json:"key_size,omitempty" validate:"omitempty,aeskeysize"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	return crypto.CheckKeySize(r.Key, int(r.KeySize))
}

// BlocksRequest is the body of POST /aes/blocks
type BlocksRequest struct {
	Message string `json:"message"`
}

// GenerateKeyRequest is the body of POST /aes/keys; KeySize is in bytes
type GenerateKeyRequest struct {
	KeySize uint32 `json:"key_size" validate:"required,aeskeysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateRequest(r)
}

// EncryptResponse carries Base64 ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse carries the recovered message
type DecryptResponse struct {
	Message string `json:"message"`
}

// GenerateKeyResponse carries a generated text key
type GenerateKeyResponse struct {
	Key     string `json:"key"`
	KeySize int    `json:"key_size"`
}

// BlocksResponse lists the padded message as hex blocks
type BlocksResponse struct {
	BlockSize int      `json:"block_size"`
	Blocks    []string `json:"blocks"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error message returned to the client
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateRequest(request interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	err = validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
