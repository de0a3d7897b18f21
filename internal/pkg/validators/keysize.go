package validators

import (
	"fmt"
	"reflect"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// AESKeyTag is the struct tag that triggers AESKeyValidation.
const AESKeyTag = "aeskey"

// AESKeySizeTag is the struct tag that triggers AESKeySizeValidation.
const AESKeySizeTag = "aeskeysize"

// AESKeyValidation validates that a string key is 16, 24 or 32 bytes long once UTF-8 encoded.
func AESKeyValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return crypto.IsValidAESKeySize(len(field.String()))
}

// AESKeySizeValidation validates a key size given in bytes (16, 24, 32).
func AESKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return crypto.IsValidAESKeySize(int(fl.Field().Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return crypto.IsValidAESKeySize(int(fl.Field().Uint()))
	default:
		return false
	}
}

// New returns a validator with the AES validations registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(AESKeyTag, AESKeyValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", AESKeyTag, err)
	}
	if err := validate.RegisterValidation(AESKeySizeTag, AESKeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", AESKeySizeTag, err)
	}
	return validate, nil
}
