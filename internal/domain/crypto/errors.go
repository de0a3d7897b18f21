package crypto

import (
	"errors"
	"fmt"
)

// KeyLengthError is returned when a key is not 16, 24 or 32 bytes long.
type KeyLengthError struct {
	Length int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("invalid AES key length %d: key must be 16, 24 or 32 bytes", e.Length)
}

// KeySizeMismatchError is returned when a key is not exactly the size the caller selected.
type KeySizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *KeySizeMismatchError) Error() string {
	return fmt.Sprintf("key is %d bytes but AES-%d requires %d bytes", e.Actual, e.Expected*8, e.Expected)
}

// EncodingError is returned when ciphertext cannot be decoded into whole AES blocks.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("malformed ciphertext: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// PaddingError is returned when decrypted data does not end in valid PKCS#7 padding.
type PaddingError struct {
	Reason string
}

func (e *PaddingError) Error() string {
	return "invalid PKCS#7 padding: " + e.Reason
}

// IsValidationError reports whether err carries one of the cipher's
// caller-facing failures (key length, encoding or padding).
func IsValidationError(err error) bool {
	var keyErr *KeyLengthError
	var mismatchErr *KeySizeMismatchError
	var encErr *EncodingError
	var padErr *PaddingError
	return errors.As(err, &keyErr) || errors.As(err, &mismatchErr) || errors.As(err, &encErr) || errors.As(err, &padErr)
}
