package cryptography

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography/rijndael"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	engine *rijndael.Engine
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger, opts ...rijndael.Option) (cryptoDomain.AESProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesProcessor{
		engine: rijndael.NewEngine(opts...),
		logger: logger,
	}, nil
}

// OptionsFromSettings translates cipher settings into engine options.
func OptionsFromSettings(settings *config.CipherSettings) ([]rijndael.Option, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	mode, err := rijndael.ParsePaddingMode(settings.PaddingMode)
	if err != nil {
		return nil, err
	}

	return []rijndael.Option{
		rijndael.WithPaddingMode(mode),
		rijndael.WithWorkers(settings.Workers),
		rijndael.WithParallelThreshold(settings.ParallelThreshold),
	}, nil
}

// GenerateKey generates a random AES key of 16, 24 or 32 bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if !cryptoDomain.IsValidAESKeySize(keySize) {
		return nil, &cryptoDomain.KeyLengthError{Length: keySize}
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info(fmt.Sprintf("Generated AES-%d key", keySize*8))
	return key, nil
}

// Encrypt pads data with PKCS#7 and encrypts it in ECB mode.
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	ciphertext, err := a.engine.Encrypt(data, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	a.logger.Debug(fmt.Sprintf("Encrypted %d bytes into %d blocks with AES-%d", len(data), len(ciphertext)/rijndael.BlockSize, len(key)*8))
	return ciphertext, nil
}

// Decrypt decrypts ECB ciphertext and removes the PKCS#7 padding.
func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	plainText, err := a.engine.Decrypt(ciphertext, key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.Debug(fmt.Sprintf("Decrypted %d blocks with AES-%d", len(ciphertext)/rijndael.BlockSize, len(key)*8))
	return plainText, nil
}

// EncryptText encrypts the UTF-8 bytes of message under the UTF-8 bytes of key
// and returns standard Base64.
func (a *aesProcessor) EncryptText(message, key string) (string, error) {
	ciphertext, err := a.Encrypt([]byte(message), []byte(key))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptText decodes standard Base64 ciphertext and decrypts it under key.
func (a *aesProcessor) DecryptText(ciphertextBase64, key string) (string, error) {
	if !cryptoDomain.IsValidAESKeySize(len(key)) {
		return "", &cryptoDomain.KeyLengthError{Length: len(key)}
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextBase64)
	if err != nil {
		return "", &cryptoDomain.EncodingError{Err: err}
	}

	plainText, err := a.Decrypt(ciphertext, []byte(key))
	if err != nil {
		return "", err
	}
	return string(plainText), nil
}

// PaddedBlocks pads the UTF-8 bytes of message and returns each block in hex.
func (a *aesProcessor) PaddedBlocks(message string) []string {
	blocks := rijndael.PaddedBlocks([]byte(message), rijndael.BlockSize)

	encoded := make([]string, len(blocks))
	for i, block := range blocks {
		encoded[i] = hex.EncodeToString(block)
	}
	return encoded
}
