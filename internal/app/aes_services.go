package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// keyAlphabet is the character set used for generated text keys; every character is one byte.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// aesService implements the AESService interface on top of an AESProcessor
type aesService struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
}

// NewAESService creates a new aesService instance
func NewAESService(aesProcessor crypto.AESProcessor, logger logger.Logger) (crypto.AESService, error) {
	if aesProcessor == nil {
		return nil, fmt.Errorf("AES processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesService{
		aesProcessor: aesProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts message under key and returns Base64 ciphertext.
func (s *aesService) Encrypt(ctx context.Context, message, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ciphertext, err := s.aesProcessor.EncryptText(message, key)
	if err != nil {
		s.logger.Warn("AES encryption rejected: ", err)
		return "", err
	}

	s.logger.Info(fmt.Sprintf("Encrypted message of %d bytes with AES-%d", len(message), len(key)*8))
	return ciphertext, nil
}

// Decrypt decrypts Base64 ciphertext under key.
func (s *aesService) Decrypt(ctx context.Context, ciphertext, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	message, err := s.aesProcessor.DecryptText(ciphertext, key)
	if err != nil {
		s.logger.Warn("AES decryption rejected: ", err)
		return "", err
	}

	s.logger.Info(fmt.Sprintf("Decrypted message of %d bytes with AES-%d", len(message), len(key)*8))
	return message, nil
}

// GenerateKey returns a random alphanumeric key of keySize characters, usable as a text key.
func (s *aesService) GenerateKey(ctx context.Context, keySize int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !crypto.IsValidAESKeySize(keySize) {
		return "", &crypto.KeyLengthError{Length: keySize}
	}

	key := make([]byte, keySize)
	limit := big.NewInt(int64(len(keyAlphabet)))
	for i := range key {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate AES key: %w", err)
		}
		key[i] = keyAlphabet[n.Int64()]
	}

	s.logger.Info(fmt.Sprintf("Generated AES-%d text key", keySize*8))
	return string(key), nil
}

// PaddedBlocks shows how message is laid out into padded cipher blocks.
func (s *aesService) PaddedBlocks(ctx context.Context, message string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := s.aesProcessor.PaddedBlocks(message)
	s.logger.Debug(fmt.Sprintf("Split message of %d bytes into %d padded blocks", len(message), len(blocks)))
	return blocks, nil
}
