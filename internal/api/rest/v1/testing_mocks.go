//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAESService is a mock implementation of AESService
type MockAESService struct {
	mock.Mock
}

func (m *MockAESService) Encrypt(ctx context.Context, message, key string) (string, error) {
	args := m.Called(ctx, message, key)
	return args.String(0), args.Error(1)
}

func (m *MockAESService) Decrypt(ctx context.Context, ciphertext, key string) (string, error) {
	args := m.Called(ctx, ciphertext, key)
	return args.String(0), args.Error(1)
}

func (m *MockAESService) GenerateKey(ctx context.Context, keySize int) (string, error) {
	args := m.Called(ctx, keySize)
	return args.String(0), args.Error(1)
}

func (m *MockAESService) PaddedBlocks(ctx context.Context, message string) ([]string, error) {
	args := m.Called(ctx, message)
	blocks, _ := args.Get(0).([]string)
	return blocks, args.Error(1)
}
