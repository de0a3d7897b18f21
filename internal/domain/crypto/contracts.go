package crypto

import "context"

// AESProcessor handles AES symmetric encryption operations in ECB mode with PKCS#7 padding.
// NOTE: ECB encrypts identical plaintext blocks to identical ciphertext blocks.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt pads and encrypts data with the provided symmetric key.
	// Returns the raw ciphertext, always a multiple of the block size.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt decrypts raw ciphertext with the provided symmetric key and strips the padding.
	Decrypt(ciphertext, key []byte) ([]byte, error)

	// EncryptText encrypts a text message with a text key and returns Base64 ciphertext.
	EncryptText(message, key string) (string, error)

	// DecryptText decodes Base64 ciphertext and decrypts it with a text key.
	DecryptText(ciphertextBase64, key string) (string, error)

	// PaddedBlocks returns the PKCS#7 padded message as hex-encoded 16-byte blocks,
	// the exact input the block cipher sees.
	PaddedBlocks(message string) []string
}

// AESService exposes text-level AES operations to transport layers.
type AESService interface {
	// Encrypt returns the Base64 ciphertext of message under key.
	Encrypt(ctx context.Context, message, key string) (string, error)
	// Decrypt returns the plaintext of a Base64 ciphertext under key.
	Decrypt(ctx context.Context, ciphertext, key string) (string, error)
	// GenerateKey returns a random printable key of keySize characters.
	GenerateKey(ctx context.Context, keySize int) (string, error)
	// PaddedBlocks returns the padded message split into hex-encoded blocks.
	PaddedBlocks(ctx context.Context, message string) ([]string, error)
}
