//go:build unit
// +build unit

package cryptography

import (
	"encoding/base64"
	"strings"
	"testing"

	cryptoDomain "github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography/rijndael"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAESProcessor(t *testing.T, opts ...rijndael.Option) cryptoDomain.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger, opts...)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, err := processor.GenerateKey(cryptoDomain.AESKeySize128)
		assert.NoError(t, err)

		plainText := []byte("This is a test message.")

		ciphertext, err := processor.Encrypt(plainText, key)
		assert.NoError(t, err)
		assert.Len(t, ciphertext, 32)

		decryptedText, err := processor.Decrypt(ciphertext, key)
		assert.NoError(t, err)
		assert.Equal(t, plainText, decryptedText)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		key := []byte("shortkey")
		plainText := []byte("This is a test.")

		_, err := processor.Encrypt(plainText, key)
		var keyErr *cryptoDomain.KeyLengthError
		assert.ErrorAs(t, err, &keyErr)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		for _, size := range []int{cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256} {
			key, err := processor.GenerateKey(size)
			assert.NoError(t, err)
			assert.Len(t, key, size)
		}

		_, err := processor.GenerateKey(20)
		var keyErr *cryptoDomain.KeyLengthError
		assert.ErrorAs(t, err, &keyErr)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(cryptoDomain.AESKeySize128)
		assert.NoError(t, err)

		plainText := []byte("Test decryption with wrong key.")
		ciphertext, err := processor.Encrypt(plainText, key)
		assert.NoError(t, err)

		wrongKey, err := processor.GenerateKey(cryptoDomain.AESKeySize128)
		assert.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, wrongKey)

		if err == nil {
			assert.NotEqual(t, plainText, decrypted, "Decryption with wrong key should not return original message")
		} else {
			assert.True(t, cryptoDomain.IsValidationError(err))
		}
	})

	t.Run("DecryptShortCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(cryptoDomain.AESKeySize128)
		assert.NoError(t, err)

		_, err = processor.Decrypt([]byte("short"), key)
		var encErr *cryptoDomain.EncodingError
		assert.ErrorAs(t, err, &encErr)
	})
}

func TestAESProcessor_Text(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("KnownCiphertext", func(t *testing.T) {
		ciphertext, err := processor.EncryptText("Hello, World!", "mysecretkey12345")
		require.NoError(t, err)
		assert.Equal(t, "kwhVHyUe08laf2MC+K3rcw==", ciphertext)

		message, err := processor.DecryptText(ciphertext, "mysecretkey12345")
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", message)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		ciphertext, err := processor.EncryptText("", "mysecretkey12345")
		require.NoError(t, err)
		assert.Equal(t, "gejsGVtM0kS3n995jqLs8w==", ciphertext)

		message, err := processor.DecryptText(ciphertext, "mysecretkey12345")
		require.NoError(t, err)
		assert.Empty(t, message)
	})

	t.Run("RoundTripAllKeySizes", func(t *testing.T) {
		message := "Ünïcödé text spanning more than one block ✓"
		for _, size := range []int{16, 24, 32} {
			key := strings.Repeat("k", size)
			ciphertext, err := processor.EncryptText(message, key)
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(ciphertext)
			require.NoError(t, err)
			assert.Zero(t, len(raw)%rijndael.BlockSize)

			decrypted, err := processor.DecryptText(ciphertext, key)
			require.NoError(t, err)
			assert.Equal(t, message, decrypted)
		}
	})

	t.Run("InvalidKeyLengths", func(t *testing.T) {
		for _, size := range []int{15, 17, 23, 25, 31, 33} {
			key := strings.Repeat("k", size)
			var keyErr *cryptoDomain.KeyLengthError

			_, err := processor.EncryptText("message", key)
			assert.ErrorAs(t, err, &keyErr)

			_, err = processor.DecryptText("kwhVHyUe08laf2MC+K3rcw==", key)
			assert.ErrorAs(t, err, &keyErr)
		}
	})

	t.Run("MalformedBase64", func(t *testing.T) {
		_, err := processor.DecryptText("not*base64!", "mysecretkey12345")
		var encErr *cryptoDomain.EncodingError
		assert.ErrorAs(t, err, &encErr)
	})

	t.Run("CorruptedBase64NeverFailsUnexpectedly", func(t *testing.T) {
		ciphertext, err := processor.EncryptText("a message long enough to span several blocks", "mysecretkey12345")
		require.NoError(t, err)

		alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
		for i := 0; i < len(ciphertext); i++ {
			corrupted := []byte(ciphertext)
			corrupted[i] = alphabet[(strings.IndexByte(alphabet, corrupted[i])+1)%len(alphabet)]

			assert.NotPanics(t, func() {
				_, err := processor.DecryptText(string(corrupted), "mysecretkey12345")
				if err != nil {
					assert.True(t, cryptoDomain.IsValidationError(err), "unexpected error: %v", err)
				}
			})
		}
	})
}

func TestOptionsFromSettings(t *testing.T) {
	opts, err := OptionsFromSettings(&config.CipherSettings{
		PaddingMode:       "lenient",
		Workers:           2,
		ParallelThreshold: 4,
	})
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	assert.Equal(t, rijndael.PaddingLenient, rijndael.NewEngine(opts...).PaddingMode())

	_, err = OptionsFromSettings(&config.CipherSettings{PaddingMode: "none", ParallelThreshold: 1})
	assert.Error(t, err)
}

func TestNewAESProcessor_NilLogger(t *testing.T) {
	_, err := NewAESProcessor(nil)
	assert.Error(t, err)
}

func TestAESProcessor_PaddedBlocks(t *testing.T) {
	processor := setupAESProcessor(t)

	assert.Equal(t, []string{"48656c6c6f2c20576f726c6421030303"}, processor.PaddedBlocks("Hello, World!"))
	assert.Equal(t, []string{strings.Repeat("10", 16)}, processor.PaddedBlocks(""))

	blocks := processor.PaddedBlocks("exactly 16 bytes")
	require.Len(t, blocks, 2)
	assert.Equal(t, "65786163746c79203136206279746573", blocks[0])
	assert.Equal(t, strings.Repeat("10", 16), blocks[1])
}
