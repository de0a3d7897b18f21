//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request EncryptRequest
		wantErr bool
	}{
		{"128-bit key", EncryptRequest{Message: "hi", Key: "0123456789abcdef"}, false},
		{"192-bit key", EncryptRequest{Message: "hi", Key: "0123456789abcdef01234567"}, false},
		{"256-bit key", EncryptRequest{Message: "hi", Key: "0123456789abcdef0123456789abcdef"}, false},
		{"empty message is allowed", EncryptRequest{Key: "0123456789abcdef"}, false},
		{"missing key", EncryptRequest{Message: "hi"}, true},
		{"15-byte key", EncryptRequest{Message: "hi", Key: "0123456789abcde"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecryptRequest{Ciphertext: "gejsGVtM0kS3n995jqLs8w==", Key: "mysecretkey12345"}).Validate())
	assert.Error(t, (&DecryptRequest{Key: "mysecretkey12345"}).Validate())
	assert.Error(t, (&DecryptRequest{Ciphertext: "gejsGVtM0kS3n995jqLs8w==", Key: "tooshort"}).Validate())
}

func TestGenerateKeyRequest_Validate(t *testing.T) {
	for _, size := range []uint32{16, 24, 32} {
		assert.NoError(t, (&GenerateKeyRequest{KeySize: size}).Validate())
	}
	for _, size := range []uint32{0, 8, 128, 256} {
		err := (&GenerateKeyRequest{KeySize: size}).Validate()
		assert.Error(t, err, "size %d", size)
	}
}

func TestRequests_KeySizeSelection(t *testing.T) {
	tests := []struct {
		name    string
		request interface{ Validate() error }
		wantErr bool
	}{
		{"encrypt matching 128", &EncryptRequest{Key: "0123456789abcdef", KeySize: 16}, false},
		{"encrypt matching 256", &EncryptRequest{Key: "0123456789abcdef0123456789abcdef", KeySize: 32}, false},
		{"encrypt 128 key for 192", &EncryptRequest{Key: "0123456789abcdef", KeySize: 24}, true},
		{"encrypt unsupported size", &EncryptRequest{Key: "0123456789abcdef", KeySize: 20}, true},
		{"decrypt matching 192", &DecryptRequest{Ciphertext: "x", Key: "0123456789abcdef01234567", KeySize: 24}, false},
		{"decrypt 256 key for 128", &DecryptRequest{Ciphertext: "x", Key: "0123456789abcdef0123456789abcdef", KeySize: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
