//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyHolder struct {
	Key string `validate:"aeskey"`
}

type keySizeHolder struct {
	KeySize uint32 `validate:"aeskeysize"`
}

func TestAESKeyValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"16 bytes", strings.Repeat("k", 16), true},
		{"24 bytes", strings.Repeat("k", 24), true},
		{"32 bytes", strings.Repeat("k", 32), true},
		{"15 bytes", strings.Repeat("k", 15), false},
		{"33 bytes", strings.Repeat("k", 33), false},
		{"empty", "", false},
		// 8 characters of two bytes each
		{"multi-byte 16 bytes", strings.Repeat("ü", 8), true},
		{"multi-byte 16 characters", strings.Repeat("ü", 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(keyHolder{Key: tt.key})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAESKeySizeValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	for _, size := range []uint32{16, 24, 32} {
		assert.NoError(t, validate.Struct(keySizeHolder{KeySize: size}))
	}
	for _, size := range []uint32{0, 8, 128, 256} {
		assert.Error(t, validate.Struct(keySizeHolder{KeySize: size}))
	}
}
