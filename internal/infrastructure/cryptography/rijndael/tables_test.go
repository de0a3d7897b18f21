//go:build unit
// +build unit

package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceSbox derives the S-box from its definition: the multiplicative inverse
// in GF(2^8) followed by the affine transformation with constant 0x63.
func referenceSbox() [256]byte {
	var table [256]byte
	for x := 0; x < 256; x++ {
		var inv byte
		if x != 0 {
			for y := 1; y < 256; y++ {
				if Multiply(byte(x), byte(y)) == 1 {
					inv = byte(y)
					break
				}
			}
		}
		var out byte
		for i := 0; i < 8; i++ {
			bit := (inv >> i) ^ (inv >> ((i + 4) % 8)) ^ (inv >> ((i + 5) % 8)) ^
				(inv >> ((i + 6) % 8)) ^ (inv >> ((i + 7) % 8)) ^ (0x63 >> i)
			out |= (bit & 1) << i
		}
		table[x] = out
	}
	return table
}

func TestSbox_MatchesDefinition(t *testing.T) {
	expected := referenceSbox()
	for i := 0; i < 256; i++ {
		assert.Equal(t, expected[i], sbox[i], "sbox[%#02x]", i)
	}
}

func TestInvSbox_InvertsSbox(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), invSbox[sbox[i]], "invSbox[sbox[%#02x]]", i)
		assert.Equal(t, byte(i), sbox[invSbox[i]], "sbox[invSbox[%#02x]]", i)
	}
}

func TestSbox_PublishedEntries(t *testing.T) {
	assert.Equal(t, byte(0x63), sbox[0x00])
	assert.Equal(t, byte(0xed), sbox[0x53])
	assert.Equal(t, byte(0x16), sbox[0xff])
	assert.Equal(t, byte(0x52), invSbox[0x00])
	assert.Equal(t, byte(0x7d), invSbox[0xff])
}

func TestRcon(t *testing.T) {
	expected := [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	assert.Equal(t, expected, rcon)

	// Each constant is the previous one multiplied by x.
	for i := 1; i < len(rcon); i++ {
		assert.Equal(t, rcon[i], Multiply(rcon[i-1], 2))
	}
}
