package rijndael

import (
	"crypto/cipher"
)

// Cipher is an AES block cipher bound to one expanded key.
type Cipher struct {
	schedule *KeySchedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a Cipher for it.
func NewCipher(key []byte) (*Cipher, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: ks}, nil
}

// BlockSize returns the AES block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	EncryptBlock(dst, src, c.schedule)
}

// Decrypt decrypts the first block in src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	DecryptBlock(dst, src, c.schedule)
}
