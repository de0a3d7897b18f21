package crypto

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// AESBlockSize is the AES block size in bytes
const AESBlockSize = 16

// PaddingModeStrict validates every PKCS#7 padding byte on decryption
const PaddingModeStrict = "strict"

// PaddingModeLenient trusts the final byte as the padding length on decryption
const PaddingModeLenient = "lenient"

// IsValidAESKeySize reports whether size is a legal AES key length in bytes.
func IsValidAESKeySize(size int) bool {
	return size == AESKeySize128 || size == AESKeySize192 || size == AESKeySize256
}

// CheckKeySize verifies that key is exactly size bytes. A size of zero accepts any legal key length.
func CheckKeySize(key string, size int) error {
	if size == 0 {
		if !IsValidAESKeySize(len(key)) {
			return &KeyLengthError{Length: len(key)}
		}
		return nil
	}
	if !IsValidAESKeySize(size) {
		return &KeyLengthError{Length: size}
	}
	if len(key) != size {
		return &KeySizeMismatchError{Expected: size, Actual: len(key)}
	}
	return nil
}
