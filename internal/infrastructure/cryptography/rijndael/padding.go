package rijndael

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
)

// PaddingMode selects how PKCS#7 padding is checked when it is removed.
type PaddingMode int

const (
	// PaddingStrict requires 1 <= n <= blockSize and all n trailing bytes to equal n.
	PaddingStrict PaddingMode = iota
	// PaddingLenient trusts the final byte as n and only checks that n bytes can be removed.
	PaddingLenient
)

// String returns the configuration name of the mode.
func (m PaddingMode) String() string {
	switch m {
	case PaddingStrict:
		return crypto.PaddingModeStrict
	case PaddingLenient:
		return crypto.PaddingModeLenient
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(m))
	}
}

// ParsePaddingMode maps a configuration name onto a PaddingMode.
func ParsePaddingMode(name string) (PaddingMode, error) {
	switch name {
	case crypto.PaddingModeStrict, "":
		return PaddingStrict, nil
	case crypto.PaddingModeLenient:
		return PaddingLenient, nil
	default:
		return PaddingStrict, fmt.Errorf("unsupported padding mode: %s", name)
	}
}

// Pad returns a copy of data extended with PKCS#7 padding to a multiple of blockSize.
// A full block of padding is appended when len(data) is already a multiple of blockSize.
func Pad(data []byte, blockSize int) []byte {
	padLength := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLength)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLength)
	}
	return padded
}

// Unpad strips PKCS#7 padding from data. The returned slice aliases data.
func Unpad(data []byte, blockSize int, mode PaddingMode) ([]byte, error) {
	if len(data) == 0 {
		return nil, &crypto.PaddingError{Reason: "no data to unpad"}
	}

	padLength := int(data[len(data)-1])
	if padLength == 0 {
		return nil, &crypto.PaddingError{Reason: "padding length is zero"}
	}
	if padLength > len(data) {
		return nil, &crypto.PaddingError{
			Reason: fmt.Sprintf("padding length %d exceeds data length %d", padLength, len(data)),
		}
	}

	if mode == PaddingStrict {
		if padLength > blockSize {
			return nil, &crypto.PaddingError{
				Reason: fmt.Sprintf("padding length %d exceeds block size %d", padLength, blockSize),
			}
		}
		for _, b := range data[len(data)-padLength:] {
			if int(b) != padLength {
				return nil, &crypto.PaddingError{Reason: "inconsistent padding bytes"}
			}
		}
	}

	return data[:len(data)-padLength], nil
}

// PaddedBlocks pads data with PKCS#7 and splits the result into blocks of blockSize.
// The blocks share one freshly allocated buffer.
func PaddedBlocks(data []byte, blockSize int) [][]byte {
	padded := Pad(data, blockSize)
	blocks := make([][]byte, 0, len(padded)/blockSize)
	for off := 0; off < len(padded); off += blockSize {
		blocks = append(blocks, padded[off:off+blockSize:off+blockSize])
	}
	return blocks
}
