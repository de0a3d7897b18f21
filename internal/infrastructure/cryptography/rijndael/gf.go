package rijndael

// polynomial is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1.
const polynomial = 0x11b

// Multiply returns the product of a and b in GF(2^8) reduced by the AES polynomial.
func Multiply(a, b byte) byte {
	var result byte
	acc := uint16(a)
	for b != 0 {
		if b&1 == 1 {
			result ^= byte(acc)
		}
		acc <<= 1
		if acc&0x100 != 0 {
			acc ^= polynomial
		}
		b >>= 1
	}
	return result
}
