package rijndael

import "github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

// state is one AES block in column-major order: the byte at row r, column c
// lives at index r+4*c, so the input bytes map onto the state unchanged.
type state [BlockSize]byte

// BlockSize is the AES block size in bytes.
const BlockSize = crypto.AESBlockSize

// EncryptBlock encrypts the first block of src into dst using the expanded key ks.
// dst and src may overlap entirely.
func EncryptBlock(dst, src []byte, ks *KeySchedule) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(ks.words, 0)
	for round := 1; round < ks.rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(ks.words, round)
	}
	// The final round has no MixColumns.
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(ks.words, ks.rounds)

	copy(dst[:BlockSize], s[:])
}

// DecryptBlock decrypts the first block of src into dst using the expanded key ks.
// dst and src may overlap entirely.
func DecryptBlock(dst, src []byte, ks *KeySchedule) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(ks.words, ks.rounds)
	for round := ks.rounds - 1; round >= 1; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(ks.words, round)
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(ks.words, 0)

	copy(dst[:BlockSize], s[:])
}

func (s *state) addRoundKey(words []Word, round int) {
	for c := 0; c < 4; c++ {
		w := words[round*nb+c]
		for r := 0; r < 4; r++ {
			s[r+4*c] ^= w[r]
		}
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[r+4*((c+r)%4)]
		}
		for c := 0; c < 4; c++ {
			s[r+4*c] = row[c]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s[r+4*c]
		}
		for c := 0; c < 4; c++ {
			s[r+4*c] = row[c]
		}
	}
}

func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = Multiply(a0, 2) ^ Multiply(a1, 3) ^ a2 ^ a3
		s[4*c+1] = a0 ^ Multiply(a1, 2) ^ Multiply(a2, 3) ^ a3
		s[4*c+2] = a0 ^ a1 ^ Multiply(a2, 2) ^ Multiply(a3, 3)
		s[4*c+3] = Multiply(a0, 3) ^ a1 ^ a2 ^ Multiply(a3, 2)
	}
}

func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = Multiply(a0, 14) ^ Multiply(a1, 11) ^ Multiply(a2, 13) ^ Multiply(a3, 9)
		s[4*c+1] = Multiply(a0, 9) ^ Multiply(a1, 14) ^ Multiply(a2, 11) ^ Multiply(a3, 13)
		s[4*c+2] = Multiply(a0, 13) ^ Multiply(a1, 9) ^ Multiply(a2, 14) ^ Multiply(a3, 11)
		s[4*c+3] = Multiply(a0, 11) ^ Multiply(a1, 13) ^ Multiply(a2, 9) ^ Multiply(a3, 14)
	}
}
