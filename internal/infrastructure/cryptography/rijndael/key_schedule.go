package rijndael

import (
	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
)

// nb is the number of 32-bit columns in the AES state.
const nb = 4

// Word is one 4-byte column of the expanded key.
type Word [4]byte

// KeySchedule holds the expanded round keys for a single AES key.
// It is never modified after ExpandKey returns and may be shared between goroutines.
type KeySchedule struct {
	words  []Word
	rounds int
}

// ExpandKey expands a 16, 24 or 32-byte key into nb*(Nr+1) round key words.
func ExpandKey(key []byte) (*KeySchedule, error) {
	if !crypto.IsValidAESKeySize(len(key)) {
		return nil, &crypto.KeyLengthError{Length: len(key)}
	}

	nk := len(key) / 4
	nr := nk + 6
	words := make([]Word, nb*(nr+1))

	for i := 0; i < nk; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < len(words); i++ {
		temp := words[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		for j := range temp {
			words[i][j] = words[i-nk][j] ^ temp[j]
		}
	}

	return &KeySchedule{words: words, rounds: nr}, nil
}

// Rounds returns Nr, the number of cipher rounds for this key.
func (ks *KeySchedule) Rounds() int {
	return ks.rounds
}

// Words returns a copy of the expanded key words.
func (ks *KeySchedule) Words() []Word {
	out := make([]Word, len(ks.words))
	copy(out, ks.words)
	return out
}

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
