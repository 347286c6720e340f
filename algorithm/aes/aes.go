package aes

import (
	"bytes"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	rounds = 10
)

// AES implements the AES-128 block cipher. The state and the round keys are
// kept flat in column-major order, so a block maps onto the state by a plain
// copy and AddRoundKey is a byte-wise XOR.
type AES struct {
	key       []byte
	roundKeys [][]byte
}

func NewAES(key []byte) (*AES, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size %d", len(key))
	}
	c := &AES{key: append([]byte(nil), key...)}
	c.roundKeys = expandKey(c.key)
	return c, nil
}

func (c *AES) SetKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("invalid key size %d", len(key))
	}
	if !bytes.Equal(c.key, key) {
		c.key = append([]byte(nil), key...)
		c.roundKeys = expandKey(c.key)
	}
	return nil
}

func (c *AES) BlockSize() int {
	return BlockSize
}

// expandKey derives the 11 round keys of the Rijndael key schedule. Every
// fourth word is rotated, substituted through the S-box and XORed with the
// round constant before being folded into the previous generation.
func expandKey(key []byte) [][]byte {
	var w [44][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < 44; i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = [4]byte{temp[1], temp[2], temp[3], temp[0]}
			for j := 0; j < 4; j++ {
				temp[j] = sBox[temp[j]]
			}
			temp[0] ^= rcon[i/4]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ temp[j]
		}
	}

	roundKeys := make([][]byte, rounds+1)
	for r := 0; r <= rounds; r++ {
		rk := make([]byte, BlockSize)
		for col := 0; col < 4; col++ {
			copy(rk[4*col:], w[4*r+col][:])
		}
		roundKeys[r] = rk
	}
	return roundKeys
}

func (c *AES) Encrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("invalid block size %d", len(block))
	}

	state := make([]byte, BlockSize)
	copy(state, block)

	addRoundKey(state, c.roundKeys[0])
	for round := 1; round < rounds; round++ {
		subBytes(state)
		shiftRows(state)
		mixColumns(state)
		addRoundKey(state, c.roundKeys[round])
	}
	subBytes(state)
	shiftRows(state)
	addRoundKey(state, c.roundKeys[rounds])

	return state, nil
}

func (c *AES) Decrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("invalid block size %d", len(block))
	}

	state := make([]byte, BlockSize)
	copy(state, block)

	addRoundKey(state, c.roundKeys[rounds])
	for round := rounds - 1; round > 0; round-- {
		invShiftRows(state)
		invSubBytes(state)
		addRoundKey(state, c.roundKeys[round])
		invMixColumns(state)
	}
	invShiftRows(state)
	invSubBytes(state)
	addRoundKey(state, c.roundKeys[0])

	return state, nil
}

func subBytes(state []byte) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

func invSubBytes(state []byte) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows cyclically shifts row r of the column-major state left by r
// positions. Row r occupies indices r, r+4, r+8, r+12.
func shiftRows(state []byte) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for col := 0; col < 4; col++ {
			row[col] = state[r+4*col]
		}
		for col := 0; col < 4; col++ {
			state[r+4*col] = row[(col+r)%4]
		}
	}
}

func invShiftRows(state []byte) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for col := 0; col < 4; col++ {
			row[col] = state[r+4*col]
		}
		for col := 0; col < 4; col++ {
			state[r+4*col] = row[(col+4-r)%4]
		}
	}
}

// mixColumns multiplies each column by the {02,03,01,01} circulant matrix
// over GF(2^8).
func mixColumns(state []byte) {
	for col := 0; col < 4; col++ {
		a0 := state[4*col]
		a1 := state[4*col+1]
		a2 := state[4*col+2]
		a3 := state[4*col+3]

		state[4*col] = gfMul(0x02, a0) ^ gfMul(0x03, a1) ^ a2 ^ a3
		state[4*col+1] = a0 ^ gfMul(0x02, a1) ^ gfMul(0x03, a2) ^ a3
		state[4*col+2] = a0 ^ a1 ^ gfMul(0x02, a2) ^ gfMul(0x03, a3)
		state[4*col+3] = gfMul(0x03, a0) ^ a1 ^ a2 ^ gfMul(0x02, a3)
	}
}

// invMixColumns multiplies each column by the {0e,0b,0d,09} circulant matrix.
func invMixColumns(state []byte) {
	for col := 0; col < 4; col++ {
		a0 := state[4*col]
		a1 := state[4*col+1]
		a2 := state[4*col+2]
		a3 := state[4*col+3]

		state[4*col] = gfMul(0x0e, a0) ^ gfMul(0x0b, a1) ^ gfMul(0x0d, a2) ^ gfMul(0x09, a3)
		state[4*col+1] = gfMul(0x09, a0) ^ gfMul(0x0e, a1) ^ gfMul(0x0b, a2) ^ gfMul(0x0d, a3)
		state[4*col+2] = gfMul(0x0d, a0) ^ gfMul(0x09, a1) ^ gfMul(0x0e, a2) ^ gfMul(0x0b, a3)
		state[4*col+3] = gfMul(0x0b, a0) ^ gfMul(0x0d, a1) ^ gfMul(0x09, a2) ^ gfMul(0x0e, a3)
	}
}

func addRoundKey(state, roundKey []byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}
