// Package aes128 implements the AES-128 block cipher from scratch,
// together with CBC chaining over block-aligned buffers.
// The state is a 16-byte block treated as a 4x4 matrix in column-major
// order: byte 4c+r holds row r of column c.
//
// This is a reference implementation. It makes no constant-time
// guarantees and provides no authentication; it is not a substitute
// for crypto/aes in production use.
package aes128

import (
	"fmt"

	"blockcrypt/pkg/gf"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// ScheduleSize is the expanded key schedule size in bytes:
	// 11 round keys of one block each.
	ScheduleSize = 176

	numRounds = 10
)

// KeySizeError reports a key of invalid length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("aes128: invalid key size %d, must be %d bytes", int(k), KeySize)
}

// Cipher is an AES-128 cipher for a fixed key. The expanded key
// schedule is computed once and immutable afterwards, so a Cipher may
// be shared across goroutines.
type Cipher struct {
	schedule [ScheduleSize]byte
}

// NewCipher creates an AES-128 cipher with the given 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{}
	expandKey(c.schedule[:], key)
	return c, nil
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// ExpandKey expands a 16-byte key into the 176-byte round key
// schedule. Round key r occupies bytes [16r, 16r+16).
func ExpandKey(key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	schedule := make([]byte, ScheduleSize)
	expandKey(schedule, key)
	return schedule, nil
}

// expandKey fills schedule word by word. Words 0..3 copy the key; each
// later word is the word one round back XORed with the previous word,
// which on round boundaries is first rotated, substituted, and folded
// with the round constant.
func expandKey(schedule, key []byte) {
	copy(schedule, key[:KeySize])
	for i := KeySize; i < ScheduleSize; i += 4 {
		var w [4]byte
		copy(w[:], schedule[i-4:i])
		if i%KeySize == 0 {
			// RotWord then SubWord then Rcon.
			w[0], w[1], w[2], w[3] = sbox[w[1]], sbox[w[2]], sbox[w[3]], sbox[w[0]]
			w[0] ^= rcon[i/KeySize]
		}
		for j := 0; j < 4; j++ {
			schedule[i+j] = schedule[i-KeySize+j] ^ w[j]
		}
	}
}

// roundKey returns the 16-byte slice of the schedule for round r.
func (c *Cipher) roundKey(r int) []byte {
	return c.schedule[r*BlockSize : (r+1)*BlockSize]
}

// EncryptBlock encrypts a single 16-byte block from src into dst.
// dst and src must each be at least one block long and may overlap.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes128: input not full block")
	}
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])

	addRoundKey(state[:], c.roundKey(0))
	for round := 1; round < numRounds; round++ {
		subBytes(state[:])
		shiftRows(state[:])
		mixColumns(state[:])
		addRoundKey(state[:], c.roundKey(round))
	}
	// Final round omits MixColumns.
	subBytes(state[:])
	shiftRows(state[:])
	addRoundKey(state[:], c.roundKey(numRounds))

	copy(dst, state[:])
}

// DecryptBlock decrypts a single 16-byte block from src into dst,
// applying the inverse round operations in reverse order.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes128: input not full block")
	}
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])

	addRoundKey(state[:], c.roundKey(numRounds))
	for round := numRounds - 1; round > 0; round-- {
		invShiftRows(state[:])
		invSubBytes(state[:])
		addRoundKey(state[:], c.roundKey(round))
		invMixColumns(state[:])
	}
	invShiftRows(state[:])
	invSubBytes(state[:])
	addRoundKey(state[:], c.roundKey(0))

	copy(dst, state[:])
}

// addRoundKey XORs key into state byte for byte. key must be at least
// as long as state; CBC chaining reuses it as its block XOR.
func addRoundKey(state, key []byte) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func subBytes(state []byte) {
	for i, b := range state {
		state[i] = sbox[b]
	}
}

func invSubBytes(state []byte) {
	for i, b := range state {
		state[i] = invSBox[b]
	}
}

// shiftRows rotates row r of the state left by r positions. Row r
// lives at byte indices r, r+4, r+8, r+12; row 0 is untouched.
func shiftRows(state []byte) {
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(state []byte) {
	state[1], state[5], state[9], state[13] = state[13], state[1], state[5], state[9]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[7], state[11], state[15], state[3]
}

// mixColumns multiplies each column by the fixed matrix with rows
// {02,03,01,01} cycled, over GF(2^8).
func mixColumns(state []byte) {
	for c := 0; c < BlockSize; c += 4 {
		s0, s1, s2, s3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = gf.Mul(0x02, s0) ^ gf.Mul(0x03, s1) ^ s2 ^ s3
		state[c+1] = s0 ^ gf.Mul(0x02, s1) ^ gf.Mul(0x03, s2) ^ s3
		state[c+2] = s0 ^ s1 ^ gf.Mul(0x02, s2) ^ gf.Mul(0x03, s3)
		state[c+3] = gf.Mul(0x03, s0) ^ s1 ^ s2 ^ gf.Mul(0x02, s3)
	}
}

// invMixColumns multiplies each column by the inverse matrix with rows
// {0e,0b,0d,09} cycled.
func invMixColumns(state []byte) {
	for c := 0; c < BlockSize; c += 4 {
		s0, s1, s2, s3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = gf.Mul(0x0e, s0) ^ gf.Mul(0x0b, s1) ^ gf.Mul(0x0d, s2) ^ gf.Mul(0x09, s3)
		state[c+1] = gf.Mul(0x09, s0) ^ gf.Mul(0x0e, s1) ^ gf.Mul(0x0b, s2) ^ gf.Mul(0x0d, s3)
		state[c+2] = gf.Mul(0x0d, s0) ^ gf.Mul(0x09, s1) ^ gf.Mul(0x0e, s2) ^ gf.Mul(0x0b, s3)
		state[c+3] = gf.Mul(0x0b, s0) ^ gf.Mul(0x0d, s1) ^ gf.Mul(0x09, s2) ^ gf.Mul(0x0e, s3)
	}
}
