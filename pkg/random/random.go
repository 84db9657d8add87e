// Package random provides random material for keys and IVs, plus a
// fast XORSHIFT128+ generator (period 2^128) for non-secret uses such
// as benchmark payloads.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
)

// Bytes returns n bytes from crypto/rand. Use this for keys and IVs.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// XORShift128Plus implements the XORSHIFT128+ algorithm.
type XORShift128Plus struct {
	state [2]uint64
}

// NewXORShift128Plus returns a generator seeded from crypto/rand.
func NewXORShift128Plus() (*XORShift128Plus, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	x := &XORShift128Plus{}
	x.state[0] = binary.LittleEndian.Uint64(seed[0:8])
	x.state[1] = binary.LittleEndian.Uint64(seed[8:16])
	if x.state[0] == 0 && x.state[1] == 0 {
		return nil, errors.New("random: invalid seed (all zero state)")
	}
	return x, nil
}

// Rand returns a 64-bit random number and updates the internal state.
func (x *XORShift128Plus) Rand() uint64 {
	s1 := x.state[0]
	s0 := x.state[1]
	result := s0 + s1

	x.state[0] = s0
	s1 ^= s1 << 23
	x.state[1] = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	return result
}

// Fill overwrites b with generator output. Not suitable for secrets.
func (x *XORShift128Plus) Fill(b []byte) {
	var chunk [8]byte
	for i := 0; i < len(b); i += 8 {
		binary.LittleEndian.PutUint64(chunk[:], x.Rand())
		copy(b[i:], chunk[:])
	}
}

var defaultGen *XORShift128Plus

func init() {
	g, err := NewXORShift128Plus()
	if err != nil {
		// Without a seed source the generator is useless.
		panic(err)
	}
	defaultGen = g
}

// Rand returns a 64-bit random number from the default generator.
func Rand() uint64 {
	return defaultGen.Rand()
}

// Fill overwrites b with output from the default generator.
func Fill(b []byte) {
	defaultGen.Fill(b)
}
