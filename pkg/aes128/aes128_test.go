package aes128

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSBoxInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		if invSBox[sbox[x]] != byte(x) {
			t.Fatalf("invSBox[sbox[%#02x]] = %#02x", x, invSBox[sbox[x]])
		}
		if sbox[invSBox[x]] != byte(x) {
			t.Fatalf("sbox[invSBox[%#02x]] = %#02x", x, sbox[invSBox[x]])
		}
	}
}

func TestSubBytesKnownState(t *testing.T) {
	state := mustHex(t, "19a09ae93df4c6f8e3e28d48be2b2a08")
	want := mustHex(t, "d4e0b81e27bfb44111985d52aef1e530")
	subBytes(state)
	require.Equal(t, want, state)

	invSubBytes(state)
	require.Equal(t, mustHex(t, "19a09ae93df4c6f8e3e28d48be2b2a08"), state)
}

func TestExpandKeyVector(t *testing.T) {
	// Key expansion example from the AES specification (appendix A.1).
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	schedule, err := ExpandKey(key)
	require.NoError(t, err)
	require.Len(t, schedule, ScheduleSize)

	require.Equal(t, key, schedule[:16], "round key 0 must be the original key")
	require.Equal(t, mustHex(t, "a0fafe1788542cb123a339392a6c7605"), schedule[16:32])
	require.Equal(t, mustHex(t, "d014f9a8c9ee2589e13f0cc8b6630ca6"), schedule[160:176])
}

func TestExpandKeyBadSize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 24, 32} {
		_, err := ExpandKey(make([]byte, n))
		require.Error(t, err)
		require.IsType(t, KeySizeError(0), err)
	}
}

func TestEncryptBlockVector(t *testing.T) {
	// FIPS-197 appendix C.1.
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	c, err := NewCipher(key)
	require.NoError(t, err)

	got := make([]byte, BlockSize)
	c.EncryptBlock(got, plaintext)
	require.Equal(t, want, got)

	back := make([]byte, BlockSize)
	c.DecryptBlock(back, got)
	require.Equal(t, plaintext, back)
}

func TestBlockRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	plaintext := make([]byte, BlockSize)
	ciphertext := make([]byte, BlockSize)
	decrypted := make([]byte, BlockSize)
	for i := 0; i < 200; i++ {
		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(plaintext); err != nil {
			t.Fatal(err)
		}
		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher failed: %v", err)
		}
		c.EncryptBlock(ciphertext, plaintext)
		c.DecryptBlock(decrypted, ciphertext)
		if !bytes.Equal(plaintext, decrypted) {
			t.Fatalf("round trip failed for key %x plaintext %x", key, plaintext)
		}
	}
}

func TestEncryptBlockInPlace(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	buf := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	c, err := NewCipher(key)
	require.NoError(t, err)
	c.EncryptBlock(buf, buf)
	require.Equal(t, want, buf)
}

func TestRoundOpInverses(t *testing.T) {
	state := make([]byte, BlockSize)
	for i := 0; i < 50; i++ {
		if _, err := rand.Read(state); err != nil {
			t.Fatal(err)
		}
		orig := append([]byte(nil), state...)

		shiftRows(state)
		invShiftRows(state)
		require.Equal(t, orig, state, "shiftRows inverse")

		mixColumns(state)
		invMixColumns(state)
		require.Equal(t, orig, state, "mixColumns inverse")
	}
}
