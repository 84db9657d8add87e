package transform

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"blockcrypt/pkg/aes128"
)

func TestCBCTransformRoundTrip(t *testing.T) {
	tr, err := NewCBCTransform("correct horse battery staple")
	require.NoError(t, err)

	for _, n := range []int{0, 1, 15, 16, 17, 1000} {
		plaintext := make([]byte, n)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		ciphertext, err := tr.Apply(plaintext)
		require.NoError(t, err)
		// IV block plus at least one padded block.
		require.GreaterOrEqual(t, len(ciphertext), 2*aes128.BlockSize)

		out, err := tr.Reverse(ciphertext)
		require.NoError(t, err)
		require.True(t, bytes.Equal(plaintext, out), "round trip failed for %d bytes", n)
	}
}

func TestCBCTransformFreshIV(t *testing.T) {
	tr, err := NewCBCTransform("passphrase")
	require.NoError(t, err)

	plaintext := []byte("same message twice")
	first, err := tr.Apply(plaintext)
	require.NoError(t, err)
	second, err := tr.Apply(plaintext)
	require.NoError(t, err)
	require.NotEqual(t, first, second, "fresh IV must randomize ciphertext")
}

func TestCBCTransformRejectsBadInput(t *testing.T) {
	_, err := NewCBCTransform("")
	require.Error(t, err)

	_, err = NewCBCTransformWithKey(make([]byte, 8))
	require.Error(t, err)

	tr, err := NewCBCTransform("passphrase")
	require.NoError(t, err)

	_, err = tr.Reverse(make([]byte, 8))
	require.Error(t, err, "input shorter than an IV")

	// A wrong key either fails at unpadding or yields garbage; random
	// garbage can carry valid-looking padding, so only the mismatch is
	// guaranteed.
	plaintext := []byte("some plaintext")
	ciphertext, err := tr.Apply(plaintext)
	require.NoError(t, err)
	wrong, err := NewCBCTransform("other passphrase")
	require.NoError(t, err)
	out, err := wrong.Reverse(ciphertext)
	if err == nil {
		require.NotEqual(t, plaintext, out)
	}
}

func TestZstdTransformRoundTrip(t *testing.T) {
	tr, err := NewZstdTransform(zstd.SpeedDefault)
	require.NoError(t, err)

	data := []byte(strings.Repeat("compressible payload ", 200))
	compressed, err := tr.Apply(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	out, err := tr.Reverse(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestPipelineCompressThenEncrypt(t *testing.T) {
	zst, err := NewZstdTransform(zstd.SpeedFastest)
	require.NoError(t, err)
	cbc, err := NewCBCTransform("pipeline passphrase")
	require.NoError(t, err)

	proc, err := NewPayloadProcessor([]Transform{zst, cbc})
	require.NoError(t, err)

	payload := []byte(strings.Repeat("pipeline payload ", 100))
	wire, err := proc.PrepareOutput(payload)
	require.NoError(t, err)
	require.NotEqual(t, payload, wire)

	out, err := proc.ParseInput(wire)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestPayloadProcessorRequiresTransform(t *testing.T) {
	_, err := NewPayloadProcessor(nil)
	require.Error(t, err)

	proc, err := NewPayloadProcessor([]Transform{NewNoOpTransform()})
	require.NoError(t, err)
	out, err := proc.PrepareOutput([]byte("x"))
	require.NoError(t, err)
	require.Equal(t, []byte("x"), out)
}
