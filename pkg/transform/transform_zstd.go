package transform

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

type zstdTransform struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdTransform creates a compression/decompression transform using
// Zstandard. Provide a level like zstd.SpeedFastest or
// zstd.SpeedDefault. Compression belongs before encryption in a
// pipeline; ciphertext does not compress.
func NewZstdTransform(level zstd.EncoderLevel) (Transform, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize decoder: %w", err)
	}
	return &zstdTransform{encoder: enc, decoder: dec}, nil
}

// Apply compresses the data.
func (s *zstdTransform) Apply(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	s.encoder.Reset(&buf)

	if _, err := s.encoder.Write(data); err != nil {
		_ = s.encoder.Close()
		return nil, fmt.Errorf("zstd apply (compress): failed to write data: %w", err)
	}
	// Close flushes the final block.
	if err := s.encoder.Close(); err != nil {
		return nil, fmt.Errorf("zstd apply (compress): failed to close writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Reverse decompresses the data.
func (s *zstdTransform) Reverse(data []byte) ([]byte, error) {
	if err := s.decoder.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to reset decoder: %w", err)
	}
	decompressed, err := io.ReadAll(s.decoder)
	if err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to read data: %w", err)
	}
	return decompressed, nil
}
