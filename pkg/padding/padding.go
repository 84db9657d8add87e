// Package padding implements PKCS#7 padding for block ciphers. The
// cipher core never pads; callers that accept arbitrary-length input
// pad here before encrypting and unpad after decrypting.
package padding

import "errors"

var (
	// ErrInvalidSize is returned when padded data is empty or not
	// block-aligned.
	ErrInvalidSize = errors.New("padding: invalid data size")

	// ErrInvalidPadding is returned when the trailing padding bytes
	// are inconsistent. With unauthenticated CBC this also fires on
	// tampered or wrongly keyed ciphertext.
	ErrInvalidPadding = errors.New("padding: invalid padding")
)

// Pad appends PKCS#7 padding so that the result is a whole number of
// blocks. Input that is already aligned gains a full padding block,
// so Pad always adds at least one byte.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// Unpad strips PKCS#7 padding added by Pad.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidSize
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for i := len(data) - n; i < len(data); i++ {
		if data[i] != byte(n) {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
