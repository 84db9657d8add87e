package transform

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"blockcrypt/pkg/aes128"
	"blockcrypt/pkg/padding"
	"blockcrypt/pkg/random"
)

// keyFromPassphrase derives a 16-byte AES-128 key from a passphrase.
func keyFromPassphrase(passphrase string) []byte {
	key := sha256.Sum256([]byte(passphrase))
	return key[:aes128.KeySize]
}

type cbcTransform struct {
	cipher *aes128.Cipher
}

// NewCBCTransform creates an encryption transform over the aes128
// cipher in CBC mode. Apply pads with PKCS#7, draws a fresh random IV
// per message, and prepends it to the ciphertext; Reverse splits the
// IV back off, decrypts, and unpads. There is no authentication:
// tampering surfaces at best as a padding error, at worst as garbage
// plaintext.
func NewCBCTransform(passphrase string) (Transform, error) {
	if passphrase == "" {
		return nil, errors.New("cbc: passphrase must not be empty")
	}
	c, err := aes128.NewCipher(keyFromPassphrase(passphrase))
	if err != nil {
		return nil, fmt.Errorf("cbc: failed to create cipher: %w", err)
	}
	return &cbcTransform{cipher: c}, nil
}

// NewCBCTransformWithKey is like NewCBCTransform but takes a raw
// 16-byte key.
func NewCBCTransformWithKey(key []byte) (Transform, error) {
	c, err := aes128.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cbc: failed to create cipher: %w", err)
	}
	return &cbcTransform{cipher: c}, nil
}

func (t *cbcTransform) Apply(plaintext []byte) ([]byte, error) {
	iv, err := random.Bytes(aes128.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("cbc apply (encrypt): failed to generate IV: %w", err)
	}
	padded := padding.Pad(plaintext, aes128.BlockSize)
	ciphertext, err := t.cipher.EncryptCBC(padded, iv)
	if err != nil {
		return nil, fmt.Errorf("cbc apply (encrypt): %w", err)
	}
	out := make([]byte, 0, len(iv)+len(ciphertext))
	out = append(out, iv...)
	out = append(out, ciphertext...)
	return out, nil
}

func (t *cbcTransform) Reverse(data []byte) ([]byte, error) {
	if len(data) < aes128.BlockSize {
		return nil, errors.New("cbc reverse (decrypt): input too short to contain IV")
	}
	iv, ciphertext := data[:aes128.BlockSize], data[aes128.BlockSize:]
	padded, err := t.cipher.DecryptCBC(ciphertext, iv)
	if err != nil {
		return nil, fmt.Errorf("cbc reverse (decrypt): %w", err)
	}
	plaintext, err := padding.Unpad(padded, aes128.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("cbc reverse (decrypt): %w", err)
	}
	return plaintext, nil
}
