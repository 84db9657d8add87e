package aes128

import "errors"

var (
	// ErrLength is returned when an input buffer is not a whole
	// number of blocks. No padding is performed at this layer; the
	// caller must pad before encrypting.
	ErrLength = errors.New("aes128: input length is not a multiple of the block size")

	// ErrIVSize is returned when the IV is not exactly one block.
	ErrIVSize = errors.New("aes128: IV length must equal the block size")
)

// EncryptCBC encrypts a block-aligned plaintext in CBC mode. Each
// plaintext block is XORed with the previous ciphertext block (the IV
// for the first) before encryption, so blocks must be processed in
// order. A bit flip in the resulting ciphertext garbles the affected
// block and part of the next one on decryption; that propagation is a
// property of CBC, not detected here.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.EncryptCBC(plaintext, iv)
}

// DecryptCBC decrypts a block-aligned ciphertext in CBC mode.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.DecryptCBC(ciphertext, iv)
}

// EncryptCBC encrypts plaintext with the cipher's key, reusing the
// already expanded schedule.
func (c *Cipher) EncryptCBC(plaintext, iv []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, ErrIVSize
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, ErrLength
	}
	ciphertext := make([]byte, len(plaintext))
	var chain, block [BlockSize]byte
	copy(chain[:], iv)
	for i := 0; i < len(plaintext); i += BlockSize {
		copy(block[:], plaintext[i:i+BlockSize])
		addRoundKey(block[:], chain[:])
		c.EncryptBlock(ciphertext[i:i+BlockSize], block[:])
		copy(chain[:], ciphertext[i:i+BlockSize])
	}
	return ciphertext, nil
}

// DecryptCBC decrypts ciphertext with the cipher's key. Each block
// needs only the preceding raw ciphertext block, not its decryption,
// so this loop could run per block in parallel; it stays sequential
// for simplicity.
func (c *Cipher) DecryptCBC(ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, ErrIVSize
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, ErrLength
	}
	plaintext := make([]byte, len(ciphertext))
	var chain [BlockSize]byte
	copy(chain[:], iv)
	for i := 0; i < len(ciphertext); i += BlockSize {
		c.DecryptBlock(plaintext[i:i+BlockSize], ciphertext[i:i+BlockSize])
		addRoundKey(plaintext[i:i+BlockSize], chain[:])
		copy(chain[:], ciphertext[i:i+BlockSize])
	}
	return plaintext, nil
}
