// Package gf provides arithmetic over the finite field GF(2^8) as used
// by the AES MixColumns transformation. Addition is XOR; multiplication
// is polynomial multiplication reduced modulo the AES polynomial.
package gf

// Poly is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1,
// with the x^8 term implied.
const Poly = 0x1b

// Add adds two field elements.
func Add(a, b byte) byte { return a ^ b }

// Mul multiplies two field elements modulo Poly.
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hiBit := a & 0x80
		a <<= 1
		if hiBit != 0 {
			a ^= Poly
		}
		b >>= 1
	}
	return p
}
