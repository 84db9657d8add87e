package gf

import "testing"

func TestMulKnownProducts(t *testing.T) {
	// Worked examples from the AES specification.
	cases := []struct{ a, b, want byte }{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x01, 0x01, 0x01},
		{0x00, 0xff, 0x00},
	}
	for _, c := range cases {
		if got := Mul(c.a, c.b); got != c.want {
			t.Errorf("Mul(%#02x, %#02x) = %#02x, want %#02x", c.a, c.b, got, c.want)
		}
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	for x := 0; x < 256; x++ {
		b := byte(x)
		if Mul(b, 0x01) != b {
			t.Fatalf("Mul(%#02x, 1) != %#02x", b, b)
		}
		if Mul(b, 0x00) != 0 {
			t.Fatalf("Mul(%#02x, 0) != 0", b)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 5 {
			x, y := byte(a), byte(b)
			if Mul(x, y) != Mul(y, x) {
				t.Fatalf("Mul(%#02x, %#02x) not commutative", x, y)
			}
		}
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	for a := 0; a < 256; a += 11 {
		for b := 0; b < 256; b += 13 {
			for c := 0; c < 256; c += 17 {
				x, y, z := byte(a), byte(b), byte(c)
				if Mul(x, Add(y, z)) != Add(Mul(x, y), Mul(x, z)) {
					t.Fatalf("distributivity fails for %#02x, %#02x, %#02x", x, y, z)
				}
			}
		}
	}
}
