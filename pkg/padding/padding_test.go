package padding

import (
	"bytes"
	"errors"
	"testing"
)

func TestPadUnpad(t *testing.T) {
	for n := 0; n <= 48; n++ {
		data := bytes.Repeat([]byte{0xab}, n)
		padded := Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("Pad(%d bytes) not block aligned: %d", n, len(padded))
		}
		if len(padded) <= n {
			t.Fatalf("Pad(%d bytes) added no padding", n)
		}
		out, err := Unpad(padded, 16)
		if err != nil {
			t.Fatalf("Unpad error for %d bytes: %v", n, err)
		}
		if !bytes.Equal(data, out) {
			t.Fatalf("round trip failed for %d bytes", n)
		}
	}
}

func TestUnpadRejectsBadInput(t *testing.T) {
	if _, err := Unpad(nil, 16); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("empty input: got %v, want ErrInvalidSize", err)
	}
	if _, err := Unpad(make([]byte, 17), 16); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("unaligned input: got %v, want ErrInvalidSize", err)
	}

	bad := Pad([]byte("data"), 16)
	bad[len(bad)-1] = 0
	if _, err := Unpad(bad, 16); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("zero pad byte: got %v, want ErrInvalidPadding", err)
	}

	bad = Pad([]byte("data"), 16)
	bad[len(bad)-1] = 17
	if _, err := Unpad(bad, 16); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("oversized pad byte: got %v, want ErrInvalidPadding", err)
	}

	bad = Pad([]byte("data"), 16)
	bad[len(bad)-2] ^= 0xff
	if _, err := Unpad(bad, 16); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("inconsistent padding: got %v, want ErrInvalidPadding", err)
	}
}
