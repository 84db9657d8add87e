package random

import (
	"bytes"
	"testing"
)

func TestBytes(t *testing.T) {
	a, err := Bytes(16)
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	b, err := Bytes(16)
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Errorf("two random draws are identical (unexpected)")
	}
}

func TestSequence(t *testing.T) {
	// Generate a sequence of random numbers and ensure they're not all equal.
	const count = 1000
	first := Rand()
	same := true
	for i := 1; i < count; i++ {
		if Rand() != first {
			same = false
			break
		}
	}
	if same {
		t.Errorf("All random numbers in the sequence are equal (unexpected)")
	}
}

func TestFill(t *testing.T) {
	buf := make([]byte, 33)
	Fill(buf)
	if bytes.Equal(buf, make([]byte, 33)) {
		t.Errorf("Fill left the buffer all zero (unexpected)")
	}
}
