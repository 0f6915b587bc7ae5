package mem_test

import (
	"bytes"
	"testing"

	"github.com/gm-crypto/sm2/internal/mem"
)

func TestXOR(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 64} {
		a := bytes.Repeat([]byte{0x5A}, n)
		b := bytes.Repeat([]byte{0xFF}, n)
		dst := make([]byte, n)
		mem.XOR(dst, a, b)
		if want := bytes.Repeat([]byte{0xA5}, n); !bytes.Equal(dst, want) {
			t.Errorf("XOR(n=%d) = %x, want = %x", n, dst, want)
		}
	}
}

func TestSliceForAppend(t *testing.T) {
	head, tail := mem.SliceForAppend([]byte("abc"), 4)
	if got, want := len(head), 7; got != want {
		t.Errorf("len(head) = %d, want = %d", got, want)
	}
	if got, want := len(tail), 4; got != want {
		t.Errorf("len(tail) = %d, want = %d", got, want)
	}
	copy(tail, "defg")
	if got, want := string(head), "abcdefg"; got != want {
		t.Errorf("head = %q, want = %q", got, want)
	}
}

func TestAllZero(t *testing.T) {
	if !mem.AllZero(nil) {
		t.Error("AllZero(nil) = false, want = true")
	}
	if !mem.AllZero(make([]byte, 33)) {
		t.Error("AllZero(zeros) = false, want = true")
	}
	for _, i := range []int{0, 16, 32} {
		b := make([]byte, 33)
		b[i] = 1
		if mem.AllZero(b) {
			t.Errorf("AllZero(nonzero at %d) = true, want = false", i)
		}
	}
}

func TestWipe(t *testing.T) {
	b := bytes.Repeat([]byte{0xFF}, 32)
	mem.Wipe(b)
	if !mem.AllZero(b) {
		t.Errorf("Wipe left %x", b)
	}
}
