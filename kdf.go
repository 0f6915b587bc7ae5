package sm2

import (
	"encoding/binary"
	"hash"
)

// KDF is the key derivation function of GB/T 32918.3-2016: it expands z into
// n bytes by concatenating digest(z ‖ counter) for a 32-bit big-endian
// counter starting at 1, truncating the final block.
//
// The output for a given z and n is deterministic. Callers are responsible
// for rejecting an all-zero result where the standard requires it; KDF itself
// has no failure modes. KDF panics if n is negative.
func KDF(newHash func() hash.Hash, z []byte, n int) []byte {
	if n < 0 {
		panic("sm2: negative KDF output length")
	}

	h := newHash()
	out := make([]byte, 0, (n+h.Size()-1)/h.Size()*h.Size())
	var counter [4]byte
	for ct := uint32(1); len(out) < n; ct++ {
		binary.BigEndian.PutUint32(counter[:], ct)
		h.Reset()
		h.Write(z)
		h.Write(counter[:])
		// Sum(nil), not Sum(out): some digest implementations absorb a
		// non-nil argument into the state instead of appending to it.
		out = append(out, h.Sum(nil)...)
	}
	return out[:n]
}
