// Package sm2 implements the SM2 public-key encryption scheme of
// GB/T 32918.4-2016 (ISO/IEC 14888-3's EC-based hybrid construction).
//
// A message is encrypted under a recipient's elliptic-curve public key: a
// fresh ephemeral scalar produces a shared point via scalar multiplication,
// a KDF expands the shared point's coordinates into a mask, the mask is XORed
// with the message, and a digest over the coordinates and message becomes an
// integrity tag. The four fields (ephemeral point, tag, masked payload)
// travel as a DER record by default, or as the concatenated C1‖C3‖C2 form.
//
// The engine is generic over [elliptic.Curve]; [P256Sm2] returns the standard
// SM2 curve, and any prime-order curve whose implementation is sound works,
// including curves with a general a coefficient via internal providers. The
// digest is injected as a hash constructor and defaults to SM3. The random
// source is an explicit io.Reader: production callers pass crypto/rand.Reader,
// tests pass a fixed byte sequence to make Encrypt deterministic.
package sm2

import (
	"crypto/ecdsa"
	"crypto/subtle"
	"hash"
	"io"
	"math/big"

	"github.com/tjfoc/gmsm/sm3"

	"github.com/gm-crypto/sm2/internal/mem"
)

// maxRetries bounds the ephemeral-scalar loop in Encrypt: scalar candidates
// outside [1, n-1] and all-zero KDF masks are resampled at most this many
// times before Encrypt gives up on the random source.
const maxRetries = 100

// Encrypt encrypts msg for the owner of pub and returns the ciphertext.
//
// The random parameter is the source of the ephemeral scalar; most callers
// should pass [crypto/rand.Reader]. Encryption is probabilistic: two calls
// with the same inputs produce different ciphertexts unless random yields the
// same bytes. A nil newHash means SM3; a nil opts means DER encoding.
//
// Zero-length messages are valid and produce a ciphertext that authenticates
// the shared point.
func Encrypt(random io.Reader, pub *ecdsa.PublicKey, newHash func() hash.Hash, msg []byte, opts *EncrypterOpts) ([]byte, error) {
	if opts == nil {
		opts = defaultEncrypterOpts
	}
	newHash = hashOrSM3(newHash)

	if pub == nil || pub.Curve == nil || pub.X == nil || pub.Y == nil {
		return nil, ErrPublicKey
	}
	curve := pub.Curve
	if isInfinity(pub.X, pub.Y) || !curve.IsOnCurve(pub.X, pub.Y) {
		return nil, ErrPublicKey
	}

	byteLen := fieldSize(curve)
	n := curve.Params().N
	for attempt := 0; attempt < maxRetries; attempt++ {
		// A1: draw a candidate ephemeral scalar.
		k, err := sampleScalar(random, n)
		if err != nil {
			return nil, err
		}
		if k == nil {
			continue
		}

		// A2-A4: C1 = [k]G, S = [k]P, both in affine coordinates.
		kBytes := k.Bytes()
		x1, y1 := curve.ScalarBaseMult(kBytes)
		x2, y2 := curve.ScalarMult(pub.X, pub.Y, kBytes)
		mem.Wipe(kBytes)
		k.SetInt64(0)
		if isInfinity(x2, y2) {
			// Only a degenerate public key lands here; resampling k
			// cannot help.
			return nil, ErrPublicKey
		}

		shared := make([]byte, 2*byteLen)
		x2.FillBytes(shared[:byteLen])
		y2.FillBytes(shared[byteLen:])

		// A5: t = KDF(x2 ‖ y2, len(msg)). An all-zero t would leave the
		// payload unmasked, so resample.
		t := KDF(newHash, shared, len(msg))
		if len(msg) > 0 && mem.AllZero(t) {
			mem.Wipe(shared)
			continue
		}

		// A6: C2 = msg ⊕ t.
		mem.XOR(t, msg, t)
		c2 := t

		// A7: C3 = digest(x2 ‖ msg ‖ y2).
		h := newHash()
		h.Write(shared[:byteLen])
		h.Write(msg)
		h.Write(shared[byteLen:])
		c3 := h.Sum(nil)
		mem.Wipe(shared)

		if opts.Encoding == EncodingPlain {
			return marshalCiphertextPlain(curve, x1, y1, c3, c2, opts.Order), nil
		}
		return marshalCiphertextASN1(x1, y1, c3, c2)
	}
	return nil, ErrRandomness
}

// Decrypt decrypts ciphertext with priv and returns the message.
//
// All failures are all-or-nothing: no partially unmasked payload is ever
// returned, and each failure is reported only as its sentinel kind. The tag
// comparison is constant-time. A nil newHash means SM3; a nil opts means DER
// encoding.
func Decrypt(priv *ecdsa.PrivateKey, newHash func() hash.Hash, ciphertext []byte, opts *DecrypterOpts) ([]byte, error) {
	if opts == nil {
		opts = defaultDecrypterOpts
	}
	newHash = hashOrSM3(newHash)

	if priv == nil || priv.Curve == nil || priv.D == nil ||
		priv.D.Sign() <= 0 || priv.D.Cmp(priv.Curve.Params().N) >= 0 {
		return nil, ErrPrivateKey
	}
	curve := priv.Curve
	byteLen := fieldSize(curve)
	h := newHash()

	// B1: recover the record's four fields.
	var (
		x1, y1 *big.Int
		c3, c2 []byte
		err    error
	)
	if opts.Encoding == EncodingPlain {
		x1, y1, c3, c2, err = unmarshalCiphertextPlain(curve, ciphertext, h.Size(), opts.Order)
	} else {
		x1, y1, c3, c2, err = unmarshalCiphertextASN1(ciphertext, h.Size())
	}
	if err != nil {
		return nil, err
	}

	// The point came from untrusted bytes: validate before multiplying.
	p := curve.Params().P
	if x1.Cmp(p) >= 0 || y1.Cmp(p) >= 0 || isInfinity(x1, y1) || !curve.IsOnCurve(x1, y1) {
		return nil, ErrPoint
	}

	// B2-B3: S = [d]C1.
	x2, y2 := curve.ScalarMult(x1, y1, priv.D.Bytes())
	if isInfinity(x2, y2) {
		return nil, ErrPoint
	}

	shared := make([]byte, 2*byteLen)
	x2.FillBytes(shared[:byteLen])
	y2.FillBytes(shared[byteLen:])

	// B4: t = KDF(x2 ‖ y2, len(c2)).
	t := KDF(newHash, shared, len(c2))
	if len(c2) > 0 && mem.AllZero(t) {
		mem.Wipe(shared)
		return nil, ErrKDF
	}

	// B5: unmask into a buffer the caller never sees on failure.
	msg := make([]byte, len(c2))
	mem.XOR(msg, c2, t)
	mem.Wipe(t)

	// B6: recompute and compare the tag.
	h.Reset()
	h.Write(shared[:byteLen])
	h.Write(msg)
	h.Write(shared[byteLen:])
	u := h.Sum(nil)
	mem.Wipe(shared)

	if subtle.ConstantTimeCompare(u, c3) != 1 {
		mem.Wipe(msg)
		return nil, ErrIntegrity
	}
	return msg, nil
}

// sampleScalar reads one scalar candidate from random. It returns (nil, nil)
// when the candidate falls outside [1, n-1] and must be redrawn, so a fixed
// byte sequence maps to a fixed scalar.
func sampleScalar(random io.Reader, n *big.Int) (*big.Int, error) {
	b := make([]byte, (n.BitLen()+7)/8)
	if _, err := io.ReadFull(random, b); err != nil {
		return nil, err
	}
	if excess := len(b)*8 - n.BitLen(); excess > 0 {
		b[0] &= 0xff >> excess
	}
	k := new(big.Int).SetBytes(b)
	mem.Wipe(b)
	if k.Sign() == 0 || k.Cmp(n) >= 0 {
		k.SetInt64(0)
		return nil, nil
	}
	return k, nil
}

func hashOrSM3(newHash func() hash.Hash) func() hash.Hash {
	if newHash == nil {
		return sm3.New
	}
	return newHash
}

func isInfinity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}
