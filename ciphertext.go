package sm2

import (
	"crypto/elliptic"
	"hash"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/gm-crypto/sm2/internal/mem"
)

// Encoding selects the wire form of a ciphertext.
type Encoding int

const (
	// EncodingASN1 is the DER record of GB/T 32918.4: SEQUENCE { INTEGER x1,
	// INTEGER y1, OCTET STRING c3, OCTET STRING c2 }. This is the default.
	EncodingASN1 Encoding = iota

	// EncodingPlain is the concatenated form: an uncompressed point
	// (04 ‖ x1 ‖ y1) followed by the tag and payload in splicing order.
	EncodingPlain
)

// SplicingOrder selects the position of the tag within a plain-encoded
// ciphertext. It has no effect on the ASN.1 encoding.
type SplicingOrder int

const (
	// C1C3C2 is the GB/T 32918.4-2016 order. This is the default.
	C1C3C2 SplicingOrder = iota

	// C1C2C3 is the legacy GM/T 0009-2012 order.
	C1C2C3
)

// EncrypterOpts selects the ciphertext form produced by Encrypt. A nil
// *EncrypterOpts means DER encoding.
type EncrypterOpts struct {
	Encoding Encoding
	Order    SplicingOrder
}

// DecrypterOpts selects the ciphertext form expected by Decrypt. A nil
// *DecrypterOpts means DER encoding.
type DecrypterOpts struct {
	Encoding Encoding
	Order    SplicingOrder
}

var (
	defaultEncrypterOpts = &EncrypterOpts{}
	defaultDecrypterOpts = &DecrypterOpts{}
)

const uncompressedPrefix = 0x04

// fieldSize returns the byte width of the curve's field elements.
func fieldSize(curve elliptic.Curve) int {
	return (curve.Params().BitSize + 7) / 8
}

func marshalCiphertextASN1(x1, y1 *big.Int, c3, c2 []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(x1)
		b.AddASN1BigInt(y1)
		b.AddASN1OctetString(c3)
		b.AddASN1OctetString(c2)
	})
	return b.Bytes()
}

func unmarshalCiphertextASN1(ciphertext []byte, tagSize int) (x1, y1 *big.Int, c3, c2 []byte, err error) {
	x1, y1 = new(big.Int), new(big.Int)
	input := cryptobyte.String(ciphertext)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cryptobyte_asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(x1) ||
		!inner.ReadASN1Integer(y1) ||
		!inner.ReadASN1Bytes(&c3, cryptobyte_asn1.OCTET_STRING) ||
		!inner.ReadASN1Bytes(&c2, cryptobyte_asn1.OCTET_STRING) ||
		!inner.Empty() {
		return nil, nil, nil, nil, ErrCiphertext
	}
	if x1.Sign() < 0 || y1.Sign() < 0 || len(c3) != tagSize {
		return nil, nil, nil, nil, ErrCiphertext
	}
	return x1, y1, c3, c2, nil
}

func marshalCiphertextPlain(curve elliptic.Curve, x1, y1 *big.Int, c3, c2 []byte, order SplicingOrder) []byte {
	byteLen := fieldSize(curve)
	out, _ := mem.SliceForAppend(nil, 1+2*byteLen+len(c3)+len(c2))
	out[0] = uncompressedPrefix
	x1.FillBytes(out[1 : 1+byteLen])
	y1.FillBytes(out[1+byteLen : 1+2*byteLen])
	rest := out[1+2*byteLen:]
	if order == C1C3C2 {
		copy(rest, c3)
		copy(rest[len(c3):], c2)
	} else {
		copy(rest, c2)
		copy(rest[len(c2):], c3)
	}
	return out
}

func unmarshalCiphertextPlain(curve elliptic.Curve, ciphertext []byte, tagSize int, order SplicingOrder) (x1, y1 *big.Int, c3, c2 []byte, err error) {
	byteLen := fieldSize(curve)
	if len(ciphertext) < 1+2*byteLen+tagSize || ciphertext[0] != uncompressedPrefix {
		return nil, nil, nil, nil, ErrCiphertext
	}
	x1 = new(big.Int).SetBytes(ciphertext[1 : 1+byteLen])
	y1 = new(big.Int).SetBytes(ciphertext[1+byteLen : 1+2*byteLen])
	rest := ciphertext[1+2*byteLen:]
	if order == C1C3C2 {
		c3, c2 = rest[:tagSize], rest[tagSize:]
	} else {
		c2, c3 = rest[:len(rest)-tagSize], rest[len(rest)-tagSize:]
	}
	return x1, y1, c3, c2, nil
}

// CiphertextSize returns the number of bytes needed to hold a ciphertext for
// a msgLen-byte message under the given curve and digest. For EncodingPlain
// the result is exact; for EncodingASN1 it is the worst-case DER size, since
// a minimal INTEGER's width depends on the ephemeral point's coordinates. The
// result is computed from field and digest widths alone. A nil newHash means
// SM3; a nil opts means EncodingASN1.
func CiphertextSize(curve elliptic.Curve, newHash func() hash.Hash, msgLen int, opts *EncrypterOpts) int {
	if opts == nil {
		opts = defaultEncrypterOpts
	}
	byteLen := fieldSize(curve)
	tagSize := hashOrSM3(newHash)().Size()
	if opts.Encoding == EncodingPlain {
		return 1 + 2*byteLen + tagSize + msgLen
	}
	// Each coordinate may need a leading zero byte to stay non-negative.
	content := 2*asn1Size(byteLen+1) + asn1Size(tagSize) + asn1Size(msgLen)
	return asn1Size(content)
}

// PlaintextSize returns the number of bytes needed to hold the plaintext of a
// ciphertextLen-byte ciphertext under the given curve and digest. For
// EncodingPlain the result is exact; for EncodingASN1 it assumes full-width
// coordinates and minimal framing, so it is an upper bound on the recovered
// length. A nil newHash means SM3; a nil opts means EncodingASN1.
func PlaintextSize(curve elliptic.Curve, newHash func() hash.Hash, ciphertextLen int, opts *DecrypterOpts) int {
	if opts == nil {
		opts = defaultDecrypterOpts
	}
	byteLen := fieldSize(curve)
	tagSize := hashOrSM3(newHash)().Size()
	var overhead int
	if opts.Encoding == EncodingPlain {
		overhead = 1 + 2*byteLen + tagSize
	} else {
		// Sequence header, two INTEGER headers, and two OCTET STRING
		// headers at their shortest, plus full-width coordinates.
		overhead = 10 + 2*byteLen + tagSize
	}
	if ciphertextLen <= overhead {
		return 0
	}
	return ciphertextLen - overhead
}

// asn1Size returns the encoded size of a DER element with n content bytes.
func asn1Size(n int) int {
	switch {
	case n < 0x80:
		return 2 + n
	case n < 0x100:
		return 3 + n
	case n < 0x10000:
		return 4 + n
	default:
		return 5 + n
	}
}
