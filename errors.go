package sm2

import "errors"

var (
	// ErrCiphertext is returned when a ciphertext is truncated, carries
	// trailing data, or otherwise does not parse as the expected four-field
	// record.
	ErrCiphertext = errors.New("sm2: malformed ciphertext")

	// ErrPoint is returned when a point recovered from a ciphertext is not on
	// the curve, is the point at infinity, or multiplies to the point at
	// infinity.
	ErrPoint = errors.New("sm2: invalid curve point")

	// ErrKDF is returned when decryption derives an all-zero mask, which
	// would expose the payload unmasked.
	ErrKDF = errors.New("sm2: degenerate key derivation output")

	// ErrIntegrity is returned when the recomputed tag does not match the
	// ciphertext's tag. It carries no information about where the mismatch
	// occurred.
	ErrIntegrity = errors.New("sm2: integrity tag mismatch")

	// ErrPublicKey is returned when the public key given to Encrypt is
	// missing, off-curve, or degenerate.
	ErrPublicKey = errors.New("sm2: invalid public key")

	// ErrPrivateKey is returned when the private key given to Decrypt is
	// missing or out of range.
	ErrPrivateKey = errors.New("sm2: invalid private key")

	// ErrRandomness is returned when Encrypt exhausts its retry budget
	// without drawing a usable ephemeral scalar from the random source.
	ErrRandomness = errors.New("sm2: randomness source exhausted")
)
