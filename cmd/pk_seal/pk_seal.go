// Command pk_seal reads a message from stdin, encrypts it for the given SM2
// public key, and writes the hex ciphertext to stdout.
package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"

	"github.com/gm-crypto/sm2"
)

func main() {
	log := slog.New(slog.Default().Handler())

	pubHex := flag.String("pub", "", "the recipient's public key (hex, uncompressed point)")
	flag.Parse()

	pub, err := parsePublicKey(sm2.P256Sm2(), *pubHex)
	if err != nil {
		panic(err)
	}

	message, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	ciphertext, err := sm2.Encrypt(rand.Reader, pub, nil, message, nil)
	if err != nil {
		panic(err)
	}
	log.Info("sealed message", "plaintext", len(message), "ciphertext", len(ciphertext))

	fmt.Printf("%x\n", ciphertext)
}

func parsePublicKey(curve elliptic.Curve, s string) (*ecdsa.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}

	byteLen := (curve.Params().BitSize + 7) / 8
	if len(b) != 1+2*byteLen || b[0] != 0x04 {
		return nil, errors.New("public key must be an uncompressed point")
	}
	return &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(b[1 : 1+byteLen]),
		Y:     new(big.Int).SetBytes(b[1+byteLen:]),
	}, nil
}
