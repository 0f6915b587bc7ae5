// Command pk_open reads a hex ciphertext from stdin, decrypts it with the
// given SM2 private key, and writes the message to stdout.
package main

import (
	"crypto/ecdsa"
	"encoding/hex"
	"flag"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/gm-crypto/sm2"
)

func main() {
	log := slog.New(slog.Default().Handler())

	privHex := flag.String("priv", "", "the recipient's private key (hex scalar)")
	flag.Parse()

	d, ok := new(big.Int).SetString(strings.TrimSpace(*privHex), 16)
	if !ok {
		panic("private key must be a hex scalar")
	}
	curve := sm2.P256Sm2()
	priv := &ecdsa.PrivateKey{PublicKey: ecdsa.PublicKey{Curve: curve}, D: d}
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(d.Bytes())

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}
	ciphertext, err := hex.DecodeString(strings.TrimSpace(string(in)))
	if err != nil {
		panic(err)
	}

	plaintext, err := sm2.Decrypt(priv, nil, ciphertext, nil)
	if err != nil {
		panic(err)
	}
	log.Info("opened ciphertext", "plaintext", len(plaintext))

	if _, err := os.Stdout.Write(plaintext); err != nil {
		panic(err)
	}
}
