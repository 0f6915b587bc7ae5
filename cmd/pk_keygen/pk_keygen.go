// Command pk_keygen generates a key pair on the SM2 recommended curve and
// prints it as hex: the private scalar on the first line, the uncompressed
// public point on the second.
package main

import (
	"crypto/ecdsa"
	"crypto/rand"
	"flag"
	"fmt"
	"log/slog"

	"github.com/gm-crypto/sm2"
)

func main() {
	log := slog.New(slog.Default().Handler())
	flag.Parse()

	priv, err := ecdsa.GenerateKey(sm2.P256Sm2(), rand.Reader)
	if err != nil {
		panic(err)
	}
	log.Info("generated key pair", "curve", priv.Curve.Params().Name)

	pub := make([]byte, 65)
	pub[0] = 0x04
	priv.PublicKey.X.FillBytes(pub[1:33])
	priv.PublicKey.Y.FillBytes(pub[33:])

	fmt.Printf("%064x\n", priv.D)
	fmt.Printf("%x\n", pub)
}
