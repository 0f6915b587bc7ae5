package sm2

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

var (
	initonce sync.Once
	sm2P256  *elliptic.CurveParams
)

func initP256Sm2() {
	// Parameters of the SM2 recommended curve, GB/T 32918.5-2017. Its a
	// coefficient equals p-3, so elliptic.CurveParams arithmetic applies.
	sm2P256 = &elliptic.CurveParams{Name: "SM2-P-256"}
	sm2P256.P, _ = new(big.Int).SetString("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF", 16)
	sm2P256.N, _ = new(big.Int).SetString("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123", 16)
	sm2P256.B, _ = new(big.Int).SetString("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93", 16)
	sm2P256.Gx, _ = new(big.Int).SetString("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7", 16)
	sm2P256.Gy, _ = new(big.Int).SetString("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0", 16)
	sm2P256.BitSize = 256
}

// P256Sm2 returns the SM2 recommended curve (also known as sm2p256v1).
//
// The returned curve's arithmetic is the generic math/big implementation;
// callers needing constant-time or accelerated group operations should supply
// their own [elliptic.Curve] for these parameters.
func P256Sm2() elliptic.Curve {
	initonce.Do(initP256Sm2)
	return sm2P256
}
