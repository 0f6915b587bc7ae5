package weierstrass_test

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm-crypto/sm2/internal/weierstrass"
)

// gbExampleCurve is the example curve of GB/T 32918.5 appendix A; its a
// coefficient is not -3 mod p.
func gbExampleCurve(t *testing.T) *weierstrass.Curve {
	t.Helper()

	params := &elliptic.CurveParams{Name: "sm2-example-p256", BitSize: 256}
	params.P = mustInt(t, "8542D69E4C044F18E8B92435BF6FF7DE457283915C45517D722EDB8B08F1DFC3")
	params.N = mustInt(t, "8542D69E4C044F18E8B92435BF6FF7DD297720630485628D5AE74EE7C32E79B7")
	params.B = mustInt(t, "63E4C6D3B23B0C849CF84241484BFE48F61D59A5B16BA06E6E12D1DA27C5249A")
	params.Gx = mustInt(t, "421DEBD61B62EAB6746434EBC3CC315E32220B3BADD50BDC4C4E6C147FEDD43D")
	params.Gy = mustInt(t, "0680512BCBB42C07D47349D2153B70C4E5D7FDFCBFA36EA1A85841B9E46E09A2")
	a := mustInt(t, "787968B4FA32C3FD2417842E73BBFEFF2F3C848B6831D7E0EC65228B3937E498")
	return weierstrass.New(params, a)
}

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	i, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex integer %q", s)
	return i
}

func TestBasePoint(t *testing.T) {
	curve := gbExampleCurve(t)
	params := curve.Params()

	assert.True(t, curve.IsOnCurve(params.Gx, params.Gy), "base point must be on the curve")
	assert.False(t, curve.IsOnCurve(big.NewInt(2), big.NewInt(3)), "(2, 3) must not be on the curve")
	assert.False(t, curve.IsOnCurve(new(big.Int), new(big.Int)), "the identity must not be on the curve")
	assert.False(t, curve.IsOnCurve(params.P, params.Gy), "x out of range must be rejected")
}

func TestGroupLaws(t *testing.T) {
	curve := gbExampleCurve(t)
	params := curve.Params()
	gx, gy := params.Gx, params.Gy

	dx, dy := curve.Double(gx, gy)
	ax, ay := curve.Add(gx, gy, gx, gy)
	assert.Zero(t, dx.Cmp(ax), "G+G must equal 2G")
	assert.Zero(t, dy.Cmp(ay), "G+G must equal 2G")
	assert.True(t, curve.IsOnCurve(dx, dy), "2G must be on the curve")

	sx, sy := curve.ScalarBaseMult([]byte{2})
	assert.Zero(t, sx.Cmp(dx), "[2]G must equal Double(G)")
	assert.Zero(t, sy.Cmp(dy), "[2]G must equal Double(G)")

	// 5G computed two ways.
	x5, y5 := curve.ScalarBaseMult([]byte{5})
	x3, y3 := curve.ScalarBaseMult([]byte{3})
	x23, y23 := curve.Add(dx, dy, x3, y3)
	assert.Zero(t, x5.Cmp(x23), "[5]G must equal [2]G + [3]G")
	assert.Zero(t, y5.Cmp(y23), "[5]G must equal [2]G + [3]G")

	// Adding the identity is a no-op.
	ix, iy := curve.Add(gx, gy, new(big.Int), new(big.Int))
	assert.Zero(t, ix.Cmp(gx))
	assert.Zero(t, iy.Cmp(gy))

	// Adding a point to its negation yields the identity.
	negY := new(big.Int).Sub(params.P, gy)
	zx, zy := curve.Add(gx, gy, gx, negY)
	assert.Zero(t, zx.Sign())
	assert.Zero(t, zy.Sign())
}

func TestScalarMultOrder(t *testing.T) {
	curve := gbExampleCurve(t)
	params := curve.Params()

	// [n]G is the identity and [n-1]G is -G.
	nx, ny := curve.ScalarBaseMult(params.N.Bytes())
	assert.Zero(t, nx.Sign(), "[n]G must be the identity")
	assert.Zero(t, ny.Sign(), "[n]G must be the identity")

	mx, my := curve.ScalarBaseMult(new(big.Int).Sub(params.N, big.NewInt(1)).Bytes())
	assert.Zero(t, mx.Cmp(params.Gx), "[n-1]G must be -G")
	assert.Zero(t, my.Cmp(new(big.Int).Sub(params.P, params.Gy)), "[n-1]G must be -G")

	// A zero scalar yields the identity.
	zx, zy := curve.ScalarBaseMult([]byte{0})
	assert.Zero(t, zx.Sign())
	assert.Zero(t, zy.Sign())
}

func TestMatchesCurveParamsWhenAIsMinusThree(t *testing.T) {
	// For a = -3 curves the stdlib generic arithmetic is defined, so the two
	// implementations must agree on the same parameters.
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	curve := weierstrass.New(params, a)

	for _, k := range [][]byte{{1}, {2}, {3}, {0xFF, 0xFE}, {0xDE, 0xAD, 0xBE, 0xEF}} {
		wantX, wantY := params.ScalarBaseMult(k)
		gotX, gotY := curve.ScalarBaseMult(k)
		require.Zero(t, gotX.Cmp(wantX), "x mismatch for k=%x", k)
		require.Zero(t, gotY.Cmp(wantY), "y mismatch for k=%x", k)
	}
}

func TestA(t *testing.T) {
	curve := gbExampleCurve(t)
	a := curve.A()
	a.SetInt64(0)
	assert.NotZero(t, curve.A().Sign(), "A must return a copy")
}
