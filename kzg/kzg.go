// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package kzg implements the single-point KZG polynomial commitment scheme
// over BN254: setup, trim, commit, open and check. No hiding is performed;
// every commitment is binding-only, matching the non-goal of
// zero-knowledge support.
package kzg

import (
	"io"
	"math/big"

	"github.com/k1910177/vc-scis2025/field"
)

func toBigInt(s field.Scalar) *big.Int {
	var v big.Int
	s.BigInt(&v)
	return &v
}

// Digest is a KZG commitment: a single G1 point.
type Digest = field.G1Point

// UniversalParams is the output of a trusted Setup: powers of the secret
// beta in both groups, up to the configured maximum degree. The secret
// itself is never retained.
type UniversalParams struct {
	PowersOfG []field.G1Point // g, beta*g, beta^2*g, ..., beta^maxDegree*g
	PowersOfH []field.G2Point // h, beta*h
	GammaG    field.G1Point   // pinned to the identity; no hiding
}

// CommitKey is the prover's trimmed view of the universal parameters: the
// first d+1 G1 powers.
type CommitKey struct {
	PowersOfG []field.G1Point
}

// VerifyKey is the verifier's view: the generators needed for the pairing
// check. GammaG is carried (pinned to the identity) purely so this struct's
// shape matches what an external ABI/calldata verifier expects; check()
// never substitutes it for G.
type VerifyKey struct {
	G      field.G1Point
	GammaG field.G1Point
	H      field.G2Point
	BetaH  field.G2Point
}

// Setup samples a secret beta from rng and derives the universal parameters
// up to maxDegree. beta is a local variable and is never returned or
// logged; the caller's rng is the only source of randomness, matching the
// "RNG is passed explicitly, no global state" resource model.
func Setup(maxDegree int, rng io.Reader) (UniversalParams, error) {
	if maxDegree < 1 {
		return UniversalParams{}, ErrDegreeIsZero
	}

	beta, err := field.RandomScalar(rng)
	if err != nil {
		return UniversalParams{}, err
	}

	g := field.G1Generator()
	h := field.G2Generator()

	powersOfG := make([]field.G1Point, maxDegree+1)
	betaPow := field.One()
	for i := 0; i <= maxDegree; i++ {
		powersOfG[i].ScalarMultiplication(&g, toBigInt(betaPow))
		var next field.Scalar
		next.Mul(&betaPow, &beta)
		betaPow = next
	}

	var betaH field.G2Point
	betaH.ScalarMultiplication(&h, toBigInt(beta))

	return UniversalParams{
		PowersOfG: powersOfG,
		PowersOfH: []field.G2Point{h, betaH},
		GammaG:    field.G1Point{},
	}, nil
}

// Trim returns the commit/verify key pair for polynomials of degree at most
// d. If d == 1 it silently bumps to 2, to avoid degenerate linear-case
// powers (matching the spec's explicit trim policy).
func Trim(pp UniversalParams, d int) (CommitKey, VerifyKey, error) {
	if d == 1 {
		d = 2
	}
	if d >= len(pp.PowersOfG) {
		return CommitKey{}, VerifyKey{}, ErrTrimExceedsSetup
	}
	ck := CommitKey{PowersOfG: append([]field.G1Point(nil), pp.PowersOfG[:d+1]...)}
	vk := VerifyKey{
		G:      pp.PowersOfG[0],
		GammaG: pp.GammaG,
		H:      pp.PowersOfH[0],
		BetaH:  pp.PowersOfH[1],
	}
	return ck, vk, nil
}

// Commit computes C = sum_i p_i * (beta^i g) via multi-scalar multiplication.
// No blinding term is added. Returns ErrPolynomialTooLarge rather than
// silently dropping high-order coefficients if p has more terms than ck has
// powers for.
func Commit(ck CommitKey, p []field.Scalar) (Digest, error) {
	if len(p) > len(ck.PowersOfG) {
		return Digest{}, ErrPolynomialTooLarge
	}
	return field.MSM(ck.PowersOfG[:len(p)], p)
}

// Open computes the witness polynomial q(X) = (p(X) - p(z)) / (X - z) and
// returns its commitment pi = C(q). Open evaluates p(z) itself, so the
// division is exact by construction; ErrDivisionRemainder is returned only
// if the division nevertheless reports a remainder.
func Open(ck CommitKey, p []field.Scalar, z field.Scalar) (Digest, error) {
	y := field.EvalPoly(p, z)
	shifted := append([]field.Scalar(nil), p...)
	shifted[0].Sub(&shifted[0], &y)
	q, err := field.DivByLinearExact(shifted, z)
	if err != nil {
		return Digest{}, ErrDivisionRemainder
	}
	return Commit(ck, q)
}

// Check verifies that C commits to a polynomial p with p(z) = y, given the
// opening proof pi, via the pairing equation
//
//	e(C - y*g + z*pi, h) * e(-pi, beta*h) == 1
//
// A cryptographic rejection is reported as (false, nil); a malformed input
// is reported as an error.
func Check(vk VerifyKey, c Digest, z, y field.Scalar, pi Digest) (bool, error) {
	var yG field.G1Point
	yG.ScalarMultiplication(&vk.G, toBigInt(y))

	var zPi field.G1Point
	zPi.ScalarMultiplication(&pi, toBigInt(z))

	var lhs field.G1Point
	lhs.Sub(&c, &yG)
	lhs.Add(&lhs, &zPi)

	var negPi field.G1Point
	negPi.Neg(&pi)

	return field.PairingCheck([]field.G1Point{lhs, negPi}, []field.G2Point{vk.H, vk.BetaH})
}
