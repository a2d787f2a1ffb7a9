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

// Package multiproof implements the aggregated KZG multiproof: given N
// polynomials p_j with commitments C_j, it proves p_j(z_j) = y_j for every
// j with a single constant-size proof (D, pi), via two Fiat-Shamir
// challenges r and t. This is the engine both the merkle-free Verkle tree
// path opening and the standalone polynomial tests build on.
package multiproof

import (
	"math/big"

	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/kzg"
	"github.com/k1910177/vc-scis2025/transcript"
)

func scalarBigInt(s field.Scalar) *big.Int {
	var v big.Int
	s.BigInt(&v)
	return &v
}

// Proof is the constant-size aggregated opening: a commitment to the
// witness polynomial g and a commitment to the final quotient.
type Proof struct {
	D  field.G1Point
	Pi field.G1Point
}

// Statement bundles one polynomial's opening claim: its commitment, the
// polynomial itself (needed by the prover only), the point it's opened at,
// and the claimed value.
type Statement struct {
	Commitment field.G1Point
	Poly       []field.Scalar
	Point      field.Scalar
	Value      field.Scalar
}

// Prove builds a single aggregated proof for p_j(z_j) = y_j, j = 0..N-1.
func Prove(ck kzg.CommitKey, statements []Statement) (Proof, error) {
	n := len(statements)
	if n == 0 {
		return Proof{}, ErrNoPolynomials
	}

	tr := transcript.New()
	for _, s := range statements {
		tr.AppendPoint(s.Commitment)
		tr.AppendScalar(s.Point)
		tr.AppendScalar(s.Value)
	}
	r := tr.ChallengeScalar()

	// g(X) = sum_j r^j * (p_j(X) - y_j) / (X - z_j)
	var g []field.Scalar
	rPow := field.One()
	for _, s := range statements {
		shifted := append([]field.Scalar(nil), s.Poly...)
		shifted[0].Sub(&shifted[0], &s.Value)
		quot, err := field.DivByLinearExact(shifted, s.Point)
		if err != nil {
			return Proof{}, ErrDivisionRemainder
		}
		term := field.ScalePoly(quot, rPow)
		g = field.AddPoly(g, term)

		var next field.Scalar
		next.Mul(&rPow, &r)
		rPow = next
	}
	dCommit, err := kzg.Commit(ck, g)
	if err != nil {
		return Proof{}, err
	}

	tr2 := transcript.New()
	tr2.AppendPoint(dCommit)
	tr2.AppendScalar(r)
	t := tr2.ChallengeScalar()

	// y = sum_j r^j * y_j / (t - z_j); h(X) = sum_j (r^j/(t-z_j)) * p_j(X)
	var y field.Scalar
	var h []field.Scalar
	rPow = field.One()
	for _, s := range statements {
		var denom field.Scalar
		denom.Sub(&t, &s.Point)
		if denom.IsZero() {
			return Proof{}, ErrInvalidTranscript
		}
		var denomInv field.Scalar
		denomInv.Inverse(&denom)

		var coef field.Scalar
		coef.Mul(&rPow, &denomInv)

		var term field.Scalar
		term.Mul(&coef, &s.Value)
		y.Add(&y, &term)

		h = field.AddPoly(h, field.ScalePoly(s.Poly, coef))

		var next field.Scalar
		next.Mul(&rPow, &r)
		rPow = next
	}

	// pi_poly(X) = (h(X) - g(X) - y) / (X - t)
	hMinusG := field.AddPoly(h, field.ScalePoly(g, field.NegOne()))
	hMinusG[0].Sub(&hMinusG[0], &y)
	piPoly, err := field.DivByLinearExact(hMinusG, t)
	if err != nil {
		return Proof{}, ErrDivisionRemainder
	}
	piCommit, err := kzg.Commit(ck, piPoly)
	if err != nil {
		return Proof{}, err
	}

	return Proof{D: dCommit, Pi: piCommit}, nil
}

// VerifyStatement bundles one polynomial's opening claim as seen by the
// verifier: no polynomial, only its commitment, opening point and claimed
// value.
type VerifyStatement struct {
	Commitment field.G1Point
	Point      field.Scalar
	Value      field.Scalar
}

// Verify recomputes r and t from the statements and proof, then accepts
// iff e(E - D - y*g + t*pi, h) * e(-pi, beta*h) == 1.
func Verify(vk kzg.VerifyKey, statements []VerifyStatement, proof Proof) (bool, error) {
	n := len(statements)
	if n == 0 {
		return false, ErrNoPolynomials
	}

	tr := transcript.New()
	for _, s := range statements {
		tr.AppendPoint(s.Commitment)
		tr.AppendScalar(s.Point)
		tr.AppendScalar(s.Value)
	}
	r := tr.ChallengeScalar()

	tr2 := transcript.New()
	tr2.AppendPoint(proof.D)
	tr2.AppendScalar(r)
	t := tr2.ChallengeScalar()

	var y field.Scalar
	coms := make([]field.G1Point, n)
	coefs := make([]field.Scalar, n)
	rPow := field.One()
	for i, s := range statements {
		var denom field.Scalar
		denom.Sub(&t, &s.Point)
		if denom.IsZero() {
			return false, ErrInvalidTranscript
		}
		var denomInv field.Scalar
		denomInv.Inverse(&denom)

		var coef field.Scalar
		coef.Mul(&rPow, &denomInv)
		coefs[i] = coef
		coms[i] = s.Commitment

		var term field.Scalar
		term.Mul(&coef, &s.Value)
		y.Add(&y, &term)

		var next field.Scalar
		next.Mul(&rPow, &r)
		rPow = next
	}

	e, err := field.MSM(coms, coefs)
	if err != nil {
		return false, err
	}

	var yG field.G1Point
	yG.ScalarMultiplication(&vk.G, scalarBigInt(y))

	var tPi field.G1Point
	tPi.ScalarMultiplication(&proof.Pi, scalarBigInt(t))

	var lhs field.G1Point
	lhs.Sub(&e, &proof.D)
	lhs.Sub(&lhs, &yG)
	lhs.Add(&lhs, &tPi)

	var negPi field.G1Point
	negPi.Neg(&proof.Pi)

	return field.PairingCheck([]field.G1Point{lhs, negPi}, []field.G2Point{vk.H, vk.BetaH})
}
