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

package multiproof

import (
	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/kzg"
	"github.com/k1910177/vc-scis2025/transcript"
)

// BatchSetStatement is one polynomial's opening claim in the batched-set
// variant: instead of a single point z_j and value y_j, it carries its own
// multiset of points Z_j = {z_{j,k}} and the values the polynomial takes
// there. y_j is replaced by the Lagrange interpolant through the
// (point, value) pairs, and (X - z_j) by the vanishing polynomial of Z_j,
// grounded on the shplonk-style vanishing-polynomial division used
// elsewhere in this package.
type BatchSetStatement struct {
	Commitment field.G1Point
	Poly       []field.Scalar
	Points     []field.Scalar
	Values     []field.Scalar
}

// BatchSetVerifyStatement is the verifier-side counterpart: no polynomial.
type BatchSetVerifyStatement struct {
	Commitment field.G1Point
	Points     []field.Scalar
	Values     []field.Scalar
}

// ProveBatchSet is the batched-set analogue of Prove. Unlike the
// single-point variant, the transcript absorbs only the commitments: the
// points and values are encoded in the polynomials (L_j, Z_j) themselves.
func ProveBatchSet(ck kzg.CommitKey, statements []BatchSetStatement) (Proof, error) {
	n := len(statements)
	if n == 0 {
		return Proof{}, ErrNoPolynomials
	}

	tr := transcript.New()
	for _, s := range statements {
		tr.AppendPointAlways(s.Commitment)
	}
	r := tr.ChallengeScalar()

	var g []field.Scalar
	rPow := field.One()
	vanishings := make([][]field.Scalar, n)
	for i, s := range statements {
		lj := field.LagrangeInterpolate(s.Points, s.Values)
		vanishings[i] = field.VanishingPoly(s.Points)

		numerator := field.AddPoly(s.Poly, field.ScalePoly(lj, field.NegOne()))
		quot, err := field.DivExact(numerator, vanishings[i])
		if err != nil {
			return Proof{}, ErrDivisionRemainder
		}
		g = field.AddPoly(g, field.ScalePoly(quot, rPow))

		var next field.Scalar
		next.Mul(&rPow, &r)
		rPow = next
	}
	dCommit, err := kzg.Commit(ck, g)
	if err != nil {
		return Proof{}, err
	}

	tr2 := transcript.New()
	tr2.AppendPointAlways(dCommit)
	tr2.AppendScalarAlways(r)
	t := tr2.ChallengeScalar()

	var y field.Scalar
	var h []field.Scalar
	rPow = field.One()
	for i, s := range statements {
		denom := field.EvalPoly(vanishings[i], t)
		if denom.IsZero() {
			return Proof{}, ErrInvalidTranscript
		}
		var denomInv field.Scalar
		denomInv.Inverse(&denom)

		var coef field.Scalar
		coef.Mul(&rPow, &denomInv)

		lj := field.LagrangeInterpolate(s.Points, s.Values)
		ljt := field.EvalPoly(lj, t)
		var term field.Scalar
		term.Mul(&coef, &ljt)
		y.Add(&y, &term)

		h = field.AddPoly(h, field.ScalePoly(s.Poly, coef))

		var next field.Scalar
		next.Mul(&rPow, &r)
		rPow = next
	}

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

// VerifyBatchSet is the batched-set analogue of Verify.
func VerifyBatchSet(vk kzg.VerifyKey, statements []BatchSetVerifyStatement, proof Proof) (bool, error) {
	n := len(statements)
	if n == 0 {
		return false, ErrNoPolynomials
	}

	tr := transcript.New()
	for _, s := range statements {
		tr.AppendPointAlways(s.Commitment)
	}
	r := tr.ChallengeScalar()

	tr2 := transcript.New()
	tr2.AppendPointAlways(proof.D)
	tr2.AppendScalarAlways(r)
	t := tr2.ChallengeScalar()

	var y field.Scalar
	coms := make([]field.G1Point, n)
	coefs := make([]field.Scalar, n)
	rPow := field.One()
	for i, s := range statements {
		vanishing := field.VanishingPoly(s.Points)
		denom := field.EvalPoly(vanishing, t)
		if denom.IsZero() {
			return false, ErrInvalidTranscript
		}
		var denomInv field.Scalar
		denomInv.Inverse(&denom)

		var coef field.Scalar
		coef.Mul(&rPow, &denomInv)
		coefs[i] = coef
		coms[i] = s.Commitment

		lj := field.LagrangeInterpolate(s.Points, s.Values)
		ljt := field.EvalPoly(lj, t)
		var term field.Scalar
		term.Mul(&coef, &ljt)
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
