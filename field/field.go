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

// Package field adapts github.com/consensys/gnark-crypto's BN254 field,
// curve and pairing primitives to the shapes the rest of this module wants:
// a scalar type, affine G1/G2 point types, an MSM helper and a pairing
// check. Everything here is a thin wrapper; the actual arithmetic lives in
// gnark-crypto.
package field

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is an element of the BN254 scalar field Fr.
type Scalar = fr.Element

// G1Point and G2Point are affine BN254 curve points.
type G1Point = bn254.G1Affine
type G2Point = bn254.G2Affine

var ErrMSM = errors.New("field: multi-scalar multiplication failed")

var (
	g1Gen G1Point
	g2Gen G2Point
)

func init() {
	_, _, g1Gen, g2Gen = bn254.Generators()
}

// G1Generator returns the canonical BN254 G1 generator g.
func G1Generator() G1Point { return g1Gen }

// G2Generator returns the canonical BN254 G2 generator h.
func G2Generator() G2Point { return g2Gen }

// Zero returns the additive identity of Fr.
func Zero() Scalar {
	var z Scalar
	return z
}

// One returns the multiplicative identity of Fr.
func One() Scalar {
	var o Scalar
	o.SetOne()
	return o
}

// NegOne returns -1 in Fr.
func NegOne() Scalar {
	o := One()
	o.Neg(&o)
	return o
}

// RandomScalar draws a uniformly random element of Fr from rng. A nil rng
// defaults to crypto/rand.Reader. The caller owns the RNG: nothing here
// keeps global state, per the "RNG is passed explicitly" resource model.
func RandomScalar(rng io.Reader) (Scalar, error) {
	if rng == nil {
		rng = rand.Reader
	}
	modulus := fr.Modulus()
	v, err := rand.Int(rng, modulus)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.SetBigInt(v)
	return s, nil
}

// MSM computes sum_i scalars[i] * points[i] via gnark-crypto's variable-base
// multi-scalar multiplication.
func MSM(points []G1Point, scalars []Scalar) (G1Point, error) {
	var res G1Point
	if len(points) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1Point{}, ErrMSM
	}
	return res, nil
}

// PairingCheck reports whether the product of pairings e(P_i, Q_i) equals 1
// in GT. It is the multi_pairing(...).is_one() primitive referenced
// throughout the KZG and multiproof equations.
func PairingCheck(g1s []G1Point, g2s []G2Point) (bool, error) {
	return bn254.PairingCheck(g1s, g2s)
}
