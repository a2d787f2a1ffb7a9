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

package field

import "errors"

// ErrNonVanishing is returned by the exact-division helpers below when the
// dividend does not actually vanish on the divisor's roots - i.e. the
// division would leave a nonzero remainder. The KZG and multiproof engines
// surface this as DivisionRemainder.
var ErrNonVanishing = errors.New("field: polynomial division left a nonzero remainder")

// EvalPoly evaluates a dense, coefficient-form (lowest degree first)
// polynomial at x using Horner's method.
func EvalPoly(poly []Scalar, x Scalar) Scalar {
	var y Scalar
	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(&y, &x)
		y.Add(&y, &poly[i])
	}
	return y
}

// AddPoly returns a+b, coefficient-wise, zero-extending the shorter operand.
func AddPoly(a, b []Scalar) []Scalar {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make([]Scalar, n)
	copy(res, a)
	for i := range b {
		res[i].Add(&res[i], &b[i])
	}
	return res
}

// ScalePoly returns c*a, coefficient-wise.
func ScalePoly(a []Scalar, c Scalar) []Scalar {
	res := make([]Scalar, len(a))
	for i := range a {
		res[i].Mul(&a[i], &c)
	}
	return res
}

// DivByLinearExact divides poly by (X - root), assuming poly(root) == 0.
// Returns ErrNonVanishing (DivisionRemainder) if that assumption doesn't
// hold. Implements the single-point polynomial division used throughout
// KZG opening and the multiproof witness polynomial.
func DivByLinearExact(poly []Scalar, root Scalar) ([]Scalar, error) {
	n := len(poly)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		if poly[0].IsZero() {
			return []Scalar{}, nil
		}
		return nil, ErrNonVanishing
	}
	quotient := make([]Scalar, n-1)
	quotient[n-2] = poly[n-1]
	for i := n - 2; i >= 1; i-- {
		var t Scalar
		t.Mul(&root, &quotient[i])
		t.Add(&t, &poly[i])
		quotient[i-1] = t
	}
	var rem Scalar
	rem.Mul(&root, &quotient[0])
	rem.Add(&rem, &poly[0])
	if !rem.IsZero() {
		return quotient, ErrNonVanishing
	}
	return quotient, nil
}

// mulLinearFactor returns f*(X-root), growing the degree by one. Mirrors
// gnark-crypto's ecc/bn254/shplonk multiplyLinearFactor.
func mulLinearFactor(f []Scalar, root Scalar) []Scalar {
	n := len(f)
	res := make([]Scalar, n+1)
	for i := 0; i < n; i++ {
		var t Scalar
		t.Mul(&f[i], &root)
		res[i].Sub(&res[i], &t)
		res[i+1].Add(&res[i+1], &f[i])
	}
	return res
}

// VanishingPoly returns prod_i (X - points[i]).
func VanishingPoly(points []Scalar) []Scalar {
	res := []Scalar{One()}
	for _, p := range points {
		res = mulLinearFactor(res, p)
	}
	return res
}

// DivExact divides f by the monic polynomial g, assuming g divides f with
// zero remainder; f is not modified. Mirrors gnark-crypto's
// ecc/bn254/shplonk div() (itself used for Z_T(X)/Z_{T\xi}(X)-style
// vanishing-polynomial division in the batched-set multiproof variant).
func DivExact(f, g []Scalar) ([]Scalar, error) {
	sizef := len(f)
	sizeg := len(g)
	if sizef < sizeg {
		return nil, ErrNonVanishing
	}
	work := make([]Scalar, sizef)
	copy(work, f)
	stop := sizeg - 1
	for i := sizef - 2; i >= stop; i-- {
		for j := 0; j < sizeg-1; j++ {
			var t Scalar
			t.Mul(&work[i+1], &g[sizeg-2-j])
			work[i-j].Sub(&work[i-j], &t)
		}
	}
	for i := 0; i < sizeg-1; i++ {
		if !work[i].IsZero() {
			return nil, ErrNonVanishing
		}
	}
	return work[sizeg-1:], nil
}

// LagrangeInterpolate returns the coefficient-form polynomial of degree <
// len(points) that evaluates to values[i] at points[i].
func LagrangeInterpolate(points, values []Scalar) []Scalar {
	n := len(points)
	full := VanishingPoly(points)
	coeffs := make([]Scalar, n)
	for i := 0; i < n; i++ {
		if values[i].IsZero() {
			continue
		}
		var negXi Scalar
		negXi.Neg(&points[i])
		linear := []Scalar{negXi, One()}
		fullCopy := append([]Scalar(nil), full...)
		qi, err := DivExact(fullCopy, linear)
		if err != nil {
			// full is divisible by (X-points[i]) by construction.
			panic("field: vanishing polynomial not divisible by its own root")
		}
		denom := EvalPoly(qi, points[i])
		var denomInv Scalar
		denomInv.Inverse(&denom)
		var coef Scalar
		coef.Mul(&values[i], &denomInv)
		coeffs = AddPoly(coeffs, ScalePoly(qi, coef))
	}
	return coeffs
}
