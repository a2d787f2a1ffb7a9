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

import "testing"

func scalarsFromInts(values ...int64) []Scalar {
	out := make([]Scalar, len(values))
	for i, v := range values {
		out[i].SetInt64(v)
	}
	return out
}

func TestDivByLinearExact(t *testing.T) {
	// p(X) = (X-3)(X+2) = X^2 - X - 6
	p := scalarsFromInts(-6, -1, 1)
	root := scalarsFromInts(3)[0]
	q, err := DivByLinearExact(p, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := scalarsFromInts(2, 1) // (X+2)
	for i := range want {
		if !q[i].Equal(&want[i]) {
			t.Fatalf("quotient[%d] = %v, want %v", i, q[i], want[i])
		}
	}
}

func TestDivByLinearExactRemainder(t *testing.T) {
	p := scalarsFromInts(1, 1) // X+1, root 3 does not vanish it
	root := scalarsFromInts(3)[0]
	if _, err := DivByLinearExact(p, root); err != ErrNonVanishing {
		t.Fatalf("expected ErrNonVanishing, got %v", err)
	}
}

func TestLagrangeInterpolateRoundTrip(t *testing.T) {
	points := scalarsFromInts(1, 2, 3, 4)
	poly := scalarsFromInts(5, -2, 1, 0) // 5 - 2X + X^2
	values := make([]Scalar, len(points))
	for i, x := range points {
		values[i] = EvalPoly(poly, x)
	}

	got := LagrangeInterpolate(points, values)
	for _, x := range points {
		want := EvalPoly(poly, x)
		v := EvalPoly(got, x)
		if !v.Equal(&want) {
			t.Fatalf("interpolated poly disagrees at %v: got %v want %v", x, v, want)
		}
	}
}

func TestDomainInterpolate(t *testing.T) {
	d, err := NewDomain(5)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	evals := scalarsFromInts(10, 20, 30, 40, 50)
	poly := d.Interpolate(evals)
	for i := 0; i < 5; i++ {
		got := EvalPoly(poly, d.Element(i))
		if !got.Equal(&evals[i]) {
			t.Fatalf("domain element %d: got %v want %v", i, got, evals[i])
		}
	}
}

func TestNewDomainRejectsNonPositiveWidth(t *testing.T) {
	if _, err := NewDomain(0); err != ErrInvalidWidth {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

// TestDomainElementIsRootOfUnity confirms Element(i) = omega^i for the
// domain's generator omega, not the sequential point i+1: omega^size == 1
// and omega itself is not 2 (the old sequential domain's Element(1)).
func TestDomainElementIsRootOfUnity(t *testing.T) {
	d, err := NewDomain(5) // rounds up to an 8-element domain
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	if d.Size() != 8 {
		t.Fatalf("expected domain size 8 for width 5, got %d", d.Size())
	}
	omega := d.Element(1)
	two := scalarsFromInts(2)[0]
	if omega.Equal(&two) {
		t.Fatal("Element(1) must not be the sequential point 2")
	}
	got := One()
	for i := 0; i < d.Size(); i++ {
		got.Mul(&got, &omega)
	}
	one := One()
	if !got.Equal(&one) {
		t.Fatalf("omega^size should be 1, got %v", got)
	}
}

func TestMSMAndPairingCheck(t *testing.T) {
	g := G1Generator()
	h := G2Generator()
	one := scalarsFromInts(1)[0]

	com, err := MSM([]G1Point{g}, []Scalar{one})
	if err != nil {
		t.Fatalf("msm: %v", err)
	}
	if !com.Equal(&g) {
		t.Fatal("MSM([g],[1]) != g")
	}

	var negG G1Point
	negG.Neg(&g)
	ok, err := PairingCheck([]G1Point{g, negG}, []G2Point{h, h})
	if err != nil {
		t.Fatalf("pairing check: %v", err)
	}
	if !ok {
		t.Fatal("e(g,h)*e(-g,h) should equal 1")
	}
}
