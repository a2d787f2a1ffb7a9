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

package kzg

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/k1910177/vc-scis2025/field"
)

func randomPoly(rng *rand.Rand, degree int) []field.Scalar {
	poly := make([]field.Scalar, degree+1)
	for i := range poly {
		var b [32]byte
		rng.Read(b[:])
		var s field.Scalar
		s.SetBytes(b[:])
		poly[i] = s
	}
	return poly
}

// K1: KZG on a degree-10 random polynomial: check(vk, commit(p), z, p(z),
// open(p,z)) accepts for a random z.
func TestK1CommitOpenCheck(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pp, err := Setup(10, randReaderFrom(rng))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ck, vk, err := Trim(pp, 10)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}

	p := randomPoly(rng, 10)
	c, err := Commit(ck, p)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	z, err := field.RandomScalar(randReaderFrom(rng))
	if err != nil {
		t.Fatalf("random z: %v", err)
	}
	y := field.EvalPoly(p, z)

	pi, err := Open(ck, p, z)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ok, err := Check(vk, c, z, y, pi)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !ok {
		t.Fatalf("check rejected a valid opening:\ncommitment=%s\nproof=%s", spew.Sdump(c), spew.Sdump(pi))
	}
}

func TestCheckRejectsWrongValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	pp, err := Setup(6, randReaderFrom(rng))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ck, vk, err := Trim(pp, 6)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}

	p := randomPoly(rng, 6)
	c, err := Commit(ck, p)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	z, _ := field.RandomScalar(randReaderFrom(rng))
	y := field.EvalPoly(p, z)
	pi, err := Open(ck, p, z)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	wrongY := field.One()
	wrongY.Add(&wrongY, &y)
	ok, err := Check(vk, c, z, wrongY, pi)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Fatal("check accepted a mismatched value")
	}
}

func TestSetupRejectsZeroDegree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	if _, err := Setup(0, randReaderFrom(rng)); err != ErrDegreeIsZero {
		t.Fatalf("expected ErrDegreeIsZero, got %v", err)
	}
}

func TestTrimBumpsLinearCase(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	pp, err := Setup(4, randReaderFrom(rng))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ck, _, err := Trim(pp, 1)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}
	if len(ck.PowersOfG) != 3 {
		t.Fatalf("expected d=1 to bump to 2 (3 powers), got %d", len(ck.PowersOfG))
	}
}

func TestCommitRejectsOverDegreePolynomial(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	pp, err := Setup(4, randReaderFrom(rng))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ck, _, err := Trim(pp, 4)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}
	p := randomPoly(rng, 5) // 6 coefficients, one more than ck holds
	if _, err := Commit(ck, p); err != ErrPolynomialTooLarge {
		t.Fatalf("expected ErrPolynomialTooLarge, got %v", err)
	}
}

// randReaderFrom adapts a math/rand/v2 source to an io.Reader for the
// field package's explicit-RNG API, keeping these tests deterministic.
func randReaderFrom(rng *rand.Rand) randReader {
	return randReader{rng}
}

type randReader struct{ rng *rand.Rand }

func (r randReader) Read(p []byte) (int, error) {
	r.rng.Read(p)
	return len(p), nil
}
