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
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/kzg"
	"github.com/k1910177/vc-scis2025/transcript"
)

type randReader struct{ rng *rand.Rand }

func (r randReader) Read(p []byte) (int, error) {
	r.rng.Read(p)
	return len(p), nil
}

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

func setup(t *testing.T, rng *rand.Rand, degree int) (kzg.CommitKey, kzg.VerifyKey) {
	t.Helper()
	pp, err := kzg.Setup(degree, randReader{rng})
	if err != nil {
		t.Fatalf("kzg setup: %v", err)
	}
	ck, vk, err := kzg.Trim(pp, degree)
	if err != nil {
		t.Fatalf("kzg trim: %v", err)
	}
	return ck, vk
}

// MP1: multiproof on two random degree-10 polynomials at two distinct
// points verifies; corrupting pi fails.
func TestMP1ProveVerify(t *testing.T) {
	rng := rand.New(rand.NewPCG(10, 20))
	ck, vk := setup(t, rng, 10)

	p1 := randomPoly(rng, 10)
	p2 := randomPoly(rng, 10)
	c1, err := kzg.Commit(ck, p1)
	if err != nil {
		t.Fatalf("commit p1: %v", err)
	}
	c2, err := kzg.Commit(ck, p2)
	if err != nil {
		t.Fatalf("commit p2: %v", err)
	}

	z1, _ := field.RandomScalar(randReader{rng})
	z2, _ := field.RandomScalar(randReader{rng})
	y1 := field.EvalPoly(p1, z1)
	y2 := field.EvalPoly(p2, z2)

	statements := []Statement{
		{Commitment: c1, Poly: p1, Point: z1, Value: y1},
		{Commitment: c2, Poly: p2, Point: z2, Value: y2},
	}
	proof, err := Prove(ck, statements)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	verifyStatements := []VerifyStatement{
		{Commitment: c1, Point: z1, Value: y1},
		{Commitment: c2, Point: z2, Value: y2},
	}
	ok, err := Verify(vk, verifyStatements, proof)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("verify rejected a valid multiproof:\n%s", spew.Sdump(proof))
	}

	corrupted := proof
	corrupted.Pi.X.Add(&corrupted.Pi.X, &corrupted.Pi.X)
	ok, err = Verify(vk, verifyStatements, corrupted)
	if err != nil {
		t.Fatalf("verify corrupted: %v", err)
	}
	if ok {
		t.Fatal("verify accepted a multiproof with a corrupted pi")
	}
}

func TestProveRejectsEmptyStatements(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	ck, _ := setup(t, rng, 4)
	if _, err := Prove(ck, nil); err != ErrNoPolynomials {
		t.Fatalf("expected ErrNoPolynomials, got %v", err)
	}
}

// A test must construct a value whose encoding contains a zero limb and
// confirm the prover and an independent reference transcript agree: the
// zero-skip rule in transcript absorption is unusual and must be
// preserved exactly for on-chain compatibility.
func TestZeroLimbAbsorptionMatchesReferenceTranscript(t *testing.T) {
	var zero field.Scalar // the zero scalar: its encoding is all-zero limbs
	one := field.One()

	tr := transcript.New()
	tr.AppendScalar(zero) // must be skipped entirely
	tr.AppendScalar(one)
	got := tr.ChallengeScalar()

	ref := transcript.New()
	ref.AppendScalar(one) // reference transcript never saw the zero at all
	want := ref.ChallengeScalar()

	if !got.Equal(&want) {
		t.Fatalf("zero-limb absorption changed the transcript: got %v want %v", got, want)
	}
}
