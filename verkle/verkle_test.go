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

package verkle

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/k1910177/vc-scis2025/field"
)

type randReader struct{ rng *rand.Rand }

func (r randReader) Read(p []byte) (int, error) {
	r.rng.Read(p)
	return len(p), nil
}

func scalarsFromInts(values ...int64) []field.Scalar {
	out := make([]field.Scalar, len(values))
	for i, v := range values {
		out[i].SetInt64(v)
	}
	return out
}

// V1/V2: width=4, n=16, values 1..16. height=2. open(i=2) returns value=3;
// verify accepts; verify with value+1 rejects.
func TestV1V2(t *testing.T) {
	rng := rand.New(rand.NewPCG(100, 200))
	tree, err := Setup(4, randReader{rng})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	ints := make([]int64, 16)
	for i := range ints {
		ints[i] = int64(i + 1)
	}
	values := scalarsFromInts(ints...)
	tree.Commit(values)

	if tree.Height() != 2 {
		t.Fatalf("expected height 2, got %d", tree.Height())
	}

	value, proof, err := tree.Open(2)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := scalarsFromInts(3)[0]
	if !value.Equal(&want) {
		t.Fatalf("opened wrong value: got %v want 3", value)
	}

	ok, err := tree.Verify(2, value, proof)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("verify rejected a valid V1 proof:\n%s", spew.Sdump(proof))
	}

	// V2: verify with value+1 rejects.
	one := field.One()
	var wrong field.Scalar
	wrong.Add(&value, &one)
	ok, err = tree.Verify(2, wrong, proof)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify accepted a mismatched value (V2)")
	}
}

func TestSoundnessMutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree, err := Setup(4, randReader{rng})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	ints := make([]int64, 16)
	for i := range ints {
		ints[i] = int64(i + 1)
	}
	values := scalarsFromInts(ints...)
	tree.Commit(values)

	value, proof, err := tree.Open(5)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ok, err := tree.Verify(5, value, proof)
	if err != nil || !ok {
		t.Fatalf("expected a valid proof to verify, got ok=%v err=%v", ok, err)
	}

	mutateIndex, err := tree.Verify(4, value, proof)
	if err == nil && mutateIndex {
		t.Fatal("verify accepted a proof against the wrong index")
	}

	mutatedCom := proof
	mutatedCom.Coms = append([]field.G1Point(nil), proof.Coms...)
	mutatedCom.Coms[0].X.Add(&mutatedCom.Coms[0].X, &mutatedCom.Coms[0].X)
	ok, err = tree.Verify(5, value, mutatedCom)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify accepted a proof with a mutated commitment")
	}

	mutatedPi := proof
	mutatedPi.MultiProof.Pi.X.Add(&mutatedPi.MultiProof.Pi.X, &mutatedPi.MultiProof.Pi.X)
	ok, err = tree.Verify(5, value, mutatedPi)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify accepted a proof with a mutated pi")
	}
}

// Completeness across width in {2..8} for a representative spread of n.
func TestCompleteness(t *testing.T) {
	rng := rand.New(rand.NewPCG(55, 66))
	for width := 2; width <= 8; width++ {
		for _, n := range []int{1, 2, 5, 9, 17, 33, 64} {
			tree, err := Setup(width, randReader{rng})
			if err != nil {
				t.Fatalf("width=%d setup: %v", width, err)
			}
			ints := make([]int64, n)
			for i := range ints {
				ints[i] = int64(i + 1)
			}
			values := scalarsFromInts(ints...)
			tree.Commit(values)

			for i := 0; i < n; i++ {
				value, proof, err := tree.Open(i)
				if err != nil {
					t.Fatalf("width=%d n=%d open(%d): %v", width, n, i, err)
				}
				ok, err := tree.Verify(i, value, proof)
				if err != nil {
					t.Fatalf("width=%d n=%d verify(%d): %v", width, n, i, err)
				}
				if !ok {
					t.Fatalf("width=%d n=%d verify(%d) rejected a valid proof", width, n, i)
				}
			}
		}
	}
}

func TestProofSizeLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	tree, err := Setup(4, randReader{rng})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ints := make([]int64, 64)
	for i := range ints {
		ints[i] = int64(i + 1)
	}
	tree.Commit(scalarsFromInts(ints...))

	_, proof, err := tree.Open(37)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(proof.Coms) != tree.Height() {
		t.Fatalf("proof size: got %d commitments, want %d", len(proof.Coms), tree.Height())
	}
}

func TestUncommittedTreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on uncommitted access")
		}
	}()
	rng := rand.New(rand.NewPCG(1, 1))
	tree, _ := Setup(4, randReader{rng})
	tree.RootHash()
}
