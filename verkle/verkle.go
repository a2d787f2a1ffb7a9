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

// Package verkle implements the width-ary Verkle tree: internal nodes hold
// a polynomial interpolating their children's hashes over a width-sized
// domain, committed with KZG; opening a path invokes the multiproof engine
// once for the whole root-to-leaf walk.
package verkle

import (
	"io"

	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/kzg"
	"github.com/k1910177/vc-scis2025/multiproof"
	"github.com/k1910177/vc-scis2025/path"
	"github.com/k1910177/vc-scis2025/transcript"
)

// group is one internal node: the polynomial interpolating its (possibly
// zero-padded) children's hashes, and the KZG commitment to that
// polynomial.
type group struct {
	poly []field.Scalar
	com  field.G1Point
}

// Proof is a Verkle opening: the height commitments along the root-to-leaf
// path (root first), plus the aggregated multiproof over all of them.
type Proof struct {
	Coms       []field.G1Point
	MultiProof multiproof.Proof
}

// Tree is a width-ary Verkle tree over BN254/KZG commitments.
type Tree struct {
	width  int
	domain *field.Domain
	ck     kzg.CommitKey
	vk     kzg.VerifyKey

	values []field.Scalar
	height int

	// groups[level][idx] is the internal node formed by grouping width
	// children of groups[level-1] (or, at level 0, of the raw leaf values).
	groups [][]group
	// evals[level][idx] are the (zero-padded) child hashes that were
	// interpolated into groups[level][idx].poly -- kept so Open can read
	// values[d] = H(child) without recomputing hashes.
	evals [][][]field.Scalar

	committed bool
}

// Setup runs KZG setup with max_degree = the domain size (width rounded up
// to a power of two), trims to obtain (ck, vk), and returns an empty tree
// ready for Commit.
func Setup(width int, rng io.Reader) (*Tree, error) {
	domain, err := field.NewDomain(width)
	if err != nil {
		return nil, err
	}
	// The domain's cardinality (next power of two at or above width) is
	// how many coefficients Interpolate actually returns, so the commit
	// key must be trimmed to that degree, not width.
	degree := domain.Size()
	pp, err := kzg.Setup(degree, rng)
	if err != nil {
		return nil, err
	}
	ck, vk, err := kzg.Trim(pp, degree)
	if err != nil {
		return nil, err
	}
	return &Tree{width: width, domain: domain, ck: ck, vk: vk}, nil
}

// Commit wraps each scalar in a conceptual Leaf, recursively groups into
// chunks of width (no padding of the chunk itself -- the last chunk may be
// short), and for each group zero-pads the evaluation vector up to width
// before interpolating and committing.
func (t *Tree) Commit(values []field.Scalar) {
	n := len(values)
	t.values = values
	t.height = path.CeilLogBase(n, t.width)
	if t.height == 0 {
		// A single leaf is still wrapped in one KZG-committed internal
		// node, matching build_recursive in the original, which always
		// returns an Internal node even for one child. CeilLogBase
		// reports 0 grouping levels for n <= 1, but the tree still
		// needs exactly one level to produce a verifiable commitment.
		t.height = 1
	}
	t.groups = nil
	t.evals = nil

	hashed := make([]field.Scalar, n)
	for i, v := range values {
		hashed[i] = transcript.HashScalarModFr(v)
	}

	for level := 0; level < t.height; level++ {
		numGroups := (len(hashed) + t.width - 1) / t.width
		levelGroups := make([]group, numGroups)
		levelEvals := make([][]field.Scalar, numGroups)
		parentHashed := make([]field.Scalar, numGroups)

		for g := 0; g < numGroups; g++ {
			start := g * t.width
			end := start + t.width
			if end > len(hashed) {
				end = len(hashed)
			}
			evals := make([]field.Scalar, t.width) // zero-padded
			copy(evals, hashed[start:end])

			poly := t.domain.Interpolate(evals)
			com, err := kzg.Commit(t.ck, poly)
			if err != nil {
				// CommitKey is sized to domain.Size() >= len(poly) by
				// construction; a failure here means Setup/Trim were
				// misconfigured relative to the domain, which Setup
				// prevents.
				panic(err)
			}

			levelGroups[g] = group{poly: poly, com: com}
			levelEvals[g] = evals
			parentHashed[g] = transcript.HashPointModFr(com)
		}

		t.groups = append(t.groups, levelGroups)
		t.evals = append(t.evals, levelEvals)
		hashed = parentHashed
	}

	t.committed = true
}

// RootHash returns H(root), the hash of the topmost internal node's
// commitment. Panics if Commit has not been called.
func (t *Tree) RootHash() field.Scalar {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	top := t.groups[t.height-1][0]
	return transcript.HashPointModFr(top.com)
}

type pathStep struct {
	level    int
	groupIdx int
	childPos int
}

// walkStepsRootFirst computes, for a leaf index, the sequence of
// (level, group index, child position within that group) tuples along the
// root-to-leaf path, root first. Levels are numbered the way Commit built
// them: level 0 groups raw leaves, level height-1 produces the root.
func (t *Tree) walkStepsRootFirst(index int) []pathStep {
	steps := make([]pathStep, t.height)
	idx := index
	for level := 0; level < t.height; level++ {
		groupIdx := idx / t.width
		childPos := idx % t.width
		steps[level] = pathStep{level: level, groupIdx: groupIdx, childPos: childPos}
		idx = groupIdx
	}
	// steps is currently leaf-first (level 0 first); reverse to root-first,
	// matching the root-to-leaf walk order open() builds its arrays in.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// Open decomposes index into height base-width digits MSB-first and walks
// root to leaf, accumulating the polynomial, commitment, evaluation point
// and claimed value at each level, then invokes the multiproof engine once
// over the whole path.
func (t *Tree) Open(index int) (field.Scalar, Proof, error) {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	if index < 0 || index >= len(t.values) {
		return field.Scalar{}, Proof{}, ErrInvalidIndex
	}

	steps := t.walkStepsRootFirst(index)

	statements := make([]multiproof.Statement, t.height)
	coms := make([]field.G1Point, t.height)
	for d, s := range steps {
		g := t.groups[s.level][s.groupIdx]
		statements[d] = multiproof.Statement{
			Commitment: g.com,
			Poly:       g.poly,
			Point:      t.domain.Element(s.childPos),
			Value:      t.evals[s.level][s.groupIdx][s.childPos],
		}
		coms[d] = g.com
	}

	proof, err := multiproof.Prove(t.ck, statements)
	if err != nil {
		return field.Scalar{}, Proof{}, err
	}

	return t.values[index], Proof{Coms: coms, MultiProof: proof}, nil
}

// Verify recomputes the digits and the per-level evaluation points, then
// rebuilds the claimed values array with the asymmetry the spec calls out:
// for d = 0 .. height-2, values[d] is the hash of the NEXT commitment down
// (proof.Coms[d+1]); the last entry is the hash of the claimed leaf value.
// The root commitment itself (proof.Coms[0]) is not cross-checked against a
// trusted root scalar here -- callers that need that guarantee must compare
// H(proof.Coms[0]) against RootHash() themselves.
func (t *Tree) Verify(index int, value field.Scalar, proof Proof) (bool, error) {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	if index < 0 || index >= len(t.values) {
		return false, ErrInvalidIndex
	}
	if len(proof.Coms) != t.height {
		return false, nil
	}

	digits := path.Decompose(index, t.height, t.width)

	statements := make([]multiproof.VerifyStatement, t.height)
	for d := 0; d < t.height; d++ {
		var val field.Scalar
		if d == t.height-1 {
			val = transcript.HashScalarModFr(value)
		} else {
			val = transcript.HashPointModFr(proof.Coms[d+1])
		}
		statements[d] = multiproof.VerifyStatement{
			Commitment: proof.Coms[d],
			Point:      t.domain.Element(digits[d]),
			Value:      val,
		}
	}

	return multiproof.Verify(t.vk, statements, proof.MultiProof)
}

// Height returns the committed tree's height.
func (t *Tree) Height() int {
	return t.height
}

// Width returns the tree's branching factor.
func (t *Tree) Width() int {
	return t.width
}
