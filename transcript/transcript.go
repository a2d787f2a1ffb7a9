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

// Package transcript implements the Fiat-Shamir random oracle shared by the
// multiproof and verkle packages: a Keccak-256 absorb/squeeze transcript with
// the zero-limb-skip absorption rule the on-chain verifier depends on.
package transcript

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/k1910177/vc-scis2025/field"
)

// fpElement is satisfied by bn254.G1Affine's X/Y coordinate type
// (ecc/bn254/fp.Element), which this package never imports directly since
// field already owns the gnark-crypto dependency surface.
type fpElement interface {
	Bytes() [32]byte
}

// Transcript accumulates bytes to be hashed into a challenge. It is not
// safe for concurrent use; one Transcript belongs to one proving or
// verifying session.
type Transcript struct {
	state []byte
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// AppendScalar absorbs a scalar's big-endian encoding, skipping it entirely
// if it is zero. This "skip-zero-limb" rule is mandatory for on-chain
// verifier compatibility and must never be "fixed" away.
func (t *Transcript) AppendScalar(s field.Scalar) {
	if s.IsZero() {
		return
	}
	t.appendBytes(scalarBytes(s))
}

// AppendScalarAlways absorbs a scalar's big-endian encoding unconditionally,
// even if it is zero. Used by the batched-set multiproof variant to absorb
// the challenge r without the zero-skip rule.
func (t *Transcript) AppendScalarAlways(s field.Scalar) {
	t.appendBytes(scalarBytes(s))
}

// AppendPoint absorbs a G1 point's two base-field coordinates (X, Y), each
// skipped individually if zero.
func (t *Transcript) AppendPoint(p field.G1Point) {
	x := fieldElementBytes(&p.X)
	y := fieldElementBytes(&p.Y)
	if !isAllZero(x) {
		t.appendBytes(x)
	}
	if !isAllZero(y) {
		t.appendBytes(y)
	}
}

// AppendPointAlways absorbs both coordinates of p unconditionally.
func (t *Transcript) AppendPointAlways(p field.G1Point) {
	t.appendBytes(fieldElementBytes(&p.X))
	t.appendBytes(fieldElementBytes(&p.Y))
}

func (t *Transcript) appendBytes(b []byte) {
	t.state = append(t.state, b...)
}

// ChallengeScalar hashes the accumulated state with Keccak-256, reduces the
// digest modulo Fr, clears the transcript state, and returns the result.
// Clearing the state matches the teacher's ChallengeScalar (state reset
// after each squeeze), keeping successive challenges independent draws over
// disjoint absorptions.
func (t *Transcript) ChallengeScalar() field.Scalar {
	digest := sha3.NewLegacyKeccak256()
	digest.Write(t.state)
	t.state = nil

	sum := digest.Sum(nil)
	return scalarFromDigest(sum)
}

// HashPointModFr is the standalone H(Internal{commitment}) node-hashing
// primitive: Keccak256 over the point's field elements, skipping zero
// elements, reduced modulo Fr.
func HashPointModFr(p field.G1Point) field.Scalar {
	tr := New()
	tr.AppendPoint(p)
	digest := sha3.NewLegacyKeccak256()
	digest.Write(tr.state)
	return scalarFromDigest(digest.Sum(nil))
}

// HashScalarModFr is the standalone H(Leaf{v}) node-hashing primitive:
// Keccak256 over v's big-endian encoding, reduced modulo Fr.
func HashScalarModFr(v field.Scalar) field.Scalar {
	digest := sha3.NewLegacyKeccak256()
	digest.Write(scalarBytes(v))
	return scalarFromDigest(digest.Sum(nil))
}

func scalarFromDigest(digest []byte) field.Scalar {
	var v big.Int
	v.SetBytes(digest)
	var s field.Scalar
	s.SetBigInt(&v)
	return s
}

func scalarBytes(s field.Scalar) []byte {
	b := s.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

func fieldElementBytes(e fpElement) []byte {
	b := e.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
