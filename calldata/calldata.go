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

// Package calldata encodes proofs the way the on-chain verifier contract
// expects to receive them. The contract itself is out of scope; only the
// bit-layout its calldata decoder relies on is defined here.
package calldata

import (
	"github.com/holiman/uint256"

	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/merkle"
	"github.com/k1910177/vc-scis2025/verkle"
)

// G1Point is a pair of uint256 coordinates, the calldata shape of a BN254
// G1 affine point.
type G1Point struct {
	X, Y uint256.Int
}

// G2Point is a pair of Fp2 coordinates, each encoded [c1, c0] (imaginary
// part first) to match the pairing precompile's Fp2 encoding.
type G2Point struct {
	X, Y [2]uint256.Int
}

func encodeFp(out *uint256.Int, b [32]byte) {
	out.SetBytes(b[:])
}

// EncodeG1 converts a field.G1Point into its calldata form.
func EncodeG1(p field.G1Point) G1Point {
	var out G1Point
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	encodeFp(&out.X, xb)
	encodeFp(&out.Y, yb)
	return out
}

// EncodeG2 converts a field.G2Point into its calldata form, ordering each
// Fp2 coordinate's limbs [c1, c0].
func EncodeG2(p field.G2Point) G2Point {
	var out G2Point
	x0, x1 := p.X.A0.Bytes(), p.X.A1.Bytes()
	y0, y1 := p.Y.A0.Bytes(), p.Y.A1.Bytes()
	encodeFp(&out.X[0], x1)
	encodeFp(&out.X[1], x0)
	encodeFp(&out.Y[0], y1)
	encodeFp(&out.Y[1], y0)
	return out
}

// VerkleProof is the calldata shape
// (commitments: G1Point[], multiproof: {D: G1Point, pi: G1Point}).
type VerkleProof struct {
	Commitments []G1Point
	D, Pi       G1Point
}

// EncodeVerkleProof lays out a verkle.Proof the way the on-chain verifier
// expects it: one G1Point per level, followed by the multiproof's (D, pi).
func EncodeVerkleProof(p verkle.Proof) VerkleProof {
	coms := make([]G1Point, len(p.Coms))
	for i, c := range p.Coms {
		coms[i] = EncodeG1(c)
	}
	return VerkleProof{
		Commitments: coms,
		D:           EncodeG1(p.MultiProof.D),
		Pi:          EncodeG1(p.MultiProof.Pi),
	}
}

// VerifierParams is the deploy-time parameterization of the on-chain
// Verkle verifier: minus beta*h as a G2Point, the tree width, and the
// domain's first non-trivial element omega.
type VerifierParams struct {
	NegBetaH G2Point
	Width    uint64
	Omega    uint256.Int
}

// EncodeVerifierParams builds the deploy-time parameters for a verifier
// keyed to vk and the tree's domain.
func EncodeVerifierParams(vk field.G2Point, width int, omega field.Scalar) VerifierParams {
	var negBetaH field.G2Point
	negBetaH.Neg(&vk)
	var out VerifierParams
	out.NegBetaH = EncodeG2(negBetaH)
	out.Width = uint64(width)
	omegaBytes := omega.Bytes()
	out.Omega.SetBytes32(omegaBytes[:])
	return out
}

// MerkleProof is the calldata shape: a flat array of 32-byte hashes in the
// order produced by merkle.Tree.Open, parameterized by width = k.
type MerkleProof struct {
	Width uint64
	Path  [][32]byte
}

// EncodeMerkleProof converts a merkle sibling-hash proof to its calldata
// form; width must be the tree's arity (k).
func EncodeMerkleProof(width int, proof []merkle.Hash) MerkleProof {
	path := make([][32]byte, len(proof))
	for i, h := range proof {
		path[i] = h
	}
	return MerkleProof{Width: uint64(width), Path: path}
}
