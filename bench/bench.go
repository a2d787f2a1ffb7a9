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

// Package bench times commit/open/verify across tree sizes for both the
// Merkle and Verkle schemes and renders the results as a CSV report. It is
// an external collaborator: it only talks to merkle/verkle through their
// public setup/commit/open/verify surface.
package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/holiman/uint256"

	"github.com/k1910177/vc-scis2025/field"
	"github.com/k1910177/vc-scis2025/merkle"
	"github.com/k1910177/vc-scis2025/verkle"
)

// Config describes one (scheme, width, n) sweep point.
type Config struct {
	Scheme string // "merkle" or "verkle"
	Width  int
	N      int
	Seed   uint64
}

// Row is one line of the CSV report: a single configuration's timings and
// the proof size it produced, opening index N/2.
type Row struct {
	Scheme      string
	Width       int
	N           int
	CommitNanos int64
	OpenNanos   int64
	VerifyNanos int64
	ProofSize   uint64 // bytes, as a fixed-width integer for the CSV writer
	Verified    bool
}

type seededReader struct{ rng *rand.Rand }

func (r seededReader) Read(p []byte) (int, error) {
	r.rng.Read(p)
	return len(p), nil
}

// RunMerkle runs Setup, then times Commit/Open/Verify for a k-ary Merkle
// tree of n random 32-byte leaves, opening the middle index.
func RunMerkle(cfg Config) (Row, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5a5a5a5a))
	values := make([][]byte, cfg.N)
	for i := range values {
		v := make([]byte, 32)
		rng.Read(v)
		values[i] = v
	}

	tree := merkle.Setup(cfg.Width)

	start := time.Now()
	tree.Commit(values)
	commitElapsed := time.Since(start)

	index := cfg.N / 2
	start = time.Now()
	value, proof, err := tree.Open(index)
	openElapsed := time.Since(start)
	if err != nil {
		return Row{}, fmt.Errorf("bench: merkle open: %w", err)
	}

	start = time.Now()
	ok := tree.Verify(index, value, proof)
	verifyElapsed := time.Since(start)

	return Row{
		Scheme:      "merkle",
		Width:       cfg.Width,
		N:           cfg.N,
		CommitNanos: commitElapsed.Nanoseconds(),
		OpenNanos:   openElapsed.Nanoseconds(),
		VerifyNanos: verifyElapsed.Nanoseconds(),
		ProofSize:   uint64(32 * len(proof)),
		Verified:    ok,
	}, nil
}

// RunVerkle runs Setup, then times Commit/Open/Verify for a width-ary
// Verkle tree of n random scalars, opening the middle index.
func RunVerkle(cfg Config) (Row, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xc0ffee))
	tree, err := verkle.Setup(cfg.Width, seededReader{rng})
	if err != nil {
		return Row{}, fmt.Errorf("bench: verkle setup: %w", err)
	}

	values := make([]field.Scalar, cfg.N)
	for i := range values {
		var v [32]byte
		rng.Read(v[:])
		values[i].SetBytes(v[:])
	}

	start := time.Now()
	tree.Commit(values)
	commitElapsed := time.Since(start)

	index := cfg.N / 2
	start = time.Now()
	value, proof, err := tree.Open(index)
	openElapsed := time.Since(start)
	if err != nil {
		return Row{}, fmt.Errorf("bench: verkle open: %w", err)
	}

	start = time.Now()
	ok, err := tree.Verify(index, value, proof)
	verifyElapsed := time.Since(start)
	if err != nil {
		return Row{}, fmt.Errorf("bench: verkle verify: %w", err)
	}

	// 2 G1 points in the multiproof plus one G1 per level, 64 bytes each.
	proofSize := uint64(64*2 + 64*len(proof.Coms))

	return Row{
		Scheme:      "verkle",
		Width:       cfg.Width,
		N:           cfg.N,
		CommitNanos: commitElapsed.Nanoseconds(),
		OpenNanos:   openElapsed.Nanoseconds(),
		VerifyNanos: verifyElapsed.Nanoseconds(),
		ProofSize:   proofSize,
		Verified:    ok,
	}, nil
}

// Header is the CSV column order FormatRow encodes Row values in.
var Header = []string{"scheme", "width", "n", "commit_ns", "open_ns", "verify_ns", "proof_size", "verified"}

// FormatRow renders a Row as CSV fields in Header order. Proof size is
// formatted through uint256 rather than strconv so that a future calldata
// width change (the on-chain verifier's actual field width) only touches
// this one conversion.
func FormatRow(r Row) []string {
	size := new(uint256.Int).SetUint64(r.ProofSize)
	return []string{
		r.Scheme,
		fmt.Sprintf("%d", r.Width),
		fmt.Sprintf("%d", r.N),
		fmt.Sprintf("%d", r.CommitNanos),
		fmt.Sprintf("%d", r.OpenNanos),
		fmt.Sprintf("%d", r.VerifyNanos),
		size.Dec(),
		fmt.Sprintf("%t", r.Verified),
	}
}
