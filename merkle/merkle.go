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

// Package merkle implements the k-ary Keccak-256 Merkle tree: the simpler
// sibling core that shares the path/width arithmetic of package path with
// the Verkle tree, but commits/opens/verifies without any polynomial
// machinery.
package merkle

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/k1910177/vc-scis2025/path"
)

// ErrInvalidIndex is returned when an index is out of the committed range.
var ErrInvalidIndex = errors.New("merkle: index out of range")

// ErrUncommittedTree is the panic value for Open/Verify/Root calls before
// Commit, matching the spec's "Merkle tree panics on uncommitted access"
// error-handling design (the Merkle surface is purely in-process, unlike
// KZG/multiproof/Verkle, whose fallible operations return errors).
var ErrUncommittedTree = errors.New("merkle: tree has not been committed")

// Hash is a 32-byte Keccak-256 digest.
type Hash [32]byte

// Tree is a k-ary Merkle tree over Keccak-256 leaf hashes.
type Tree struct {
	k         int
	values    [][]byte
	levels    [][]Hash // levels[0] = leaf hashes, levels[len-1] = root (singleton)
	groups    [][][]Hash
	height    int
	committed bool
}

// Setup returns an empty tree of arity k >= 2.
func Setup(k int) *Tree {
	return &Tree{k: k}
}

func hashLeaf(value []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(value)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// groupLevel groups level into chunks of k, padding a short final chunk by
// repeating its last real sibling's hash, and returns the per-chunk parent
// hashes along with the (possibly padded) chunks themselves.
func groupLevel(level []Hash, k int) (parents []Hash, groups [][]Hash) {
	n := len(level)
	numGroups := (n + k - 1) / k
	parents = make([]Hash, numGroups)
	groups = make([][]Hash, numGroups)
	for g := 0; g < numGroups; g++ {
		start := g * k
		end := start + k
		var chunk []Hash
		if end <= n {
			chunk = append([]Hash(nil), level[start:end]...)
		} else {
			chunk = append([]Hash(nil), level[start:n]...)
			last := chunk[len(chunk)-1]
			for len(chunk) < k {
				chunk = append(chunk, last)
			}
		}
		groups[g] = chunk
		parents[g] = hashChunk(chunk)
	}
	return parents, groups
}

func hashChunk(chunk []Hash) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunk {
		h.Write(c[:])
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Commit hashes each value with Keccak-256 to form leaf hashes, then
// recursively groups consecutive chunks of k siblings into internal nodes
// until a single root remains.
func (t *Tree) Commit(values [][]byte) {
	n := len(values)
	leaves := make([]Hash, n)
	for i, v := range values {
		leaves[i] = hashLeaf(v)
	}

	t.values = values
	t.height = path.CeilLogBase(n, t.k)
	t.levels = [][]Hash{leaves}
	t.groups = nil

	level := leaves
	for len(level) > 1 {
		parents, groups := groupLevel(level, t.k)
		t.groups = append(t.groups, groups)
		t.levels = append(t.levels, parents)
		level = parents
	}
	t.committed = true
}

// RootHash returns the committed root. Panics if Commit has not been
// called.
func (t *Tree) RootHash() Hash {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	last := t.levels[len(t.levels)-1]
	return last[0]
}

// Open decomposes index into the tree's base-k digits and walks leaf to
// root via the stored groupings, recording at each level the k-1 sibling
// hashes in reverse child-index order (skipping the on-path child) and
// appending them to a running proof. The proof therefore lists levels
// leaf-first, and within each level the siblings in descending child-index
// order, which is the order verify() consumes directly.
func (t *Tree) Open(index int) ([]byte, []Hash, error) {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	n := len(t.values)
	if index < 0 || index >= n {
		return nil, nil, ErrInvalidIndex
	}

	proof := make([]Hash, 0, (t.k-1)*t.height)
	idx := index
	for step := 0; step < t.height; step++ {
		group := t.groups[step][idx/t.k]
		onPath := idx % t.k
		for pos := t.k - 1; pos >= 0; pos-- {
			if pos == onPath {
				continue
			}
			proof = append(proof, group[pos])
		}
		idx = idx / t.k
	}

	return t.values[index], proof, nil
}

// Verify reconstructs the path from the leaf upward using the supplied
// proof, and accepts iff the final hash equals RootHash().
func (t *Tree) Verify(index int, value []byte, proof []Hash) bool {
	if !t.committed {
		panic(ErrUncommittedTree)
	}
	if index < 0 || index >= len(t.values) {
		return false
	}
	if len(proof) != (t.k-1)*t.height {
		return false
	}

	digits := path.Decompose(index, t.height, t.k)
	current := hashLeaf(value)
	cursor := 0

	for level := t.height - 1; level >= 0; level-- {
		onPath := digits[level]
		slots := make([]Hash, t.k)
		slots[onPath] = current
		for pos := t.k - 1; pos >= 0; pos-- {
			if pos == onPath {
				continue
			}
			slots[pos] = proof[cursor]
			cursor++
		}
		current = hashChunk(slots)
	}

	return current == t.RootHash()
}

// Height returns the committed tree's height (number of internal levels).
func (t *Tree) Height() int {
	return t.height
}

// Arity returns the tree's branching factor k.
func (t *Tree) Arity() int {
	return t.k
}
