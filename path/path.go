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

// Package path holds the base-w path/digit arithmetic shared by the merkle
// and verkle trees: how many levels a tree of a given base needs to reach a
// leaf count, and how a leaf index decomposes into per-level child
// indices along the root-to-leaf path.
package path

// CeilLogBase returns ceil(log_base(n)), the number of levels a base-ary
// tree needs to address n leaves. CeilLogBase(1, base) is 0 (a single leaf
// needs no internal levels).
func CeilLogBase(n, base int) int {
	if n <= 1 {
		return 0
	}
	levels := 0
	capacity := 1
	for capacity < n {
		capacity *= base
		levels++
	}
	return levels
}

// Decompose returns the base-w digits of index, most-significant first,
// zero-padded to exactly height digits, so that
// sum(path[d] * w^(height-1-d) for d in range(height)) == index.
func Decompose(index, height, w int) []int {
	digits := make([]int, height)
	for d := height - 1; d >= 0; d-- {
		digits[d] = index % w
		index /= w
	}
	return digits
}
