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

import "errors"

var (
	// ErrDegreeIsZero is returned by Setup when max_degree < 1.
	ErrDegreeIsZero = errors.New("kzg: max degree must be at least 1")
	// ErrTrimExceedsSetup is returned by Trim when d exceeds the setup's
	// maximum degree.
	ErrTrimExceedsSetup = errors.New("kzg: trim degree exceeds setup degree")
	// ErrDivisionRemainder is returned by Open when (p(X)-p(z))/(X-z)
	// does not divide exactly.
	ErrDivisionRemainder = errors.New("kzg: exact division left a nonzero remainder")
	// ErrPolynomialTooLarge is returned by Commit when p has more
	// coefficients than the commit key has powers of g for.
	ErrPolynomialTooLarge = errors.New("kzg: polynomial degree exceeds commit key")
)
