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

import "errors"

var (
	// ErrNoPolynomials is returned when Prove/Verify is called with N=0.
	ErrNoPolynomials = errors.New("multiproof: at least one polynomial is required")
	// ErrInvalidTranscript is returned when the squeezed evaluation
	// challenge t collides with one of the opening points z_j.
	ErrInvalidTranscript = errors.New("multiproof: evaluation challenge collided with an opening point")
	// ErrDivisionRemainder is returned when a claimed y_j does not match
	// p_j(z_j), so the witness polynomial's exact division fails.
	ErrDivisionRemainder = errors.New("multiproof: exact division left a nonzero remainder")
)
