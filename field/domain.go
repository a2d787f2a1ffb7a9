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

package field

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// ErrInvalidWidth is returned by NewDomain for a non-positive width.
var ErrInvalidWidth = errors.New("field: domain width must be positive")

// Domain is the roots-of-unity evaluation domain used to turn a Verkle
// internal node's Width children into a degree-(size-1) polynomial, where
// size is the next power of two at or above Width. This mirrors
// ark_poly::GeneralEvaluationDomain, which rounds its requested size up to
// the next power of two the same way; Width itself need not be a power of
// two, only the underlying domain is.
type Domain struct {
	Width  int
	domain *fft.Domain
	powers []Scalar // powers[i] = Generator^i, i in [0, domain.Cardinality)
}

// NewDomain builds the roots-of-unity domain covering width evaluation
// points. The domain's actual cardinality is the next power of two at or
// above width; Element/Interpolate zero-pad the unused slots the same way
// a short final group of Verkle children is zero-padded before committing.
func NewDomain(width int) (*Domain, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	d := fft.NewDomain(uint64(width))
	size := int(d.Cardinality)
	powers := make([]Scalar, size)
	powers[0] = One()
	for i := 1; i < size; i++ {
		powers[i].Mul(&powers[i-1], &d.Generator)
	}
	return &Domain{Width: width, domain: d, powers: powers}, nil
}

// Element returns omega^i, the i-th point of the domain, i in
// [0, Width).
func (d *Domain) Element(i int) Scalar {
	return d.powers[i]
}

// Points returns the Width evaluation points actually used by a Verkle
// node's children. Callers must not mutate the returned slice.
func (d *Domain) Points() []Scalar {
	return d.powers[:d.Width]
}

// Size returns the domain's cardinality: the next power of two at or above
// Width. Interpolate returns exactly this many coefficients, so a commit
// key built over this tree must be trimmed to degree Size()-1, not
// Width-1.
func (d *Domain) Size() int {
	return len(d.powers)
}

// Interpolate returns the coefficient-form polynomial whose value at
// Element(i) is evals[i] for i < len(evals), and whose value at every
// further domain point is zero. evals is zero-padded up to the domain's
// cardinality before the inverse FFT, matching the commit zero-padding
// resolution for a short final group of Verkle children.
func (d *Domain) Interpolate(evals []Scalar) []Scalar {
	padded := make([]Scalar, len(d.powers))
	copy(padded, evals)
	d.domain.FFTInverse(padded, fft.DIF)
	fft.BitReverse(padded)
	return padded
}
