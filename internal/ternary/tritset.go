/*
 * malbolge - Packed ternary bitset
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package ternary implements the base-3 number system used by the Malbolge
// vCPU: a fixed width packed trit set, the wrapping ternary value type built
// on top of it, and the "op" logic table.
package ternary

import (
	"fmt"
	"strings"
)

const (
	// TritBase is the number base a single trit represents.
	TritBase = 3

	// BitsPerTrit is the number of bits used to pack a single trit.
	BitsPerTrit = 2

	bitMask = 0b11
)

// Tritset is a fixed width sequence of trits, packed two bits per trit,
// little-endian by trit (index 0 is the least significant trit).
type Tritset struct {
	width uint
	v     uint32
}

// NewTritset returns a zero valued Tritset of the given width, in trits.
// Width must be small enough that 2*width bits fit in a uint32 (<=16).
func NewTritset(width uint) Tritset {
	return Tritset{width: width}
}

// Width returns the number of trits in the set.
func (t Tritset) Width() uint {
	return t.width
}

// Max returns the largest decimal value representable by this width, i.e. 3^width - 1.
func (t Tritset) Max() uint32 {
	return ipow3(t.width) - 1
}

// NewTritsetFromBase10 builds a Tritset of the given width from a decimal
// value, wrapping modulo 3^width if value exceeds the representable range.
func NewTritsetFromBase10(width uint, value uint32) Tritset {
	t := Tritset{width: width}
	max := ipow3(width)
	q := value % max
	for i := uint(0); i < width; i++ {
		t.v |= (uint32(q%TritBase) & bitMask) << (i * BitsPerTrit)
		if q < TritBase {
			break
		}
		q /= TritBase
	}
	return t
}

// NewTritsetFromString builds a Tritset of the given width from a string of
// base-3 digits ('0'..'2'), most-significant digit first. It is an error for
// str to be longer than width or to contain a non-ternary digit.
func NewTritsetFromString(width uint, str string) (Tritset, error) {
	if uint(len(str)) > width {
		return Tritset{}, fmt.Errorf("ternary: too many digits in %q for width %d", str, width)
	}

	t := Tritset{width: width}
	n := len(str)
	for i := 0; i < n; i++ {
		c := str[n-1-i]
		if c < '0' || c > '2' {
			return Tritset{}, fmt.Errorf("ternary: invalid digit %q in %q", c, str)
		}
		t = t.Set(uint(i), c-'0')
	}
	return t, nil
}

// Get returns the trit at index i (0 is least significant).
func (t Tritset) Get(i uint) uint8 {
	return uint8((t.v >> (i * BitsPerTrit)) & bitMask)
}

// Set returns a copy of t with the trit at index i replaced by value.
// Only the low two bits of value are used.
func (t Tritset) Set(i uint, value uint8) Tritset {
	shift := i * BitsPerTrit
	t.v &^= bitMask << shift
	t.v |= (uint32(value) & bitMask) << shift
	return t
}

// Rotate returns a copy of t with its trits rotated right (towards the least
// significant trit) by i positions, modulo width.
func (t Tritset) Rotate(i uint) Tritset {
	i %= t.width
	if i == 0 {
		return t
	}

	shift := i * BitsPerTrit
	mask := (uint32(1) << shift) - 1
	top := (t.width * BitsPerTrit) - shift

	prefix := (t.v & mask) << top
	t.v = (t.v >> shift) | prefix
	return t
}

// ToBase10 converts the trit set to its decimal value.
func (t Tritset) ToBase10() uint32 {
	var result uint32
	for i := uint(0); i < t.width; i++ {
		result += uint32(t.Get(i)) * ipow3(i)
	}
	return result
}

// String renders the trit set as "TTTT...", most significant trit first.
func (t Tritset) String() string {
	var b strings.Builder
	b.Grow(int(t.width))
	for i := int(t.width) - 1; i >= 0; i-- {
		b.WriteByte('0' + t.Get(uint(i)))
	}
	return b.String()
}

// ipow3 computes 3^n for small n using repeated multiplication.
func ipow3(n uint) uint32 {
	result := uint32(1)
	for range n {
		result *= TritBase
	}
	return result
}
