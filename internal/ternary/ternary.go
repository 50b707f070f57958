/*
 * malbolge - Ternary value type
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

package ternary

import "strconv"

// Width is the number of trits in a Malbolge ternary value.
const Width = 10

// Max is the largest value a Ternary can hold: 3^10 - 1.
const Max uint32 = 59048

// Modulus is Max+1, the point at which arithmetic wraps.
const Modulus uint32 = Max + 1

// Ternary is the Malbolge value type: an unsigned integer modulo 3^10,
// viewed as 10 trits. The zero value is a valid Ternary equal to 0.
type Ternary struct {
	v uint32
}

// New returns a Ternary holding value, wrapped modulo 3^10 if required.
func New(value uint32) Ternary {
	return Ternary{v: value % Modulus}
}

// FromTritset converts a Tritset of width <= 10 into a Ternary.
func FromTritset(t Tritset) Ternary {
	return New(t.ToBase10())
}

// FromString parses a base-3 digit string (most significant digit first)
// into a Ternary.
func FromString(str string) (Ternary, error) {
	t, err := NewTritsetFromString(Width, str)
	if err != nil {
		return Ternary{}, err
	}
	return FromTritset(t), nil
}

// Uint32 returns the decimal value of t.
func (t Ternary) Uint32() uint32 {
	return t.v
}

// ToTritset returns the Tritset<10> equivalent to t.
func (t Ternary) ToTritset() Tritset {
	return NewTritsetFromBase10(Width, t.v)
}

// String renders t as "{d:DEC, t:TTTTTTTTTT}".
func (t Ternary) String() string {
	return "{d:" + strconv.FormatUint(uint64(t.v), 10) + ", t:" + t.ToTritset().String() + "}"
}

// Add returns (t + other) mod 3^10.
func (t Ternary) Add(other Ternary) Ternary {
	return New(t.v + other.v)
}

// Sub returns t - other, wrapping to Max-(other-t) when other > t.
func (t Ternary) Sub(other Ternary) Ternary {
	if other.v > t.v {
		return New(Max - (other.v - t.v))
	}
	return New(t.v - other.v)
}

// Mod returns the remainder of t divided by other.
func (t Ternary) Mod(other Ternary) Ternary {
	return New(t.v % other.v)
}

// Rotate right-rotates t by one trit.
func (t Ternary) Rotate() Ternary {
	return FromTritset(t.ToTritset().Rotate(1))
}

// opTable is the Malbolge ternary logic table, rows indexed by trit a,
// columns by trit b.
var opTable = [3][3]uint8{
	{1, 0, 0},
	{1, 0, 2},
	{2, 2, 1},
}

// Op combines t and other trit-wise via the Malbolge op table.
func (t Ternary) Op(other Ternary) Ternary {
	a := t.ToTritset()
	b := other.ToTritset()
	result := NewTritset(Width)
	for i := uint(0); i < Width; i++ {
		result = result.Set(i, opTable[a.Get(i)][b.Get(i)])
	}
	return FromTritset(result)
}

// Equal reports whether t and other hold the same value.
func (t Ternary) Equal(other Ternary) bool {
	return t.v == other.v
}

// Less reports whether t is ordered before other.
func (t Ternary) Less(other Ternary) bool {
	return t.v < other.v
}

