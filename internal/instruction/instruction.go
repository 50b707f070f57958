/*
 * malbolge - vCPU instruction set
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

// Package instruction holds the eight canonical Malbolge vCPU instruction
// characters. Only these are valid in the post-cipher stream at program load
// time; any other character executed at runtime is a no-op.
package instruction

// Type identifies a single vCPU instruction.
type Type byte

// The eight canonical instruction characters.
const (
	SetDataPtr Type = 'j' // D <- mem[D]
	SetCodePtr Type = 'i' // C <- mem[D]
	Rotate     Type = '*' // mem[D] <- rotate(mem[D]); A <- mem[D]
	Op         Type = 'p' // A <- mem[D] <- op(A, mem[D])
	Read       Type = '<' // A <- next input byte, or EOF sentinel
	Write      Type = '/' // emit A as a byte, unless A is the EOF sentinel
	Stop       Type = 'v' // terminate successfully
	Nop        Type = 'o' // no operation
)

// All lists every canonical instruction, useful for iterating or validating.
var All = [...]Type{SetDataPtr, SetCodePtr, Rotate, Op, Read, Write, Stop, Nop}

// IsInstruction reports whether ch is one of the eight canonical instruction
// characters.
func IsInstruction(ch byte) bool {
	for _, i := range All {
		if Type(ch) == i {
			return true
		}
	}
	return false
}
