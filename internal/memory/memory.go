/*
 * malbolge - Virtual memory
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

// Package memory implements the vCPU's fixed 59049 cell address space:
// construction from program data with ternary-op auto-fill, and a
// wrap-around random-access cursor used to represent the code and data
// pointer registers.
package memory

import (
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/ternary"
)

// Size is the fixed number of cells in a Malbolge address space: 3^10.
const Size = int(ternary.Modulus)

// Memory is the Malbolge virtual machine's fixed size address space. The
// zero value is not usable; construct with New.
type Memory struct {
	cells [Size]ternary.Ternary
}

// New builds virtual memory from program, which must contain between 2 and
// Size cells inclusive. The low addresses hold a copy of program; every
// remaining cell k is filled with cells[k-1].Op(cells[k-2]), per the
// Malbolge auto-fill rule.
func New(program []ternary.Ternary) (*Memory, error) {
	if len(program) < 2 {
		return nil, malerr.NewParseError(malerr.TooShort, "program data must be at least 2 characters")
	}
	if len(program) > Size {
		return nil, malerr.NewParseError(malerr.TooLong, "program data must be no more than 59049 characters")
	}

	m := &Memory{}
	copy(m.cells[:], program)
	for k := len(program); k < Size; k++ {
		m.cells[k] = m.cells[k-1].Op(m.cells[k-2])
	}
	return m, nil
}

// Get returns the value stored at the wrapped address pos.
func (m *Memory) Get(pos uint32) ternary.Ternary {
	return m.cells[int(pos)%Size]
}

// Set stores value at the wrapped address pos.
func (m *Memory) Set(pos uint32, value ternary.Ternary) {
	m.cells[int(pos)%Size] = value
}

// Begin returns a Cursor positioned at address 0.
func (m *Memory) Begin() Cursor {
	return Cursor{mem: m, pos: 0}
}

// Cursor is a random-access pointer into Memory whose arithmetic wraps:
// incrementing past the last cell yields the first, and decrementing before
// the first yields the last.
type Cursor struct {
	mem *Memory
	pos uint32
}

// Address returns the cursor's current address.
func (c Cursor) Address() uint32 {
	return c.pos
}

// Get returns the value the cursor currently points at.
func (c Cursor) Get() ternary.Ternary {
	return c.mem.Get(c.pos)
}

// Set stores value at the cursor's current address.
func (c Cursor) Set(value ternary.Ternary) {
	c.mem.Set(c.pos, value)
}

// Next returns the cursor advanced by one cell, wrapping from the last cell
// to the first.
func (c Cursor) Next() Cursor {
	return c.Add(1)
}

// Prev returns the cursor moved back by one cell, wrapping from the first
// cell to the last.
func (c Cursor) Prev() Cursor {
	return c.Add(-1)
}

// Add returns the cursor offset by k cells (k may be negative), wrapping
// around the address space.
func (c Cursor) Add(k int64) Cursor {
	size := int64(Size)
	k %= size
	pos := (int64(c.pos) + k + size) % size
	return Cursor{mem: c.mem, pos: uint32(pos)}
}

// Goto returns a cursor repositioned to the wrapped address addr, same
// memory.
func (c Cursor) Goto(addr uint32) Cursor {
	return Cursor{mem: c.mem, pos: addr % uint32(Size)}
}
