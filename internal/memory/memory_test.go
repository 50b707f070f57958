/*
 * malbolge - Virtual memory test cases.
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

package memory

import (
	"testing"

	"github.com/rcornwell/malbolge/internal/ternary"
)

func TestNewRejectsTooShort(t *testing.T) {
	if _, err := New([]ternary.Ternary{ternary.New(1)}); err == nil {
		t.Error("expected error for a single-cell program")
	}
}

func TestNewRejectsTooLong(t *testing.T) {
	cells := make([]ternary.Ternary, Size+1)
	if _, err := New(cells); err == nil {
		t.Error("expected error for a program longer than the address space")
	}
}

func TestNewCopiesProgramVerbatim(t *testing.T) {
	cells := []ternary.Ternary{ternary.New(10), ternary.New(20), ternary.New(30)}
	m, err := New(cells)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for i, want := range cells {
		if got := m.Get(uint32(i)); !got.Equal(want) {
			t.Errorf("Get(%d) = %d, want %d", i, got.Uint32(), want.Uint32())
		}
	}
}

func TestNewAutoFillsWithOp(t *testing.T) {
	cells := []ternary.Ternary{ternary.New(5), ternary.New(7)}
	m, err := New(cells)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	want := cells[1].Op(cells[0])
	if got := m.Get(2); !got.Equal(want) {
		t.Errorf("Get(2) = %d, want %d", got.Uint32(), want.Uint32())
	}
}

func TestGetSetWraps(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	m.Set(uint32(Size), ternary.New(99))
	if got := m.Get(0); got.Uint32() != 99 {
		t.Errorf("Set(Size, 99) then Get(0) = %d, want 99", got.Uint32())
	}
}

func TestCursorNextWrapsAround(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c := m.Begin().Goto(uint32(Size - 1))
	next := c.Next()
	if next.Address() != 0 {
		t.Errorf("Next() from last cell = %d, want 0", next.Address())
	}
}

func TestCursorPrevWrapsAround(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	prev := m.Begin().Prev()
	if prev.Address() != uint32(Size-1) {
		t.Errorf("Prev() from address 0 = %d, want %d", prev.Address(), Size-1)
	}
}

func TestCursorGetSet(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c := m.Begin()
	c.Set(ternary.New(42))
	if got := c.Get().Uint32(); got != 42 {
		t.Errorf("Get() after Set(42) = %d, want 42", got)
	}
}

func TestCursorGotoWraps(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c := m.Begin().Goto(uint32(Size + 5))
	if c.Address() != 5 {
		t.Errorf("Goto(Size+5) = %d, want 5", c.Address())
	}
}

func TestCursorAddNegative(t *testing.T) {
	m, err := New([]ternary.Ternary{ternary.New(1), ternary.New(2)})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c := m.Begin().Add(-1)
	if c.Address() != uint32(Size-1) {
		t.Errorf("Add(-1) from address 0 = %d, want %d", c.Address(), Size-1)
	}
}
