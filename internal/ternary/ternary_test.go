/*
 * malbolge - Ternary value and tritset test cases.
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

import "testing"

func TestNewWraps(t *testing.T) {
	v := New(Max + 1)
	if v.Uint32() != 0 {
		t.Errorf("New(Max+1) = %d, want 0", v.Uint32())
	}
	v = New(Max + 5)
	if v.Uint32() != 4 {
		t.Errorf("New(Max+5) = %d, want 4", v.Uint32())
	}
}

func TestTritsetRoundTrip(t *testing.T) {
	for _, value := range []uint32{0, 1, 2, 17, 1000, Max} {
		ter := New(value)
		back := FromTritset(ter.ToTritset())
		if back.Uint32() != value {
			t.Errorf("round trip through Tritset for %d got %d", value, back.Uint32())
		}
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	ter := New(12345)
	str := ter.ToTritset().String()
	back, err := FromString(str)
	if err != nil {
		t.Fatalf("FromString(%q) error: %v", str, err)
	}
	if back.Uint32() != 12345 {
		t.Errorf("FromString(%q) = %d, want 12345", str, back.Uint32())
	}
}

func TestFromStringRejectsBadDigit(t *testing.T) {
	if _, err := FromString("0000000003"); err == nil {
		t.Error("expected error for digit out of range")
	}
}

func TestFromStringRejectsTooLong(t *testing.T) {
	if _, err := FromString("00000000001"); err == nil {
		t.Error("expected error for string longer than width")
	}
}

func TestRotate(t *testing.T) {
	ter, err := FromString("0000000001")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	got := ter.Rotate().ToTritset().String()
	want := "1000000000"
	if got != want {
		t.Errorf("Rotate() = %q, want %q", got, want)
	}
}

func TestRotateFullCircle(t *testing.T) {
	ter, err := FromString("1202010201")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	got := ter
	for range Width {
		got = got.Rotate()
	}
	if !got.Equal(ter) {
		t.Errorf("rotating %d times did not return to start: got %s, want %s",
			Width, got.ToTritset().String(), ter.ToTritset().String())
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := New(100)
	b := New(42)
	sum := a.Add(b)
	if sum.Sub(b).Uint32() != a.Uint32() {
		t.Errorf("(a+b)-b = %d, want %d", sum.Sub(b).Uint32(), a.Uint32())
	}
}

func TestSubWraps(t *testing.T) {
	got := New(5).Sub(New(10))
	want := Max - 5
	if got.Uint32() != want {
		t.Errorf("5-10 = %d, want %d", got.Uint32(), want)
	}
}

// TestOpTable checks all nine entries of the op logic table, trit by trit.
// op is not commutative: op(0,1) and op(1,0) differ.
func TestOpTable(t *testing.T) {
	cases := []struct {
		a, b, want uint8
	}{
		{0, 0, 1},
		{0, 1, 0},
		{0, 2, 0},
		{1, 0, 1},
		{1, 1, 0},
		{1, 2, 2},
		{2, 0, 2},
		{2, 1, 2},
		{2, 2, 1},
	}
	for _, c := range cases {
		a := NewTritset(Width).Set(0, c.a)
		b := NewTritset(Width).Set(0, c.b)
		got := FromTritset(a).Op(FromTritset(b)).ToTritset().Get(0)
		if got != c.want {
			t.Errorf("op(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// TestTritsetSetReplacesNonzeroTrit guards against Set ORing a new value
// into a position without first clearing it, which would corrupt any
// already-populated trit instead of replacing it.
func TestTritsetSetReplacesNonzeroTrit(t *testing.T) {
	ts := NewTritset(Width).Set(0, 2)
	ts = ts.Set(0, 1)
	if got := ts.Get(0); got != 1 {
		t.Errorf("Set(0, 1) after Set(0, 2) = %d, want 1", got)
	}
}

func TestEqualAndLess(t *testing.T) {
	a := New(10)
	b := New(20)
	if !a.Equal(New(10)) {
		t.Error("Equal(10) should be true for 10")
	}
	if !a.Less(b) {
		t.Error("10 should be Less than 20")
	}
	if b.Less(a) {
		t.Error("20 should not be Less than 10")
	}
}

func TestString(t *testing.T) {
	got := New(0).String()
	want := "{d:0, t:0000000000}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
