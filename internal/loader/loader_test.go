/*
 * malbolge - Program loader test cases.
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

package loader

import (
	"testing"

	"github.com/rcornwell/malbolge/internal/memory"
)

// tinyRaw is a short raw (position-dependent) program, whose bytes decipher
// to the canonical instruction stream "jjjj*p<v" over positions 0-7: it sets
// D from memory four times, rotates, combines A with D via op, reads a byte,
// then stops.
const tinyRaw = "('&%#9]J"

func TestNormaliseDenormaliseRoundTrip(t *testing.T) {
	normalised, err := Normalise(tinyRaw)
	if err != nil {
		t.Fatalf("Normalise error: %v", err)
	}
	raw, err := Denormalise(normalised)
	if err != nil {
		t.Fatalf("Denormalise error: %v", err)
	}
	if raw != tinyRaw {
		t.Errorf("round trip: got %q, want %q", raw, tinyRaw)
	}
}

func TestLooksNormalisedTrueForInstructions(t *testing.T) {
	if !LooksNormalised("jjjjiiii*p<v o") {
		t.Error("a string of only instruction characters and whitespace should look normalised")
	}
}

func TestLooksNormalisedFalseForRawSource(t *testing.T) {
	if LooksNormalised(tinyRaw) {
		t.Error("raw cipher source should not look normalised")
	}
}

func TestLooksNormalisedFalseWhenEmpty(t *testing.T) {
	if LooksNormalised("   \n\t") {
		t.Error("whitespace-only source has no instructions and should not look normalised")
	}
}

func TestLoadRawProgram(t *testing.T) {
	mem, err := Load(tinyRaw, ForceDenormalised)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if mem == nil {
		t.Fatal("Load returned nil memory")
	}
}

func TestLoadAutoDetectsNormalised(t *testing.T) {
	normalised, err := Normalise(tinyRaw)
	if err != nil {
		t.Fatalf("Normalise error: %v", err)
	}
	mem, err := Load(normalised, Auto)
	if err != nil {
		t.Fatalf("Load(Auto) on normalised source error: %v", err)
	}
	want, err := Load(tinyRaw, ForceDenormalised)
	if err != nil {
		t.Fatalf("Load(ForceDenormalised) error: %v", err)
	}
	for addr := uint32(0); addr < 8; addr++ {
		if mem.Get(addr).Uint32() != want.Get(addr).Uint32() {
			t.Errorf("Get(%d) = %d, want %d", addr, mem.Get(addr).Uint32(), want.Get(addr).Uint32())
		}
	}
}

func TestLoadAutoDetectsRawSource(t *testing.T) {
	mem, err := Load(tinyRaw, Auto)
	if err != nil {
		t.Fatalf("Load(Auto) on raw source error: %v", err)
	}
	if mem == nil {
		t.Fatal("Load returned nil memory")
	}
}

func TestLoadStripsWhitespace(t *testing.T) {
	spaced := tinyRaw[:3] + "\n \t" + tinyRaw[3:]
	mem, err := Load(spaced, ForceDenormalised)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want, err := Load(tinyRaw, ForceDenormalised)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for addr := uint32(0); addr < 8; addr++ {
		if mem.Get(addr).Uint32() != want.Get(addr).Uint32() {
			t.Errorf("whitespace changed address %d: got %d, want %d", addr, mem.Get(addr).Uint32(), want.Get(addr).Uint32())
		}
	}
}

func TestLoadRejectsTooShort(t *testing.T) {
	if _, err := Load("(", ForceDenormalised); err == nil {
		t.Error("expected error loading a single-instruction program")
	}
}

func TestLoadRejectsInvalidInstruction(t *testing.T) {
	if _, err := Load("!!", ForceDenormalised); err == nil {
		t.Error("expected error for a program whose bytes decipher to no canonical instruction")
	}
}

func TestLoadRejectsNonGraphicalByte(t *testing.T) {
	if _, err := Load("(\x01", ForceDenormalised); err == nil {
		t.Error("expected error for a non-graphical, non-whitespace byte")
	}
}

func TestLoadRejectsTooLong(t *testing.T) {
	// More non-whitespace bytes than the fixed address space holds is an
	// error even when every byte deciphers cleanly at its position.
	normalised := make([]byte, memory.Size+1)
	for i := range normalised {
		normalised[i] = 'j'
	}
	big, err := Denormalise(string(normalised))
	if err != nil {
		t.Fatalf("Denormalise error: %v", err)
	}
	if _, err := Load(big, ForceDenormalised); err == nil {
		t.Error("expected error for a program longer than the address space")
	}
}
