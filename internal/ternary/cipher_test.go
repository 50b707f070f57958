/*
 * malbolge - Cipher table test cases.
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

func TestIsGraphicalASCII(t *testing.T) {
	if !IsGraphicalASCII('!') {
		t.Error("'!' (33) should be graphical ASCII")
	}
	if !IsGraphicalASCII('~') {
		t.Error("'~' (126) should be graphical ASCII")
	}
	if IsGraphicalASCII(' ') {
		t.Error("' ' (32) should not be graphical ASCII")
	}
	if IsGraphicalASCII(127) {
		t.Error("127 (DEL) should not be graphical ASCII")
	}
}

func TestPreCipherRejectsNonGraphical(t *testing.T) {
	if _, ok := PreCipher(' ', 0); ok {
		t.Error("PreCipher should reject whitespace")
	}
}

func TestPostCipherRejectsNonGraphical(t *testing.T) {
	if _, ok := PostCipher('\t'); ok {
		t.Error("PostCipher should reject whitespace")
	}
}

// TestCipherTableSize verifies both tables cover exactly the graphical ASCII
// range, which every index into preCipher/postCipher relies on.
func TestCipherTableSize(t *testing.T) {
	if len(preCipher) != CipherSize {
		t.Errorf("preCipher has %d entries, want %d", len(preCipher), CipherSize)
	}
	if len(postCipher) != CipherSize {
		t.Errorf("postCipher has %d entries, want %d", len(postCipher), CipherSize)
	}
}

// TestHelloWorldFirstInstruction checks the textbook Malbolge "Hello World!"
// first byte deciphers to the set-data-pointer instruction 'j' at position 0, the fact
// every Malbolge program depends on to get off the ground.
func TestHelloWorldFirstInstruction(t *testing.T) {
	instr, ok := PreCipher('(', 0)
	if !ok {
		t.Fatal("PreCipher('(', 0) rejected a graphical character")
	}
	if instr != 'j' {
		t.Errorf("PreCipher('(', 0) = %q, want 'j'", instr)
	}
}
