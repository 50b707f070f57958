/*
 * malbolge - Source normalisation
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
	"strconv"
	"unicode"

	"github.com/rcornwell/malbolge/internal/instruction"
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/ternary"
)

// denormaliseMap gives, for each canonical instruction, the graphical ASCII
// character that preCipher maps to it at position 0. Reproduced from the
// Malbolge reference implementation.
var denormaliseMap = map[instruction.Type]byte{
	instruction.Rotate:     '\'',
	instruction.SetDataPtr: '(',
	instruction.Op:         '>',
	instruction.Nop:        'D',
	instruction.Stop:       'Q',
	instruction.SetCodePtr: 'b',
	instruction.Read:       'c',
	instruction.Write:      'u',
}

// Normalise rewrites source, a raw (pre-cipher) Malbolge program, into its
// position-independent form: every instruction byte replaced by the literal
// instruction character it deciphers to at its position. Normalised source
// is easier to read and write by hand; Denormalise reverses the transform
// so the result can be executed.
func Normalise(source string) (string, error) {
	out := make([]byte, 0, len(source))
	loc := malerr.Location{Line: 1, Column: 1}
	i := 0
	for idx := 0; idx < len(source); idx++ {
		ch := source[idx]
		if unicode.IsSpace(rune(ch)) {
			if ch == '\n' {
				loc.Line++
				loc.Column = 1
			} else {
				loc.Column++
			}
			continue
		}

		deciphered, ok := ternary.PreCipher(ch, i)
		if !ok {
			return "", malerr.NewParseErrorAt(malerr.NonGraphical,
				"non-whitespace character must be graphical ASCII: "+strconv.Itoa(int(ch)),
				loc.Line, loc.Column)
		}
		if !instruction.IsInstruction(deciphered) {
			return "", malerr.NewParseErrorAt(malerr.InvalidInstruction,
				"invalid instruction in program: "+strconv.Itoa(int(deciphered)),
				loc.Line, loc.Column)
		}

		out = append(out, deciphered)
		loc.Column++
		i++
	}
	return string(out), nil
}

// Denormalise reverses Normalise: source must contain only the eight
// canonical instruction characters (whitespace is not permitted, unlike
// Normalise), and the result is raw program text suitable for Load.
func Denormalise(source string) (string, error) {
	out := make([]byte, len(source))
	loc := malerr.Location{Line: 1, Column: 1}
	for i := 0; i < len(source); i++ {
		ch := instruction.Type(source[i])
		base, ok := denormaliseMap[ch]
		if !ok {
			return "", malerr.NewParseErrorAt(malerr.InvalidInstruction,
				"invalid instruction in program: "+strconv.Itoa(int(ch)),
				loc.Line, loc.Column)
		}

		offset := i % ternary.CipherSize
		sub := int(base) - offset
		if sub < ternary.GraphicalASCIIMin {
			sub += ternary.CipherSize
		}
		out[i] = byte(sub)

		loc.Column++
	}
	return string(out), nil
}

// LooksNormalised heuristically reports whether source appears to already be
// in normalised form: every non-whitespace byte is one of the eight
// canonical instruction characters. Load uses this to auto-detect which form
// it was handed when the caller does not say.
func LooksNormalised(source string) bool {
	seenAny := false
	for i := 0; i < len(source); i++ {
		ch := source[i]
		if unicode.IsSpace(rune(ch)) {
			continue
		}
		if !instruction.IsInstruction(ch) {
			return false
		}
		seenAny = true
	}
	return seenAny
}
