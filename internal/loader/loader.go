/*
 * malbolge - Program loader
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

// Package loader turns Malbolge program source into virtual memory ready for
// the vCPU: stripping whitespace, validating every remaining byte deciphers
// to a canonical instruction at its address, and resolving normalised source
// back to its raw, position-dependent form.
package loader

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/malbolge/internal/instruction"
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/memory"
	"github.com/rcornwell/malbolge/internal/ternary"
)

// Mode selects how Load should interpret its source text.
type Mode int

const (
	// Auto inspects source and treats it as normalised only if every
	// non-whitespace byte is already a canonical instruction character.
	Auto Mode = iota
	// ForceNormalised always treats source as normalised text and
	// denormalises it before loading.
	ForceNormalised
	// ForceDenormalised always treats source as raw, position-dependent
	// program text and loads it unchanged.
	ForceDenormalised
)

// Load parses source per mode and builds the resulting virtual memory image.
// Whitespace is removed before validation and does not count towards an
// instruction's address. Every remaining byte must be graphical ASCII whose
// pre-cipher, applied at its resulting address, yields one of the eight
// canonical instructions.
func Load(source string, mode Mode) (*memory.Memory, error) {
	raw, err := resolve(source, mode)
	if err != nil {
		return nil, err
	}

	stripped, err := strip(raw)
	if err != nil {
		return nil, err
	}

	cells := make([]ternary.Ternary, len(stripped))
	for i, ch := range stripped {
		cells[i] = ternary.New(uint32(ch))
	}
	return memory.New(cells)
}

func resolve(source string, mode Mode) (string, error) {
	switch mode {
	case ForceDenormalised:
		return source, nil
	case ForceNormalised:
		return Denormalise(strings.Join(strings.Fields(source), ""))
	default:
		if LooksNormalised(source) {
			return Denormalise(strings.Join(strings.Fields(source), ""))
		}
		return source, nil
	}
}

// strip removes whitespace and validates every remaining byte, returning the
// raw program bytes in address order.
func strip(source string) (string, error) {
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

		instr, ok := ternary.PreCipher(ch, i)
		if !ok {
			return "", malerr.NewParseErrorAt(malerr.NonGraphical,
				"non-whitespace character must be graphical ASCII: "+strconv.Itoa(int(ch)),
				loc.Line, loc.Column)
		}
		if !instruction.IsInstruction(instr) {
			return "", malerr.NewParseErrorAt(malerr.InvalidInstruction,
				"invalid instruction in program: "+strconv.Itoa(int(instr)),
				loc.Line, loc.Column)
		}

		out = append(out, ch)
		loc.Column++
		i++
	}

	if len(out) < 2 {
		return "", malerr.NewParseError(malerr.TooShort, "program data must be at least 2 characters")
	}
	if len(out) > memory.Size {
		return "", malerr.NewParseError(malerr.TooLong, "program data must be no more than 59049 characters")
	}
	return string(out), nil
}
