/*
 * malbolge - Script string unescaping
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

package script

import (
	"fmt"
	"strconv"
)

var controlChars = map[byte]byte{
	'a': '\a',
	'b': '\b',
	't': '\t',
	'n': '\n',
	'v': '\v',
	'f': '\f',
	'r': '\r',
}

func isPunctuation(ch byte) bool {
	switch ch {
	case '"', '\'', '?', '\\':
		return true
	default:
		return false
	}
}

// unescapeASCII returns an unescaped copy of str, where "str there" style
// C-style escapes (control characters, punctuation, octal and hex) have
// been replaced by their real byte equivalents. Used to parse string
// literals in debugger scripts.
func unescapeASCII(str string) (string, error) {
	out := make([]byte, 0, len(str))

	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch != '\\' {
			out = append(out, ch)
			continue
		}

		i++
		if i >= len(str) {
			return "", fmt.Errorf("script: trailing backslash in string literal")
		}
		esc := str[i]

		if c, ok := controlChars[esc]; ok {
			out = append(out, c)
			continue
		}
		if isPunctuation(esc) {
			out = append(out, esc)
			continue
		}

		if esc >= '0' && esc <= '7' {
			j := i
			for j < len(str) && j < i+3 && str[j] >= '0' && str[j] <= '7' {
				j++
			}
			v, err := strconv.ParseUint(str[i:j], 8, 8)
			if err != nil {
				return "", fmt.Errorf("script: invalid octal escape %q: %w", str[i:j], err)
			}
			out = append(out, byte(v))
			i = j - 1
			continue
		}

		if esc == 'x' {
			j := i + 1
			for j < len(str) && isHexDigit(str[j]) {
				j++
			}
			if j == i+1 {
				return "", fmt.Errorf("script: \\x escape with no hex digits")
			}
			v, err := strconv.ParseUint(str[i+1:j], 16, 8)
			if err != nil {
				return "", fmt.Errorf("script: invalid hex escape %q: %w", str[i+1:j], err)
			}
			out = append(out, byte(v))
			i = j - 1
			continue
		}

		return "", fmt.Errorf("script: cannot parse escape character %q", esc)
	}

	return string(out), nil
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
