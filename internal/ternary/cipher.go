/*
 * malbolge - Pre/post execution cipher tables
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

// GraphicalASCIIMin and GraphicalASCIIMax bound the graphical ASCII range
// that cipher tables operate over: [33, 126].
const (
	GraphicalASCIIMin = 33
	GraphicalASCIIMax = 126

	// CipherSize is the number of entries in each cipher table.
	CipherSize = GraphicalASCIIMax - GraphicalASCIIMin + 1
)

// preCipher and postCipher are fixed 94 entry permutations of the graphical
// ASCII character set, reproduced verbatim from the Malbolge reference
// implementation.
const (
	preCipher  = `+b(29e*j1VMEKLyC})8&m#~W>qxdRp0wkrUo[D7,XTcA"lI.v%{gJh4G\-=O@5` + "`" + `_3i<?Z';FNQuY]szf$!BS/|t:Pn6^Ha`
	postCipher = `5z]&gqtyfr$(we4{WP)H-Zn,[%\3dL+Q;>U!pJS72FhOA1CB6v^=I_0/8|jsb9m<.TVac` + "`" + `uY*MK'X~xDl}REokN:#?G"i@`
)

// IsGraphicalASCII reports whether ch falls within [33, 126].
func IsGraphicalASCII(ch byte) bool {
	return ch >= GraphicalASCIIMin && ch <= GraphicalASCIIMax
}

// PreCipher returns the ciphered instruction produced from the graphical
// ASCII character ch found at program position pos. The second return value
// is false if ch is not graphical ASCII.
func PreCipher(ch byte, pos int) (byte, bool) {
	if !IsGraphicalASCII(ch) {
		return 0, false
	}
	i := (int(ch-GraphicalASCIIMin) + pos) % CipherSize
	return preCipher[i], true
}

// PostCipher returns the ciphered replacement written back after executing
// the instruction ch. The second return value is false if ch is not
// graphical ASCII.
func PostCipher(ch byte) (byte, bool) {
	if !IsGraphicalASCII(ch) {
		return 0, false
	}
	return postCipher[ch-GraphicalASCIIMin], true
}
