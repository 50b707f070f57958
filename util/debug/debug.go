/*
 * malbolge - Verbosity-gated debug logging
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

// Package debug gates chatty trace logging behind the -l/-ll/-lll verbosity
// flags, on top of the ambient slog logger set up by cmd/malbolge.
package debug

import (
	"fmt"
	"log/slog"
)

// Verbosity levels selected by repeating -l on the command line.
const (
	Off     = 0
	Debug   = 1 // -l:   step-level vCPU tracing
	Verbose = 2 // -ll:  plus register dumps each step
	Trace   = 3 // -lll: plus pre/post-cipher byte detail
)

// Level is the current verbosity, set once by main from the parsed flags.
var Level = Off

// Debugf logs a message tagged with module if level is at or below the
// current verbosity.
func Debugf(module string, level int, format string, a ...any) {
	if level > Level {
		return
	}
	slog.Debug(module + ": " + fmt.Sprintf(format, a...))
}
