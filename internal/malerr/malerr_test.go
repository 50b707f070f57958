/*
 * malbolge - Error kinds test cases.
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

package malerr

import (
	"strings"
	"testing"
)

func TestParseErrorWithoutLocation(t *testing.T) {
	err := NewParseError(TooShort, "program too short")
	if !strings.Contains(err.Error(), "TooShort") || !strings.Contains(err.Error(), "program too short") {
		t.Errorf("Error() = %q, want it to name the kind and message", err.Error())
	}
	if strings.Contains(err.Error(), "line") {
		t.Errorf("Error() = %q, want no location when none was given", err.Error())
	}
}

func TestParseErrorWithLocation(t *testing.T) {
	err := NewParseErrorAt(InvalidInstruction, "bad byte", 3, 7)
	got := err.Error()
	if !strings.Contains(got, "line 3") || !strings.Contains(got, "column 7") {
		t.Errorf("Error() = %q, want it to report line 3, column 7", got)
	}
}

func TestParseSubKindString(t *testing.T) {
	cases := map[ParseSubKind]string{
		TooShort:           "TooShort",
		TooLong:            "TooLong",
		NonGraphical:       "NonGraphical",
		InvalidInstruction: "InvalidInstruction",
		IOError:            "IOError",
		ParseSubKind(99):   "Unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestExecutionErrorReportsStep(t *testing.T) {
	err := NewExecutionError(ExecNonGraphical, "bad cell", 42)
	got := err.Error()
	if !strings.Contains(got, "step 42") {
		t.Errorf("Error() = %q, want it to report step 42", got)
	}
}

func TestErrWrongStateIsExecutionError(t *testing.T) {
	err := ErrWrongState("program is not paused")
	if err.Kind != ExecWrongState {
		t.Errorf("Kind = %v, want ExecWrongState", err.Kind)
	}
	if !strings.Contains(err.Error(), "program is not paused") {
		t.Errorf("Error() = %q, want it to contain the message", err.Error())
	}
}

func TestScriptParseErrorLocation(t *testing.T) {
	err := NewScriptParseErrorAt("unexpected token", 2, 5)
	got := err.Error()
	if !strings.Contains(got, "line 2") || !strings.Contains(got, "column 5") {
		t.Errorf("Error() = %q, want it to report line 2, column 5", got)
	}
}

func TestScriptInvalidErrorMessage(t *testing.T) {
	err := NewScriptInvalidError("stop must be last")
	if err.Error() != "invalid script: stop must be last" {
		t.Errorf("Error() = %q, want %q", err.Error(), "invalid script: stop must be last")
	}
}

func TestSystemErrorIncludesCode(t *testing.T) {
	err := NewSystemError("permission denied", 13)
	got := err.Error()
	if !strings.Contains(got, "code 13") || !strings.Contains(got, "permission denied") {
		t.Errorf("Error() = %q, want it to report code 13 and the message", got)
	}
}
