/*
 * malbolge - Debugger query output formatting test cases.
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

package fmtval

import (
	"strings"
	"testing"

	"github.com/rcornwell/malbolge/internal/ternary"
	"github.com/rcornwell/malbolge/internal/vcpu"
)

func TestAddressContainsPrefixAndValue(t *testing.T) {
	got := Address(ternary.New(42))
	if !strings.Contains(got, "[DBGR]: ") {
		t.Errorf("Address() = %q, want it to contain %q", got, "[DBGR]: ")
	}
	if !strings.Contains(got, ternary.New(42).String()) {
		t.Errorf("Address() = %q, want it to contain the rendered ternary value", got)
	}
}

func TestRegisterWithAddressShowsBothFields(t *testing.T) {
	rv := vcpu.RegisterValue{HasAddress: true, Address: 7, Value: ternary.New(90)}
	got := Register(rv)
	if !strings.Contains(got, ternary.New(7).String()) {
		t.Errorf("Register() = %q, want it to contain the address rendering", got)
	}
	if !strings.Contains(got, ternary.New(90).String()) {
		t.Errorf("Register() = %q, want it to contain the value rendering", got)
	}
}

func TestRegisterWithoutAddressShowsEmptyBraces(t *testing.T) {
	rv := vcpu.RegisterValue{HasAddress: false, Value: ternary.New(5)}
	got := Register(rv)
	if !strings.Contains(got, "{{}, ") {
		t.Errorf("Register() = %q, want it to contain the empty-address placeholder", got)
	}
}

func TestAddressAndRegisterStartWithTimestamp(t *testing.T) {
	got := Address(ternary.New(0))
	prefixIdx := strings.Index(got, "[DBGR]: ")
	if prefixIdx <= 0 {
		t.Fatalf("Address() = %q, want a non-empty timestamp before the prefix", got)
	}
}
