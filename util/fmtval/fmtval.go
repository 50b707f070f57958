/*
 * malbolge - Debugger query output formatting
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

// Package fmtval renders the debugger's query results into the
// "[DBGR]: " prefixed lines a script's address_value and register_value
// commands produce.
package fmtval

import (
	"strings"
	"time"

	"github.com/rcornwell/malbolge/internal/ternary"
	"github.com/rcornwell/malbolge/internal/vcpu"
)

// timestampFormat matches the rest of the vCPU's log lines.
const timestampFormat = "2006/01/02 15:04:05"

// Address renders a memory query result: "<ts> [DBGR]: {d:.., t:..}".
func Address(value ternary.Ternary) string {
	var b strings.Builder
	writePrefix(&b)
	b.WriteString(value.String())
	return b.String()
}

// Register renders a register query result. A has no address component; C
// and D print both their address and the value it points at:
// "<ts> [DBGR]: {{d:addr, t:trits}, {d:value, t:trits}}".
func Register(rv vcpu.RegisterValue) string {
	var b strings.Builder
	writePrefix(&b)
	b.WriteByte('{')
	if rv.HasAddress {
		b.WriteString(ternary.New(rv.Address).String())
	} else {
		b.WriteString("{}")
	}
	b.WriteString(", ")
	b.WriteString(rv.Value.String())
	b.WriteByte('}')
	return b.String()
}

func writePrefix(b *strings.Builder) {
	b.WriteString(time.Now().Format(timestampFormat))
	b.WriteString(" [DBGR]: ")
}
