/*
 * malbolge - Debugger script command types
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

// Package script implements the declarative debugger script language: a
// flat list of "name(arg=value, ...);" commands, with "//" line comments,
// that drive a debugger.Debugger the same way an interactive user would.
package script

import "github.com/rcornwell/malbolge/internal/vcpu"

// ValueKind identifies the type held by a Value.
type ValueKind int

const (
	KindUint ValueKind = iota
	KindTernary
	KindRegister
	KindString
)

// Value is a single argument value, one of the four script::type kinds:
// uint, ternary, reg or string. Only the field matching Kind is populated.
type Value struct {
	Kind     ValueKind
	Uint     uint32
	Ternary  uint32 // ternary value as its base-10 underlying representation
	Register vcpu.Register
	String   string
}

// Command is one parsed script statement: a function name and its named
// arguments.
type Command struct {
	Name string
	Args map[string]Value
	Line uint32
}

// The canonical script function names.
const (
	FuncAddBreakpoint    = "add_breakpoint"
	FuncRemoveBreakpoint = "remove_breakpoint"
	FuncRun              = "run"
	FuncAddressValue     = "address_value"
	FuncRegisterValue    = "register_value"
	FuncStep             = "step"
	FuncResume           = "resume"
	FuncStop             = "stop"
	FuncOnInput          = "on_input"
)

// argSpec describes one named argument a function accepts.
type argSpec struct {
	name     string
	kind     ValueKind
	required bool
}

// funcSpecs enumerates every valid function and its arguments, used by the
// parser to validate names, kinds and required arguments. The runner applies
// defaults for omitted optional arguments itself.
var funcSpecs = map[string][]argSpec{
	FuncAddBreakpoint: {
		{name: "address", kind: KindUint, required: true},
		{name: "ignore_count", kind: KindUint, required: false},
	},
	FuncRemoveBreakpoint: {
		{name: "address", kind: KindUint, required: true},
	},
	FuncRun: {
		{name: "max_runtime_ms", kind: KindUint, required: false},
	},
	FuncAddressValue: {
		{name: "address", kind: KindUint, required: true},
	},
	FuncRegisterValue: {
		{name: "reg", kind: KindRegister, required: true},
	},
	FuncStep:   {},
	FuncResume: {},
	FuncStop:   {},
	FuncOnInput: {
		{name: "data", kind: KindString, required: true},
	},
}
