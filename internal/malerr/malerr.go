/*
 * malbolge - Error kinds
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

// Package malerr holds the tagged error kinds shared by every subsystem:
// Parse, Execution, ScriptParse, ScriptInvalid and System, as described in
// the interpreter's error handling design.
package malerr

import "fmt"

// ParseSubKind distinguishes the reasons program source can fail to load.
type ParseSubKind int

const (
	TooShort ParseSubKind = iota
	TooLong
	NonGraphical
	InvalidInstruction
	IOError
)

func (k ParseSubKind) String() string {
	switch k {
	case TooShort:
		return "TooShort"
	case TooLong:
		return "TooLong"
	case NonGraphical:
		return "NonGraphical"
	case InvalidInstruction:
		return "InvalidInstruction"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Location is a 1-based (line, column) position used for parse diagnostics.
type Location struct {
	Line   uint32
	Column uint32
}

// ParseError reports malformed source, optionally located at a (line, column).
type ParseError struct {
	Kind     ParseSubKind
	Message  string
	Location *Location // nil if no location is known
}

func (e *ParseError) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("parse error (%s) at line %d, column %d: %s",
			e.Kind, e.Location.Line, e.Location.Column, e.Message)
	}
	return fmt.Sprintf("parse error (%s): %s", e.Kind, e.Message)
}

// NewParseError builds a ParseError with no location.
func NewParseError(kind ParseSubKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

// NewParseErrorAt builds a ParseError located at line/column.
func NewParseErrorAt(kind ParseSubKind, message string, line, column uint32) *ParseError {
	return &ParseError{Kind: kind, Message: message, Location: &Location{Line: line, Column: column}}
}

// ExecutionSubKind distinguishes runtime failures inside the vCPU.
type ExecutionSubKind int

const (
	ExecNonGraphical ExecutionSubKind = iota
	ExecWrongState
)

func (k ExecutionSubKind) String() string {
	switch k {
	case ExecNonGraphical:
		return "NonGraphical"
	case ExecWrongState:
		return "WrongState"
	default:
		return "Unknown"
	}
}

// ExecutionError reports a runtime failure inside the vCPU, carrying the
// instruction step number at which it occurred.
type ExecutionError struct {
	Kind    ExecutionSubKind
	Message string
	Step    uint64
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error (%s) at step %d: %s", e.Kind, e.Step, e.Message)
}

// NewExecutionError builds an ExecutionError.
func NewExecutionError(kind ExecutionSubKind, message string, step uint64) *ExecutionError {
	return &ExecutionError{Kind: kind, Message: message, Step: step}
}

// ErrWrongState is a convenience ExecutionError for API misuse (an operation
// called while the vCPU or debugger is in the wrong execution state).
func ErrWrongState(message string) *ExecutionError {
	return &ExecutionError{Kind: ExecWrongState, Message: message}
}

// ScriptParseError reports malformed debugger script syntax, optionally
// located at a (line, column) in the script.
type ScriptParseError struct {
	Message  string
	Location *Location
}

func (e *ScriptParseError) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("script parse error at line %d, column %d: %s",
			e.Location.Line, e.Location.Column, e.Message)
	}
	return fmt.Sprintf("script parse error: %s", e.Message)
}

// NewScriptParseError builds a ScriptParseError with no location.
func NewScriptParseError(message string) *ScriptParseError {
	return &ScriptParseError{Message: message}
}

// NewScriptParseErrorAt builds a ScriptParseError located at line/column.
func NewScriptParseErrorAt(message string, line, column uint32) *ScriptParseError {
	return &ScriptParseError{Message: message, Location: &Location{Line: line, Column: column}}
}

// ScriptInvalidError reports a well-formed script that violates structural
// rules (command ordering, uniqueness).
type ScriptInvalidError struct {
	Message string
}

func (e *ScriptInvalidError) Error() string {
	return "invalid script: " + e.Message
}

// NewScriptInvalidError builds a ScriptInvalidError.
func NewScriptInvalidError(message string) *ScriptInvalidError {
	return &ScriptInvalidError{Message: message}
}

// SystemError reports an OS-level failure, carrying the platform error code.
type SystemError struct {
	Message string
	Code    int
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system error (code %d): %s", e.Code, e.Message)
}

// NewSystemError builds a SystemError.
func NewSystemError(message string, code int) *SystemError {
	return &SystemError{Message: message, Code: code}
}
