/*
 * malbolge - Debugger script parser
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
	"strings"

	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/ternary"
	"github.com/rcornwell/malbolge/internal/vcpu"
)

// parser walks a script's source one byte at a time, tracking line/column
// for diagnostics.
type parser struct {
	src    string
	pos    int
	line   uint32
	column uint32
}

// Parse reads a complete debugger script and returns its commands in order.
// It does not check command ordering rules or duplicate semantics; see
// Validate for that.
func Parse(src string) ([]Command, error) {
	p := &parser{src: src, line: 1, column: 1}
	var cmds []Command
	for {
		p.skipSpaceAndComments()
		if p.atEnd() {
			break
		}
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	ch := p.src[p.pos]
	p.pos++
	if ch == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	return ch
}

func (p *parser) errorf(format string, args ...any) error {
	return malerr.NewScriptParseErrorAt(fmt.Sprintf(format, args...), p.line, p.column)
}

func (p *parser) skipSpaceAndComments() {
	for !p.atEnd() {
		ch := p.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			p.advance()
			continue
		}
		if ch == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
			for !p.atEnd() && p.peek() != '\n' {
				p.advance()
			}
			continue
		}
		break
	}
}

func (p *parser) parseCommand() (Command, error) {
	startLine := p.line
	name, err := p.parseIdentifier()
	if err != nil {
		return Command{}, err
	}

	spec, ok := funcSpecs[name]
	if !ok {
		return Command{}, p.errorf("unknown function %q", name)
	}

	p.skipSpaceAndComments()
	if p.peek() != '(' {
		return Command{}, p.errorf("expected '(' after function name %q", name)
	}
	p.advance()

	args := make(map[string]Value)
	p.skipSpaceAndComments()
	for p.peek() != ')' {
		argName, err := p.parseIdentifier()
		if err != nil {
			return Command{}, err
		}

		as := findArg(spec, argName)
		if as == nil {
			return Command{}, p.errorf("function %q has no argument %q", name, argName)
		}
		if _, ok := args[argName]; ok {
			return Command{}, p.errorf("argument %q repeated in function %q", argName, name)
		}

		p.skipSpaceAndComments()
		if p.peek() != '=' {
			return Command{}, p.errorf("expected '=' after argument %q", argName)
		}
		p.advance()
		p.skipSpaceAndComments()

		val, err := p.parseValue(as.kind)
		if err != nil {
			return Command{}, err
		}
		args[argName] = val

		p.skipSpaceAndComments()
		if p.peek() == ',' {
			p.advance()
			p.skipSpaceAndComments()
			continue
		}
		break
	}

	if p.peek() != ')' {
		return Command{}, p.errorf("expected ')' to close function %q", name)
	}
	p.advance()
	p.skipSpaceAndComments()
	if p.peek() != ';' {
		return Command{}, p.errorf("expected ';' to terminate function %q", name)
	}
	p.advance()

	for _, as := range spec {
		if as.required {
			if _, ok := args[as.name]; !ok {
				return Command{}, p.errorf("function %q missing required argument %q", name, as.name)
			}
		}
	}

	return Command{Name: name, Args: args, Line: startLine}, nil
}

func findArg(spec []argSpec, name string) *argSpec {
	for i := range spec {
		if spec[i].name == name {
			return &spec[i]
		}
	}
	return nil
}

func (p *parser) parseIdentifier() (string, error) {
	start := p.pos
	if !isIdentStart(p.peek()) {
		return "", p.errorf("expected identifier")
	}
	for !p.atEnd() && isIdentCont(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos], nil
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// parseValue dispatches on the expected argument kind. Uint-typed arguments
// additionally accept a ternary literal (per the address = uint/ternary
// convention), normalised down to its uint32 representation.
func (p *parser) parseValue(kind ValueKind) (Value, error) {
	switch kind {
	case KindUint:
		return p.parseUintOrTernary()
	case KindRegister:
		return p.parseRegister()
	case KindString:
		return p.parseString()
	default:
		return Value{}, p.errorf("unsupported argument kind")
	}
}

func (p *parser) parseUintOrTernary() (Value, error) {
	if p.peek() == 't' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '0' || p.src[p.pos+1] == '1' || p.src[p.pos+1] == '2') {
		p.advance()
		start := p.pos
		for !p.atEnd() && p.peek() >= '0' && p.peek() <= '2' {
			p.advance()
		}
		t, err := ternary.FromString(p.src[start:p.pos])
		if err != nil {
			return Value{}, p.errorf("invalid ternary literal: %s", err)
		}
		return Value{Kind: KindUint, Uint: t.Uint32()}, nil
	}

	start := p.pos
	if p.peek() == '0' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == 'x' || p.src[p.pos+1] == 'X') {
		p.advance()
		p.advance()
		for !p.atEnd() && isHexDigit(p.peek()) {
			p.advance()
		}
	} else {
		for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
			p.advance()
		}
	}
	if p.pos == start {
		return Value{}, p.errorf("expected integer literal")
	}

	lit := p.src[start:p.pos]
	v, err := strconv.ParseUint(lit, 0, 32)
	if err != nil {
		return Value{}, p.errorf("invalid integer literal %q: %s", lit, err)
	}
	return Value{Kind: KindUint, Uint: uint32(v)}, nil
}

func (p *parser) parseRegister() (Value, error) {
	switch p.peek() {
	case 'A':
		p.advance()
		return Value{Kind: KindRegister, Register: vcpu.RegA}, nil
	case 'C':
		p.advance()
		return Value{Kind: KindRegister, Register: vcpu.RegC}, nil
	case 'D':
		p.advance()
		return Value{Kind: KindRegister, Register: vcpu.RegD}, nil
	default:
		return Value{}, p.errorf("expected register literal (A, C or D)")
	}
}

func (p *parser) parseString() (Value, error) {
	if p.peek() != '"' {
		return Value{}, p.errorf("expected '\"' to start string literal")
	}
	p.advance()

	var b strings.Builder
	for {
		if p.atEnd() {
			return Value{}, p.errorf("unterminated string literal")
		}
		ch := p.peek()
		if ch == '"' {
			p.advance()
			break
		}
		if ch == '\\' {
			b.WriteByte(p.advance())
			if p.atEnd() {
				return Value{}, p.errorf("unterminated string literal")
			}
			b.WriteByte(p.advance())
			continue
		}
		b.WriteByte(p.advance())
	}

	unescaped, err := unescapeASCII(b.String())
	if err != nil {
		return Value{}, p.errorf("%s", err)
	}
	return Value{Kind: KindString, String: unescaped}, nil
}
