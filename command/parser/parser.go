/*
 * malbolge - Debugger REPL command parser
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

// Package parser implements the interactive debugger's command line: a
// prefix-matching dispatch table over a small set of commands (run, pause,
// step, resume, break, delete, print, quit), the same shape the teacher
// uses for its device console, generalised from device/option tokens to
// vCPU/debugger tokens.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/malbolge/internal/debugger"
	"github.com/rcornwell/malbolge/internal/vcpu"
	"github.com/rcornwell/malbolge/util/fmtval"
)

// Session is the REPL's view of a loaded program: the vCPU, its attached
// debugger, and the I/O streams the debugged program itself reads/writes.
type Session struct {
	CPU *vcpu.CPU
	Dbg *debugger.Debugger
	Out io.Writer
	In  io.Reader

	runErr  chan error
	started bool
}

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *Session) (quit bool, err error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "run", min: 1, process: runCmd},
	{name: "pause", min: 1, process: pauseCmd},
	{name: "step", min: 2, process: stepCmd},
	{name: "resume", min: 2, process: resumeCmd},
	{name: "break", min: 2, process: breakCmd},
	{name: "delete", min: 1, process: deleteCmd},
	{name: "print", min: 1, process: printCmd, complete: printComplete},
	{name: "quit", min: 1, process: quitCmd},
	{name: "help", min: 1, process: helpCmd},
}

// ProcessCommand parses and runs one REPL command line against sess,
// returning whether the REPL should exit.
func ProcessCommand(commandLine string, sess *Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}

	return match[0].process(&line, sess)
}

// CompleteCmd returns tab-completion candidates for a partial command line.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.line[line.pos] == ' ' {
		line.skipSpace()
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(&line)
	}

	match := matchList(name)
	names := make([]string, len(match))
	for i, m := range match {
		names[i] = m.name
	}
	return names
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range len(name) {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool { return l.pos >= len(l.line) }

// getWord returns the next whitespace-delimited token, lowercased, or "" at
// end of line.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func (l *cmdLine) getUint() (uint32, error) {
	word := l.getWord()
	if word == "" {
		return 0, errors.New("expected a number")
	}
	v, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", word, err)
	}
	return uint32(v), nil
}

func runCmd(_ *cmdLine, sess *Session) (bool, error) {
	if sess.started {
		return false, errors.New("program is already running")
	}
	sess.started = true
	sess.runErr = make(chan error, 1)
	go func() {
		sess.runErr <- sess.CPU.Run(context.Background(), sess.In, sess.Out, nil)
	}()
	return false, nil
}

func pauseCmd(_ *cmdLine, sess *Session) (bool, error) {
	return false, sess.Dbg.Pause()
}

func stepCmd(_ *cmdLine, sess *Session) (bool, error) {
	return false, sess.Dbg.Step()
}

func resumeCmd(_ *cmdLine, sess *Session) (bool, error) {
	return false, sess.Dbg.Resume()
}

func breakCmd(line *cmdLine, sess *Session) (bool, error) {
	addr, err := line.getUint()
	if err != nil {
		return false, err
	}
	ignore := uint64(0)
	if !line.isEOL() {
		n, err := line.getUint()
		if err != nil {
			return false, err
		}
		ignore = uint64(n)
	}
	sess.Dbg.AddBreakpoint(debugger.Breakpoint{Address: addr, IgnoreCount: ignore})
	return false, nil
}

func deleteCmd(line *cmdLine, sess *Session) (bool, error) {
	addr, err := line.getUint()
	if err != nil {
		return false, err
	}
	if !sess.Dbg.RemoveBreakpoint(addr) {
		return false, fmt.Errorf("no breakpoint at %d", addr)
	}
	return false, nil
}

func printCmd(line *cmdLine, sess *Session) (bool, error) {
	switch line.getWord() {
	case "address", "a", "addr":
		addr, err := line.getUint()
		if err != nil {
			return false, err
		}
		v, err := sess.Dbg.AddressValue(addr)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(sess.Out, fmtval.Address(v))
	case "register", "r", "reg":
		reg, err := parseRegister(line.getWord())
		if err != nil {
			return false, err
		}
		rv, err := sess.Dbg.RegisterValue(reg)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(sess.Out, fmtval.Register(rv))
	default:
		return false, errors.New("print requires 'address <addr>' or 'register <A|C|D>'")
	}
	return false, nil
}

func printComplete(line *cmdLine) []string {
	word := line.getWord()
	candidates := []string{"address", "register"}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, c+" ")
		}
	}
	return out
}

func parseRegister(name string) (vcpu.Register, error) {
	switch strings.ToUpper(name) {
	case "A":
		return vcpu.RegA, nil
	case "C":
		return vcpu.RegC, nil
	case "D":
		return vcpu.RegD, nil
	default:
		return 0, fmt.Errorf("unknown register %q (want A, C or D)", name)
	}
}

func quitCmd(_ *cmdLine, sess *Session) (bool, error) {
	sess.CPU.Stop()
	return true, nil
}

// Wait blocks until a program started by the run command finishes,
// returning its error. It is a no-op if run was never issued.
func (s *Session) Wait() error {
	if !s.started {
		return nil
	}
	return <-s.runErr
}

func helpCmd(_ *cmdLine, _ *Session) (bool, error) {
	fmt.Println(`Commands:
  run                         start the loaded program
  pause                       request a pause at the next instruction
  step                        execute one instruction while paused
  resume                      continue from a pause
  break <addr> [ignore]       add a breakpoint, optionally ignoring the first N hits
  delete <addr>                remove a breakpoint
  print address <addr>        show the value at a memory address
  print register <A|C|D>      show a register's value
  quit                        stop the program and exit`)
	return false, nil
}
