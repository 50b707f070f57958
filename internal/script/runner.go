/*
 * malbolge - Debugger script runner
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
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/rcornwell/malbolge/internal/debugger"
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/vcpu"
	"github.com/rcornwell/malbolge/util/fmtval"
)

// Validate checks the structural rules a script must follow, independent of
// what executing it would actually do: exactly one run, at least one
// add_breakpoint before it if any breakpoints are installed at all,
// step/resume only after run, and stop (if present) only as the script's
// final command.
func Validate(cmds []Command) error {
	sawRun := false
	sawBreakpoint := false
	sawBreakpointBeforeRun := false
	runCount := 0
	for i, c := range cmds {
		switch c.Name {
		case FuncRun:
			runCount++
			if runCount > 1 {
				return malerr.NewScriptInvalidError("a script may contain at most one run command")
			}
			sawRun = true
		case FuncAddBreakpoint:
			sawBreakpoint = true
			if !sawRun {
				sawBreakpointBeforeRun = true
			}
		case FuncStep, FuncResume:
			if !sawRun {
				return malerr.NewScriptInvalidError(c.Name + " must appear after run")
			}
		case FuncStop:
			if !sawRun {
				return malerr.NewScriptInvalidError("stop must appear after run")
			}
			if i != len(cmds)-1 {
				return malerr.NewScriptInvalidError("stop must be the script's last command")
			}
		}
	}
	if runCount == 0 {
		return malerr.NewScriptInvalidError("a script must contain a run command")
	}
	if sawBreakpoint && !sawBreakpointBeforeRun {
		return malerr.NewScriptInvalidError("at least one add_breakpoint must appear before run")
	}
	return nil
}

// Runner executes a validated script's commands against a vCPU and the
// debugger attached to it.
type Runner struct {
	cpu   *vcpu.CPU
	dbg   *debugger.Debugger
	out   io.Writer
	log   *slog.Logger
	input *queueReader

	runErr  chan error
	started bool
}

// NewRunner builds a Runner. out receives both the debugged program's output
// and the "[DBGR]: " lines of query commands (address_value, register_value).
// Command errors are returned by Run; the program's run error by Wait.
func NewRunner(cpu *vcpu.CPU, dbg *debugger.Debugger, out io.Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		cpu:   cpu,
		dbg:   dbg,
		out:   out,
		log:   log,
		input: newQueueReader(),
		runErr: make(chan error, 1),
	}
}

// Run executes cmds in order. It blocks for the script's whole duration,
// which includes however long the debugged program itself runs.
func (r *Runner) Run(ctx context.Context, cmds []Command) error {
	if err := Validate(cmds); err != nil {
		return err
	}

	for _, c := range cmds {
		if err := r.execute(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) execute(ctx context.Context, c Command) error {
	switch c.Name {
	case FuncAddBreakpoint:
		addr := c.Args["address"].Uint
		ic := uint64(0)
		if v, ok := c.Args["ignore_count"]; ok {
			ic = uint64(v.Uint)
		}
		r.dbg.AddBreakpoint(debugger.Breakpoint{Address: addr, IgnoreCount: ic})

	case FuncRemoveBreakpoint:
		r.dbg.RemoveBreakpoint(c.Args["address"].Uint)

	case FuncRun:
		return r.runCommand(ctx, c)

	case FuncAddressValue:
		v, err := r.dbg.AddressValue(c.Args["address"].Uint)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, fmtval.Address(v))

	case FuncRegisterValue:
		reg := c.Args["reg"].Register
		v, err := r.dbg.RegisterValue(reg)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, fmtval.Register(v))

	case FuncStep:
		if err := r.dbg.Step(); err != nil {
			return err
		}
		r.dbg.WaitPaused(ctx)

	case FuncResume:
		if err := r.dbg.Resume(); err != nil {
			return err
		}
		r.dbg.WaitPaused(ctx)

	case FuncStop:
		r.cpu.Stop()

	case FuncOnInput:
		r.input.add(c.Args["data"].String)
	}
	return nil
}

func (r *Runner) runCommand(ctx context.Context, c Command) error {
	r.started = true

	if ms := c.Args["max_runtime_ms"].Uint; ms > 0 {
		// cpu.Stop is a no-op once the vCPU is no longer RUNNING, so an
		// AfterFunc that fires after the program already finished is
		// harmless; no need to cancel it explicitly.
		time.AfterFunc(time.Duration(ms)*time.Millisecond, func() {
			r.cpu.Stop()
		})
	}

	go func() {
		r.runErr <- r.cpu.Run(ctx, r.input, r.out, nil)
	}()

	r.dbg.WaitPaused(ctx)
	return nil
}

// Wait blocks until the debugged program started by a run command finishes
// (successfully or with an error), returning that error.
func (r *Runner) Wait() error {
	if !r.started {
		return nil
	}
	return <-r.runErr
}

// queueReader is an io.Reader fed by on_input script commands: reads block
// until data has been queued, rather than reporting EOF, matching the
// script language's "block waiting for input" semantics.
type queueReader struct {
	mu   sync.Mutex
	buf  []byte
	more chan struct{}
}

func newQueueReader() *queueReader {
	return &queueReader{more: make(chan struct{}, 1)}
}

func (q *queueReader) add(s string) {
	q.mu.Lock()
	q.buf = append(q.buf, s...)
	q.mu.Unlock()
	select {
	case q.more <- struct{}{}:
	default:
	}
}

func (q *queueReader) Read(p []byte) (int, error) {
	for {
		q.mu.Lock()
		if len(q.buf) > 0 {
			n := copy(p, q.buf)
			q.buf = q.buf[n:]
			q.mu.Unlock()
			return n, nil
		}
		q.mu.Unlock()
		<-q.more
	}
}
