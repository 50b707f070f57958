/*
 * malbolge - Virtual CPU execution loop
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

// Package vcpu implements the Malbolge virtual CPU: the fetch/pre-cipher/
// dispatch/post-cipher cycle over a virtual memory image, plus the gate
// primitive a debugger uses to pause, single-step and resume it.
package vcpu

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/rcornwell/malbolge/internal/instruction"
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/memory"
	"github.com/rcornwell/malbolge/internal/ternary"
	"github.com/rcornwell/malbolge/util/debug"
)

// Register identifies one of the vCPU's three registers.
type Register int

const (
	RegA Register = iota
	RegC
	RegD
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegC:
		return "C"
	case RegD:
		return "D"
	default:
		return "?"
	}
}

// State is the vCPU's coarse run state.
type State int

const (
	Ready State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Stopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// RegisterValue is a snapshot of a register: A has no address, C and D are
// addresses with the memory cell they currently point at.
type RegisterValue struct {
	HasAddress bool
	Address    uint32
	Value      ternary.Ternary
}

// StepCallback is consulted before every register movement during the
// execution cycle (once for C at the top of each step, again for D whenever
// an instruction consults it). Returning true requests the vCPU pause
// immediately after the callback returns, which is how a debugger implements
// breakpoints without the hot loop knowing anything about them.
type StepCallback func(address uint32, reg Register) (stop bool)

// RunState is the run/pause/stop notification reported to a RunningCallback.
// It is distinct from the coarse State a Control caller polls: a vCPU stays
// State()==Running for the whole time its gate holds it paused.
type RunState int

const (
	RunRunning RunState = iota
	RunPaused
	RunStopped
)

func (s RunState) String() string {
	switch s {
	case RunRunning:
		return "RUNNING"
	case RunPaused:
		return "PAUSED"
	case RunStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// RunningCallback is notified whenever the vCPU's externally visible state
// changes: transitions into and out of a pause report RunPaused and
// RunRunning, and the final transition out of the loop reports RunStopped.
type RunningCallback func(state RunState)

// Control is returned by Configure and is the only way to influence a
// running vCPU from outside its own goroutine.
type Control struct {
	Pause         func()
	Step          func()
	Resume        func()
	AddressValue  func(address uint32) ternary.Ternary
	RegisterValue func(reg Register) RegisterValue
}

// CPU is a Malbolge virtual machine instance: registers, memory and the
// gate used to pause/step it. The zero value is not usable; construct with
// New.
type CPU struct {
	mem *memory.Memory

	state atomic.Int32

	mu sync.Mutex // guards a, c, d against concurrent debugger queries
	a  ternary.Ternary
	c  memory.Cursor
	d  memory.Cursor

	gate      *gate
	stepCB    StepCallback
	runningCB RunningCallback

	stopped chan struct{}
	once    sync.Once

	log *slog.Logger
}

// New constructs a CPU over mem, initially in the Ready state.
func New(mem *memory.Memory, log *slog.Logger) *CPU {
	if log == nil {
		log = slog.Default()
	}
	cpu := &CPU{
		mem:     mem,
		c:       mem.Begin(),
		d:       mem.Begin(),
		gate:    newGate(),
		stopped: make(chan struct{}),
		log:     log,
	}
	cpu.state.Store(int32(Ready))
	return cpu
}

// State returns the vCPU's current coarse run state.
func (cpu *CPU) State() State {
	return State(cpu.state.Load())
}

// Configure attaches debugger hooks to the vCPU. It must be called before
// Run, at most once. The returned Control is how the debugger pauses,
// steps, resumes and inspects the vCPU while Run executes on another
// goroutine.
func (cpu *CPU) Configure(running RunningCallback, step StepCallback) (Control, error) {
	if cpu.State() != Ready {
		return Control{}, malerr.ErrWrongState("vCPU must be READY to configure debugger hooks")
	}
	cpu.runningCB = running
	cpu.stepCB = step

	return Control{
		Pause:         func() { cpu.gate.close() },
		Step:          func() { cpu.gate.open(1) },
		Resume:        func() { cpu.gate.open(alwaysAllow) },
		AddressValue:  cpu.AddressValue,
		RegisterValue: cpu.RegisterValue,
	}, nil
}

// AddressValue returns the value currently held at address.
func (cpu *CPU) AddressValue(address uint32) ternary.Ternary {
	return cpu.mem.Get(address)
}

// RegisterValue returns a snapshot of reg.
func (cpu *CPU) RegisterValue(reg Register) RegisterValue {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	switch reg {
	case RegA:
		return RegisterValue{Value: cpu.a}
	case RegC:
		return RegisterValue{HasAddress: true, Address: cpu.c.Address(), Value: cpu.c.Get()}
	case RegD:
		return RegisterValue{HasAddress: true, Address: cpu.d.Address(), Value: cpu.d.Get()}
	default:
		return RegisterValue{}
	}
}

// Stop requests early termination. It is safe to call from any goroutine
// and at any time; the running goroutine notices at the top of its next
// step, or while blocked waiting for input.
func (cpu *CPU) Stop() {
	if cpu.State() != Running {
		return
	}
	cpu.state.Store(int32(Stopped))
	cpu.once.Do(func() { close(cpu.stopped) })
	// Unblock a goroutine parked in the gate (paused or mid single-step)
	// so it can observe the stop on its next loop check.
	cpu.gate.open(alwaysAllow)
}

// inputByte is one byte read from the program's input stream, or an EOF
// notice once the stream is exhausted.
type inputByte struct {
	b   byte
	eof bool
}

// Run executes the loaded program to completion (or until Stop is called,
// or an ExecutionError occurs) reading input bytes from in and writing
// output bytes to out. waitingForInput, if non-nil, is called just before
// the vCPU blocks on a read instruction with no data yet available.
//
// Run is meant to be invoked on its own goroutine; it blocks for the
// lifetime of the program.
func (cpu *CPU) Run(ctx context.Context, in io.Reader, out io.Writer, waitingForInput func()) error {
	if cpu.State() != Ready {
		return malerr.ErrWrongState("vCPU must be READY to run")
	}
	cpu.state.Store(int32(Running))
	cpu.notifyRunning(RunRunning)
	defer func() {
		cpu.state.Store(int32(Stopped))
		cpu.notifyRunning(RunStopped)
	}()

	inputCh := cpu.startInputReader(in)

	var step uint64
	for {
		select {
		case <-cpu.stopped:
			return nil
		case <-ctx.Done():
			cpu.Stop()
			return nil
		default:
		}

		cpu.gate.pass(cpu.gateNotifier())

		cpu.mu.Lock()
		cAddr := cpu.c.Address()
		cpu.mu.Unlock()
		if cpu.stepCB != nil && cpu.stepCB(cAddr, RegC) {
			cpu.gate.close()
			cpu.gate.pass(cpu.gateNotifier())
		}

		cpu.mu.Lock()
		raw := cpu.c.Get()
		ch := byte(raw.Uint32())
		instr, ok := ternary.PreCipher(ch, int(cpu.c.Address()))
		cpu.mu.Unlock()
		if !ok {
			return malerr.NewExecutionError(malerr.ExecNonGraphical,
				"pre-cipher non-whitespace character must be graphical ASCII", step)
		}

		debug.Debugf("vcpu", debug.Debug, "step %d: addr=%d instr=%c", step, cAddr, instr)
		if debug.Level >= debug.Verbose {
			cpu.mu.Lock()
			debug.Debugf("vcpu", debug.Verbose, "step %d: a=%s c=%d d=%d",
				step, cpu.a.String(), cpu.c.Address(), cpu.d.Address())
			cpu.mu.Unlock()
		}

		stop, err := cpu.dispatch(ctx, instruction.Type(instr), inputCh, out, waitingForInput, step)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		cpu.mu.Lock()
		preCipherByte := byte(cpu.c.Get().Uint32())
		pc, ok := ternary.PostCipher(preCipherByte)
		if !ok {
			cpu.mu.Unlock()
			return malerr.NewExecutionError(malerr.ExecNonGraphical,
				"post-cipher non-whitespace character must be graphical ASCII", step)
		}
		debug.Debugf("vcpu", debug.Trace, "step %d: post-cipher %q -> %q at addr=%d",
			step, preCipherByte, pc, cpu.c.Address())
		cpu.c.Set(ternary.New(uint32(pc)))

		cpu.c = cpu.c.Next()
		cpu.d = cpu.d.Next()
		cpu.mu.Unlock()

		step++
	}
}

// dispatch executes the single deciphered instruction instr. It reports
// stop=true when the program should terminate successfully (the 'v'
// instruction, or Stop having been requested mid read).
func (cpu *CPU) dispatch(
	ctx context.Context,
	instr instruction.Type,
	inputCh <-chan inputByte,
	out io.Writer,
	waitingForInput func(),
	step uint64,
) (bool, error) {
	switch instr {
	case instruction.SetDataPtr:
		cpu.checkD(step)
		cpu.mu.Lock()
		cpu.d = cpu.d.Goto(cpu.d.Get().Uint32())
		cpu.mu.Unlock()

	case instruction.SetCodePtr:
		cpu.checkD(step)
		cpu.mu.Lock()
		cpu.c = cpu.c.Goto(cpu.d.Get().Uint32())
		cpu.mu.Unlock()

	case instruction.Rotate:
		cpu.checkD(step)
		cpu.mu.Lock()
		v := cpu.d.Get().Rotate()
		cpu.d.Set(v)
		cpu.a = v
		cpu.mu.Unlock()

	case instruction.Op:
		cpu.checkD(step)
		cpu.mu.Lock()
		v := cpu.a.Op(cpu.d.Get())
		cpu.d.Set(v)
		cpu.a = v
		cpu.mu.Unlock()

	case instruction.Read:
		var in inputByte
		select {
		case in = <-inputCh:
		default:
			if waitingForInput != nil {
				waitingForInput()
			}
			select {
			case <-cpu.stopped:
				return true, nil
			case <-ctx.Done():
				return true, nil
			case in = <-inputCh:
			}
		}
		cpu.mu.Lock()
		if in.eof {
			cpu.a = ternary.New(ternary.Max)
		} else {
			cpu.a = ternary.New(uint32(in.b))
		}
		cpu.mu.Unlock()

	case instruction.Write:
		cpu.mu.Lock()
		a := cpu.a
		cpu.mu.Unlock()
		if a.Uint32() != ternary.Max {
			if _, err := out.Write([]byte{byte(a.Uint32())}); err != nil {
				return false, malerr.NewSystemError("write to output failed: "+err.Error(), 0)
			}
		}

	case instruction.Stop:
		return true, nil

	default:
		// Nop: any other post-cipher character is a no-op.
	}

	return false, nil
}

// checkD runs the step callback for the D register, as the original cycle
// does for every instruction that consults D before acting on it.
func (cpu *CPU) checkD(step uint64) {
	cpu.mu.Lock()
	dAddr := cpu.d.Address()
	cpu.mu.Unlock()
	if cpu.stepCB != nil && cpu.stepCB(dAddr, RegD) {
		cpu.gate.close()
		cpu.gate.pass(cpu.gateNotifier())
	}
}

func (cpu *CPU) notifyRunning(state RunState) {
	if cpu.runningCB != nil {
		cpu.runningCB(state)
	}
}

func (cpu *CPU) gateNotifier() notifier {
	if cpu.runningCB == nil {
		return nil
	}
	return func(closed bool) {
		if closed {
			cpu.notifyRunning(RunPaused)
		} else {
			cpu.notifyRunning(RunRunning)
		}
	}
}

// startInputReader spawns the goroutine that turns blocking reads from in
// into channel sends, so a read instruction can select against it alongside
// stop/cancellation without the busy-wait poll the reference implementation
// uses (see DESIGN.md).
func (cpu *CPU) startInputReader(in io.Reader) <-chan inputByte {
	ch := make(chan inputByte)
	if in == nil {
		close(ch)
		return ch
	}

	go func() {
		r := bufio.NewReader(in)
		for {
			b, err := r.ReadByte()
			if err != nil {
				// The stream is exhausted: answer every further read
				// instruction with the EOF sentinel rather than hanging,
				// per the documented simplification in DESIGN.md.
				for {
					select {
					case ch <- inputByte{eof: true}:
					case <-cpu.stopped:
						return
					}
				}
			}
			select {
			case ch <- inputByte{b: b}:
			case <-cpu.stopped:
				return
			}
		}
	}()
	return ch
}
