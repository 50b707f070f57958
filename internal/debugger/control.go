/*
 * malbolge - Debugger control
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

// Package debugger attaches breakpoints and a pause/step/resume control
// surface to a running vCPU, tracking its own NOT_RUNNING/RUNNING/PAUSED
// state machine independently of the vCPU's internal state.
package debugger

import (
	"context"
	"sync"

	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/ternary"
	"github.com/rcornwell/malbolge/internal/vcpu"
)

// State is the debugged program's execution state, as observed by a client.
// It is independent of the vCPU's own State.
type State int

const (
	NotRunning State = iota
	RunningState
	Paused
)

func (s State) String() string {
	switch s {
	case NotRunning:
		return "NOT_RUNNING"
	case RunningState:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// BreakpointCallback decides whether a hit breakpoint should actually pause
// the program. It is called with the address and register (C or D) that
// triggered it.
type BreakpointCallback func(address uint32, reg vcpu.Register) (stop bool)

// AlwaysStop is the default breakpoint callback: any hit (once the ignore
// count is exhausted) pauses the program.
func AlwaysStop(uint32, vcpu.Register) bool { return true }

// Breakpoint describes a single watched address.
type Breakpoint struct {
	Address     uint32
	Callback    BreakpointCallback
	IgnoreCount uint64

	count uint64
}

// hit runs the breakpoint's ignore-count gate, then its callback.
func (b *Breakpoint) hit(reg vcpu.Register) bool {
	b.count++
	if b.count <= b.IgnoreCount {
		return false
	}
	cb := b.Callback
	if cb == nil {
		cb = AlwaysStop
	}
	return cb(b.Address, reg)
}

// Debugger wraps a vcpu.CPU, adding breakpoints and a three-state execution
// machine. It must be constructed before the vCPU's Run goroutine starts.
type Debugger struct {
	mu          sync.Mutex
	state       State
	breakpoints map[uint32]*Breakpoint
	control     vcpu.Control
	changed     chan struct{}
	started     bool // set once the vCPU first reports RunRunning
}

// New attaches a Debugger to cpu. cpu must be in its Ready state.
func New(cpu *vcpu.CPU) (*Debugger, error) {
	d := &Debugger{
		state:       NotRunning,
		breakpoints: make(map[uint32]*Breakpoint),
		changed:     make(chan struct{}, 1),
	}

	ctrl, err := cpu.Configure(d.onRunState, d.onStep)
	if err != nil {
		return nil, err
	}
	d.control = ctrl
	return d, nil
}

func (d *Debugger) onRunState(state vcpu.RunState) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch state {
	case vcpu.RunRunning:
		d.state = RunningState
		d.started = true
	case vcpu.RunPaused:
		d.state = Paused
	case vcpu.RunStopped:
		d.state = NotRunning
	}

	select {
	case d.changed <- struct{}{}:
	default:
	}
}

// WaitPaused blocks until the program is no longer in its RUNNING state
// (i.e. it has paused at a breakpoint, or stopped), or ctx is cancelled. If
// the vCPU has not started running yet, it first waits for it to start. It
// returns the state observed.
func (d *Debugger) WaitPaused(ctx context.Context) State {
	for {
		d.mu.Lock()
		s, started := d.state, d.started
		d.mu.Unlock()
		if started && s != RunningState {
			return s
		}
		select {
		case <-d.changed:
		case <-ctx.Done():
			return d.State()
		}
	}
}

// onStep is the vCPU's StepCallback: it looks up a breakpoint at address and
// runs it, returning whether the vCPU should now pause.
func (d *Debugger) onStep(address uint32, reg vcpu.Register) bool {
	d.mu.Lock()
	bp, ok := d.breakpoints[address]
	d.mu.Unlock()
	if !ok {
		return false
	}
	return bp.hit(reg)
}

// State returns the debugged program's current execution state.
func (d *Debugger) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Pause requests the program pause at its next instruction boundary. It
// returns a WrongState error if the program is not currently running.
func (d *Debugger) Pause() error {
	if d.State() != RunningState {
		return malerr.ErrWrongState("program is not running")
	}
	d.control.Pause()
	return nil
}

// Step executes one more instruction then pauses again. Only valid while
// paused.
func (d *Debugger) Step() error {
	if d.State() != Paused {
		return malerr.ErrWrongState("program is not paused")
	}
	d.mu.Lock()
	d.state = RunningState
	d.mu.Unlock()
	d.control.Step()
	return nil
}

// Resume continues execution from a paused state. It returns a WrongState
// error if the program is not paused.
func (d *Debugger) Resume() error {
	if d.State() != Paused {
		return malerr.ErrWrongState("program is not paused")
	}
	d.mu.Lock()
	d.state = RunningState
	d.mu.Unlock()
	d.control.Resume()
	return nil
}

// AddressValue returns the value at address. Only meaningful while paused.
func (d *Debugger) AddressValue(address uint32) (ternary.Ternary, error) {
	if d.State() != Paused {
		return ternary.Ternary{}, malerr.ErrWrongState("program is not paused")
	}
	return d.control.AddressValue(address), nil
}

// RegisterValue returns a snapshot of reg. Only meaningful while paused.
func (d *Debugger) RegisterValue(reg vcpu.Register) (vcpu.RegisterValue, error) {
	if d.State() != Paused {
		return vcpu.RegisterValue{}, malerr.ErrWrongState("program is not paused")
	}
	return d.control.RegisterValue(reg), nil
}

// AddBreakpoint installs bp, silently replacing any existing breakpoint at
// the same address.
func (d *Debugger) AddBreakpoint(bp Breakpoint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := bp
	b.count = 0
	d.breakpoints[bp.Address] = &b
}

// RemoveBreakpoint removes the breakpoint at address, reporting whether one
// was present.
func (d *Debugger) RemoveBreakpoint(address uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.breakpoints[address]; !ok {
		return false
	}
	delete(d.breakpoints, address)
	return true
}

// Breakpoints returns the addresses of every installed breakpoint.
func (d *Debugger) Breakpoints() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	addrs := make([]uint32, 0, len(d.breakpoints))
	for a := range d.breakpoints {
		addrs = append(addrs, a)
	}
	return addrs
}
