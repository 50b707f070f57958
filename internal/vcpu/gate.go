/*
 * malbolge - Execution gate
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

package vcpu

import "sync"

// alwaysAllow marks a gate that never blocks until explicitly closed.
const alwaysAllow int64 = -1

// notifier is called by gate.pass just before it blocks, and again once
// unblocked. It is not called when the gate does not block. The gate's
// mutex is held across both calls, so a notifier must not call back into
// the same gate.
type notifier func(closed bool)

// gate lets one goroutine (the controller) pace another (the controlled
// goroutine), which calls pass to check in. It backs the vCPU's pause/step
// control: Pause closes the gate, Step opens it for a fixed number of
// passes, Resume opens it indefinitely. The zero value is not usable;
// construct with newGate.
type gate struct {
	mu    sync.Mutex
	cond  *sync.Cond
	allow int64
}

func newGate() *gate {
	g := &gate{allow: alwaysAllow}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// pass is called by the controlled goroutine at a point where it is willing
// to block. If the gate is open it returns immediately. Otherwise it
// decrements the remaining allowance, invokes notify (if non-nil) once the
// allowance reaches zero, and blocks until the controller reopens the gate.
func (g *gate) pass(notify notifier) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.allow == alwaysAllow {
		return
	}
	if g.allow > 0 {
		g.allow--
	}

	fire := g.allow == 0 && notify != nil
	if fire {
		notify(true)
	}

	for g.allow == 0 {
		g.cond.Wait()
	}

	if fire {
		notify(false)
	}
}

// open reopens the gate, allowing closeAfter further pass calls to proceed
// before it blocks again, or alwaysAllow to leave it open indefinitely.
func (g *gate) open(closeAfter int64) {
	g.mu.Lock()
	g.allow = closeAfter
	g.mu.Unlock()
	g.cond.Signal()
}

// close blocks the gate: the next pass call (and every one after it) will
// block until open is called again.
func (g *gate) close() {
	g.mu.Lock()
	g.allow = 0
	g.mu.Unlock()
	g.cond.Signal()
}
