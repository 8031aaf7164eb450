// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// taskContext is the shared mutable record backing one task or source:
// the completion flag, the stored outcome, the registered waiter, the
// synchronous-path flag, and the lock guarding the register/complete race.
//
// register and complete share the single critical section; whichever runs
// first decides whether the waiter suspends or proceeds, and the loser
// observes the winner's writes inside the same lock.
//
// The zero value is a valid non-synchronous context (no fast path), which
// is what a [Source] needs; task contexts call markSync first.
type taskContext struct {
	// mu guards k and the outcome slot across the register/complete race.
	// It is held only across the brief handshake, never across the body.
	mu sync.Mutex

	// done flips 0→1 exactly once, after the outcome slot is written.
	done atomix.Uint32

	// sync is 1 while the computation has never crossed a real suspension.
	// Cleared only on the goroutine currently driving the body, before the
	// first cross-boundary handoff; done is published by the same goroutine
	// in that case, so the lock-free fast path needs no further ordering.
	sync atomix.Uint32

	// k is the waiter registered before completion, at most once.
	k Continuation

	value kont.Resumed
	err   error
	taken bool
}

// markSync enables the synchronous fast path. Called once, at spawn.
func (c *taskContext) markSync() {
	c.sync.Store(1)
}

// markSuspended records that the computation crossed a real suspension.
// From here on completion may be signaled from another goroutine and every
// observation of done goes through the lock or the done atomic.
func (c *taskContext) markSuspended() {
	c.sync.Store(0)
}

// fastDone is the lock-free readiness check: true iff the computation never
// crossed a real suspension and already completed.
func (c *taskContext) fastDone() bool {
	return c.sync.Load() != 0 && c.done.Load() != 0
}

// finished reports completion. The done atomic alone gives the cross-thread
// visibility the outcome slot needs: it is stored after the slot is written.
func (c *taskContext) finished() bool {
	return c.done.Load() != 0
}

// ready is the full readiness check behind [Task.Ready]: the fast path when
// applicable, otherwise a locked read of done so an in-flight completion is
// either fully observed or not at all.
func (c *taskContext) ready() bool {
	if c.fastDone() {
		return true
	}
	c.mu.Lock()
	d := c.done.Load() != 0
	c.mu.Unlock()
	return d
}

// register stores k as the continuation to resume on completion.
// Returns false if completion already happened: the caller must not
// suspend, or it would wait forever on an event that already fired.
func (c *taskContext) register(k Continuation) bool {
	c.mu.Lock()
	if c.done.Load() != 0 {
		c.mu.Unlock()
		return false
	}
	if c.k != nil {
		c.mu.Unlock()
		panic("task: already awaited")
	}
	c.k = k
	c.mu.Unlock()
	return true
}

// complete stores the outcome, marks completion, and returns the waiter to
// resume, if one was registered. The caller resumes it after the critical
// section, so a waiter is only ever resumed with the final state visible.
func (c *taskContext) complete(v kont.Resumed, err error) Continuation {
	c.mu.Lock()
	if c.done.Load() != 0 {
		c.mu.Unlock()
		panic("task: already completed")
	}
	c.value, c.err = v, err
	c.done.Store(1)
	k := c.k
	c.k = nil
	c.mu.Unlock()
	return k
}

// take extracts the outcome exactly once: the captured failure re-raised
// verbatim, or the stored value moved out of the slot.
func (c *taskContext) take() (kont.Resumed, error) {
	if c.done.Load() == 0 {
		panic("task: result not ready")
	}
	if c.taken {
		panic("task: result taken twice")
	}
	c.taken = true
	if c.err != nil {
		return nil, c.err
	}
	v := c.value
	c.value = nil
	return v, nil
}
