// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// Task is the single-owner handle to one in-flight or completed asynchronous
// computation. The zero value is an empty handle, bound to nothing; every
// operation on an empty handle except [Task.Transfer] and [Task.Release]
// panics. A bound handle is produced by [Spawn] or [SpawnExpr] and owns its
// computation exclusively: at most one waiter, at most one await, at most one
// result extraction.
//
// Task implements [Awaitable], so a task body awaits another task the same
// way it awaits a [Source].
type Task[R any] struct {
	ctx    *taskContext
	serial Serial
}

// Spawn starts body immediately on the calling goroutine and returns the
// handle. Execution proceeds until the first await of a not-yet-ready
// [Awaitable]; a body that never suspends is already finished when Spawn
// returns, and its result is observable through the lock-free fast path.
func Spawn[R any](body kont.Eff[R]) *Task[R] {
	return SpawnExpr(kont.Reify(body))
}

// SpawnExpr is [Spawn] for Expr-world bodies.
func SpawnExpr[R any](body kont.Expr[R]) *Task[R] {
	t := &Task[R]{ctx: &taskContext{}, serial: nextSerial()}
	t.ctx.markSync()
	result, susp := kont.StepExpr(body)
	t.step(result, susp)
	return t
}

// Serial returns the serial number assigned to this task at spawn.
func (t *Task[R]) Serial() Serial {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	return t.serial
}

// Ready reports whether the result is already available, implementing the
// [Awaitable] contract for waiters of this task. On the synchronous fast
// path no lock is acquired; otherwise done is read under the handshake lock.
func (t *Task[R]) Ready() bool {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	return t.ctx.ready()
}

// Suspend registers k as this task's waiter, implementing [Awaitable].
// Returns false if the task finished between the readiness check and this
// call; the waiter must then proceed instead of suspending.
func (t *Task[R]) Suspend(k Continuation) bool {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	return t.ctx.register(k)
}

// Resume extracts the outcome, type-erased, implementing [Awaitable].
// Valid exactly once, after completion. A captured failure is returned
// verbatim; it is what the body raised, not a wrapper.
func (t *Task[R]) Resume() (kont.Resumed, error) {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	return t.ctx.take()
}

// Result extracts the typed outcome. Valid exactly once, after completion;
// calling it before the task finished, or a second time, panics.
func (t *Task[R]) Result() (R, error) {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	v, err := t.ctx.take()
	if err != nil {
		var zero R
		return zero, err
	}
	return v.(R), nil
}

// Finished reports whether the computation has fully completed.
// A pure query: one atomic load, no lock.
func (t *Task[R]) Finished() bool {
	if t.ctx == nil {
		panic("task: empty handle")
	}
	return t.ctx.finished()
}

// Transfer moves ownership of the computation to a fresh handle, leaving t
// empty. Transferring an empty handle yields another empty handle.
func (t *Task[R]) Transfer() *Task[R] {
	moved := &Task[R]{ctx: t.ctx, serial: t.serial}
	t.ctx = nil
	return moved
}

// Release detaches the handle from its computation. The computation must
// have finished: releasing an in-flight task would free state still
// reachable from whatever completes it, so Release panics instead.
// Releasing an empty handle is a no-op.
func (t *Task[R]) Release() {
	if t.ctx == nil {
		return
	}
	if !t.ctx.finished() {
		panic("task: released while running")
	}
	t.ctx = nil
}
