// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task provides a single-owner, eagerly-started asynchronous task
// primitive on [code.hybscloud.com/kont].
//
// A [Task] represents a computation that begins running on the calling
// goroutine the moment it is spawned, may suspend at internal await points,
// and produces exactly one outcome (a value or a failure) observable by at
// most one waiter. Tasks are themselves awaitable, so task bodies compose
// by awaiting other tasks.
//
// # Architecture
//
//   - Bodies: task bodies are [code.hybscloud.com/kont] computations, in either
//     the closure-based Cont-world ([Spawn]) or the defunctionalized Expr-world
//     ([SpawnExpr]). The runtime drives them one effect at a time via kont stepping.
//   - Handshake: waiter registration and completion share a single mutex-guarded
//     critical section; whichever runs first decides whether the waiter suspends
//     or proceeds. Continuations are one-shot ([code.hybscloud.com/kont.Affine]).
//   - Fast path: a task that never crosses a real suspension completes on the
//     spawning goroutine and is observed without any lock acquisition.
//   - Failures: opaque error values captured at completion and re-raised verbatim
//     at extraction, or folded into [code.hybscloud.com/kont.Either] via [Outcome].
//
// # API Topologies
//
//   - Spawning: [Spawn], [SpawnExpr]. The handle is move-only in spirit:
//     [Task.Transfer] rebinds, [Task.Release] tears down after completion.
//   - Awaiting: the [Awaitable] contract (Ready, Suspend, Resume), satisfied by
//     both [Task] and [Source].
//   - Cont-world: [AwaitBind], [AwaitThen], [Fail].
//   - Expr-world: fused variants [ExprAwaitBind], [ExprAwaitThen], [ExprFail].
//
// # Integration
//
//   - External operations: [Source] is the bridge to work that finishes on
//     another goroutine; [Source.Complete] and [Source.Fail] resume a suspended
//     task on the completing goroutine.
//   - Scheduling: [Loop] is a minimal completion reactor on a bounded lock-free
//     SPSC ring ([code.hybscloud.com/lfq]); [Loop.Post] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//   - Blocking: [Wait] and [Outcome] park a plain goroutine on an unfinished task
//     using adaptive backoff, without spawning goroutines or creating channels.
//
// # Example
//
//	src := task.NewSource[string]()
//	t := task.Spawn(task.AwaitBind(src, func(s string) kont.Eff[string] {
//		return kont.Pure(s + "!")
//	}))
//	go src.Complete("done")
//	result, err := task.Wait(t)
//	// result == "done!", err == nil
package task
