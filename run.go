// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// awaitDispatcher is the structural interface for await operations.
type awaitDispatcher interface {
	DispatchAwait() Awaitable
}

// failDispatcher is the structural interface for failure operations.
type failDispatcher interface {
	DispatchFail() error
}

// step advances the task body from a resumption point until the next real
// suspension or completion. It runs on the spawning goroutine first; after
// a real suspension, on whichever goroutine completes the awaited object.
//
// Each effect is resolved against the [Awaitable] contract: an already-ready
// source is consumed inline with no lock and no registration; otherwise the
// task flips off its synchronous flag and hands a one-shot continuation to
// the source. A false return from Suspend means the source finished in the
// window after Ready, and the body proceeds inline after all.
func (t *Task[R]) step(result R, susp *kont.Suspension[R]) {
	for susp != nil {
		switch op := susp.Op().(type) {
		case failDispatcher:
			susp.Discard()
			t.finish(nil, op.DispatchFail())
			return
		case awaitDispatcher:
			src := op.DispatchAwait()
			if src.Ready() {
				v, err := src.Resume()
				if err != nil {
					susp.Discard()
					t.finish(nil, err)
					return
				}
				result, susp = susp.Resume(v)
				continue
			}

			t.ctx.markSuspended()
			pending := susp
			k := kont.Once(func(struct{}) struct{} {
				v, err := src.Resume()
				if err != nil {
					pending.Discard()
					t.finish(nil, err)
					return struct{}{}
				}
				r, next := pending.Resume(v)
				t.step(r, next)
				return struct{}{}
			})
			if src.Suspend(k) {
				return
			}

			// Lost the race: src completed between Ready and Suspend.
			k.Discard()
			v, err := src.Resume()
			if err != nil {
				susp.Discard()
				t.finish(nil, err)
				return
			}
			result, susp = susp.Resume(v)
		default:
			panic("task: unhandled effect in task body")
		}
	}
	t.finish(result, nil)
}

// finish is the completion dispatcher. It runs exactly once, at the natural
// end of the body (value produced or failure raised): it stores the outcome,
// marks the task done, and resumes the registered waiter in this frame's
// place. With no waiter registered, control simply returns to whoever drove
// the final step — the spawner or an external completer.
func (t *Task[R]) finish(v kont.Resumed, err error) {
	k := t.ctx.complete(v, err)
	if k != nil {
		k.Resume(struct{}{})
	}
}
