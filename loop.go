// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultLoopCapacity is the completion ring capacity used by [NewLoop]
// when given a non-positive capacity.
const DefaultLoopCapacity = 64

// Loop is a minimal completion reactor: the external scheduler that
// eventually invokes deferred completions. Producers hand completion thunks
// to [Loop.Post]; one goroutine consumes them in [Loop.Run], resuming
// whatever task continuations those completions unblock.
//
// The ring is a bounded lock-free SPSC queue: exactly one posting goroutine
// and exactly one running goroutine.
type Loop struct {
	q      lfq.SPSC[func()]
	closed atomix.Uint32
}

// NewLoop creates a Loop with the given ring capacity.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = DefaultLoopCapacity
	}
	l := &Loop{}
	l.q.Init(capacity)
	return l
}

// Post schedules f to run on the loop goroutine.
// Non-blocking: returns iox.ErrWouldBlock when the ring is full; the caller
// may retry after the consumer makes progress.
func (l *Loop) Post(f func()) error {
	return l.q.Enqueue(&f)
}

// Close asks Run to return once the ring is drained.
func (l *Loop) Close() {
	l.closed.Add(1)
}

// Run consumes posted completions until [Loop.Close], waiting past empty-ring
// boundaries with adaptive backoff (iox.Backoff). Runs each completion on the
// calling goroutine; a task resumed by one keeps executing here until its
// next real suspension.
func (l *Loop) Run() {
	var bo iox.Backoff
	for {
		f, err := l.q.Dequeue()
		if err != nil {
			if l.closed.Load() != 0 {
				return
			}
			bo.Wait()
			continue
		}
		bo.Reset()
		f()
	}
}
