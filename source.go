// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// Source is a completable [Awaitable]: the bridge between a task body and an
// external operation that finishes on another goroutine. A task awaiting a
// Source suspends until [Source.Complete] or [Source.Fail] fires, and is
// then resumed on the completing goroutine.
//
// A Source is born non-synchronous: its completion is by definition a
// cross-boundary event, so awaiting one always flips the awaiting task off
// its lock-free fast path.
//
// The zero value is ready to use. A Source is completed exactly once and
// awaited by at most one waiter.
type Source[T any] struct {
	ctx taskContext
}

// NewSource creates an incomplete Source.
func NewSource[T any]() *Source[T] {
	return &Source[T]{}
}

// Complete resolves the source with v and resumes the registered waiter,
// if any, on the calling goroutine. Completing twice panics.
func (s *Source[T]) Complete(v T) {
	if k := s.ctx.complete(v, nil); k != nil {
		k.Resume(struct{}{})
	}
}

// Fail resolves the source with err and resumes the registered waiter,
// if any, on the calling goroutine. The error is forwarded verbatim to
// whoever extracts the result. Completing twice panics.
func (s *Source[T]) Fail(err error) {
	if k := s.ctx.complete(nil, err); k != nil {
		k.Resume(struct{}{})
	}
}

// Completed reports whether Complete or Fail has fired.
func (s *Source[T]) Completed() bool {
	return s.ctx.finished()
}

// Ready implements [Awaitable]. Sources have no synchronous fast path,
// so this is a plain completion check.
func (s *Source[T]) Ready() bool {
	return s.ctx.finished()
}

// Suspend implements [Awaitable], registering k against the completion
// handshake. Returns false if the source completed meanwhile.
func (s *Source[T]) Suspend(k Continuation) bool {
	return s.ctx.register(k)
}

// Resume implements [Awaitable], extracting the outcome exactly once.
func (s *Source[T]) Resume() (kont.Resumed, error) {
	return s.ctx.take()
}
