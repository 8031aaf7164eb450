// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// Await is the effect operation for awaiting an [Awaitable] inside a task
// body. Perform(Await[A]{Source: src}) suspends the body until src completes
// and resumes it with src's value, typed A.
type Await[A any] struct {
	kont.Phantom[A]
	Source Awaitable
}

// DispatchAwait exposes the awaited object to the task runtime.
func (a Await[A]) DispatchAwait() Awaitable {
	return a.Source
}

// Raise is the effect operation for failing the enclosing task.
// Perform(Raise{Err: err}) completes the task with err; the body never
// resumes past it. The error is forwarded verbatim, never inspected.
type Raise struct {
	kont.Phantom[struct{}]
	Err error
}

// DispatchFail exposes the failure to the task runtime.
func (r Raise) DispatchFail() error {
	return r.Err
}
