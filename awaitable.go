// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// Continuation is the one-shot resumption handle stored by an [Awaitable]
// during the await handshake. Resuming it more than once panics
// (kont affine semantics); the completer invokes it on its own goroutine.
type Continuation = *kont.Affine[struct{}, struct{}]

// Awaitable is the contract between the task runtime and every object a task
// body can await, and the contract a [Task] itself offers to its waiter.
//
// Ready reports whether the result is already available; a true return means
// the caller proceeds synchronously, with no suspension and no registration.
//
// Suspend registers k to be resumed exactly once on completion. A false
// return means completion happened in the window after Ready; the caller
// must not suspend, and proceeds as if Ready had returned true.
//
// Resume retrieves the final outcome: the produced value, or the captured
// failure forwarded verbatim. It is called at most once, after completion.
type Awaitable interface {
	Ready() bool
	Suspend(k Continuation) bool
	Resume() (kont.Resumed, error)
}
