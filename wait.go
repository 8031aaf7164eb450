// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Wait blocks until t completes, waiting past the boundary with adaptive
// backoff (iox.Backoff), then extracts the result. It is the join for plain
// goroutines that are not themselves task bodies; inside a task body, await
// the task instead. Does not spawn goroutines or create channels.
//
// Wait consumes the one-shot result extraction: calling it and [Task.Result]
// on the same handle is a usage error.
func Wait[R any](t *Task[R]) (R, error) {
	var bo iox.Backoff
	for !t.Finished() {
		bo.Wait()
	}
	return t.Result()
}

// Outcome blocks like [Wait] and folds the result into an Either:
// Right on success, Left carrying the verbatim failure.
func Outcome[R any](t *Task[R]) kont.Either[error, R] {
	v, err := Wait(t)
	if err != nil {
		return kont.Left[error, R](err)
	}
	return kont.Right[error, R](v)
}
