// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"errors"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/task"
)

// errBoom is the opaque failure used across forwarding tests; tests compare
// it by identity, since the core forwards failures verbatim.
var errBoom = errors.New("boom")

// awaitInt spawns a task that awaits src and returns its value unchanged.
// Used wherever a test only needs a suspended waiter.
func awaitInt(src *task.Source[int]) *task.Task[int] {
	return task.Spawn(task.AwaitBind(src, func(n int) kont.Eff[int] {
		return kont.Pure(n)
	}))
}
