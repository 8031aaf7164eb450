// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// AwaitBind awaits src and passes its value, typed A, to f.
// Fuses Perform(Await[A]{Source: src}) + Bind.
func AwaitBind[A, B any](src Awaitable, f func(A) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[A]{Source: src}), f)
}

// AwaitThen awaits src, discards its value, and continues with next.
// Fuses Perform(Await) + Then.
func AwaitThen[B any](src Awaitable, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await[kont.Resumed]{Source: src}), next)
}

// Fail short-circuits the enclosing task with err. The continuation after
// the raise is unreachable: the runtime discards the suspension and
// completes the task with err.
func Fail[A any](err error) kont.Eff[A] {
	return kont.Bind(kont.Perform(Raise{Err: err}), func(struct{}) kont.Eff[A] {
		panic("task: resumed past failure")
	})
}
