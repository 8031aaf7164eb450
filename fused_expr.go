// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased frame to eliminate heap escapes when boxing the
// empty struct into kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[A, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(A) kont.Expr[B])
	result := f(current.(A))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind awaits src and passes its value, typed A, to f.
// Fuses ExprPerform(Await[A]{Source: src}) + ExprBind.
func ExprAwaitBind[A, B any](src Awaitable, f func(A) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[A, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[A]{Source: src}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprAwaitThen awaits src, discards its value, and continues with next.
// Fuses ExprPerform(Await) + ExprThen.
func ExprAwaitThen[B any](src Awaitable, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[kont.Resumed]{Source: src}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprFail short-circuits the enclosing task with err.
// Direct EffectFrame: the raise never resumes, so no continuation frame
// follows it.
func ExprFail[A any](err error) kont.Expr[A] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Raise{Err: err}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[A](ef)
}
