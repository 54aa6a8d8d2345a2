// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"code.hybscloud.com/kont"
)

// The loop suspends on Await once per command and on Halt once per
// lifetime. Both operations are empty, so they are boxed once here
// instead of on every suspension.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprAwait       kont.Erased = Await{}
	exprHalt        kont.Erased = Halt{}
)

// identityResume hands the dispatched value straight to the next frame.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Command) kont.Expr[B])
	result := f(current.(Command))
	return kont.Erased(result.Value), result.Frame
}

// awaitBind suspends until the loop dequeues a command, then continues
// with f applied to it.
func awaitBind[B any](f func(Command) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprAwait
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// emitThen suspends until r is in the response pipe, then continues
// with next.
func emitThen[B any](r Response, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Emit{Value: r}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// haltDone closes the command receiver and finishes the protocol
// with a.
func haltDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprHalt
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
