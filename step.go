// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// outcome is how a loop protocol finished: Right on Exit, Left with the
// termination cause otherwise.
type outcome = kont.Either[error, struct{}]

// step evaluates the loop protocol until the first effect suspension.
// Returns (outcome, nil) on completion or error, or (zero, suspension)
// if pending.
func step(protocol kont.Expr[struct{}]) (outcome, *kont.Suspension[outcome]) {
	wrapped := kont.ExprMap(protocol, func(r struct{}) outcome {
		return kont.Right[error, struct{}](r)
	})
	return kont.StepExpr(wrapped)
}

// advance dispatches the suspended operation on the loop context.
//
// Loop ops are non-blocking: on iox.ErrWouldBlock the suspension is
// returned unconsumed together with the error, to be retried after the
// peer makes progress. Any other dispatch error is terminal and, like a
// thrown error, discards the suspension and returns Left.
func advance(ctx *loopContext, susp *kont.Suspension[outcome]) (outcome, *kont.Suspension[outcome], error) {
	if lop, ok := susp.Op().(loopDispatcher); ok {
		v, err := lop.DispatchLoop(ctx)
		if err != nil {
			if iox.IsWouldBlock(err) {
				var zero outcome
				return zero, susp, err
			}
			susp.Discard()
			return kont.Left[error, struct{}](err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		var ectx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&ectx)
		if ectx.HasErr {
			susp.Discard()
			return kont.Left[error, struct{}](ectx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("bridge: unhandled effect in advance")
}
