// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// serveOne takes one command and handles it. The result is true to keep
// serving and false after Exit. A handler error is thrown and ends the
// protocol with that error.
func serveOne(h Handler) kont.Expr[bool] {
	return awaitBind(func(c Command) kont.Expr[bool] {
		if c.Kind == Exit {
			return haltDone(false)
		}
		r, err := h(c)
		if err != nil {
			return kont.ExprThrowError[error, bool](err)
		}
		return emitThen(r, kont.ExprReturn(true))
	})
}

// serve is the event loop protocol: serveOne repeated until it reports
// Exit. The recursion is chained through a bind frame so the frame depth
// stays constant however many commands are served.
func serve(h Handler) kont.Expr[struct{}] {
	m := serveOne(h)
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		if a.(bool) {
			next := serve(h)
			return kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
		}
		return kont.Expr[kont.Erased]{Value: kont.Erased(struct{}{}), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	return kont.Expr[struct{}]{Frame: kont.ChainFrames(m.Frame, bf)}
}

// run drives the loop protocol to completion on the calling goroutine,
// one effect at a time, backing off with iox.Backoff while neither pipe
// can make progress. It does not spawn goroutines or create channels.
//
// run returns nil after Exit, or the termination cause.
// On return the link is Terminated and both loop ends are closed.
func (ctx *loopContext) run() error {
	result, susp := step(serve(ctx.handler))
	var bo iox.Backoff
	for susp != nil {
		var err error
		result, susp, err = advance(ctx, susp)
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
	}
	ctx.terminate()
	if cause, ok := result.GetLeft(); ok {
		return cause
	}
	return nil
}

// terminate moves the link to Terminated. Response pollers drain what
// was emitted and then see Failure. Commands still queued are discarded.
func (ctx *loopContext) terminate() {
	l := ctx.link
	l.commands.CloseRx()
	l.responses.CloseTx()
	l.state.Store(uint32(Terminated))
	l.discarded.Add(l.commands.discard())
}
