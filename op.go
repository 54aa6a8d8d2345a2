// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"errors"

	"code.hybscloud.com/kont"
)

// loopContext holds the runtime-facing ends of a link for one event loop.
type loopContext struct {
	link    *link
	handler Handler
}

// loopDispatcher is the structural interface for event loop operations.
// DispatchLoop is non-blocking: it returns iox.ErrWouldBlock when the
// bounded queue cannot make progress, and ErrDisconnected when it never
// will.
type loopDispatcher interface {
	DispatchLoop(ctx *loopContext) (kont.Resumed, error)
}

// Await is the effect operation for taking the next command.
type Await struct {
	kont.Phantom[Command]
}

// DispatchLoop handles Await on the command pipe.
// Non-blocking: returns iox.ErrWouldBlock if the pipe is empty.
func (Await) DispatchLoop(ctx *loopContext) (kont.Resumed, error) {
	c, err := ctx.link.commands.TryRecv()
	if err != nil {
		if errors.Is(err, ErrClosed) {
			return nil, ErrDisconnected
		}
		return nil, err
	}
	ctx.link.received.Add(1)
	return c, nil
}

// Emit is the effect operation for producing one response.
type Emit struct {
	kont.Phantom[struct{}]
	Value Response
}

// DispatchLoop handles Emit on the response pipe.
// Non-blocking: returns iox.ErrWouldBlock if the pipe is full.
func (e Emit) DispatchLoop(ctx *loopContext) (kont.Resumed, error) {
	if err := ctx.link.responses.TrySend(e.Value); err != nil {
		if errors.Is(err, ErrClosed) {
			return nil, ErrDisconnected
		}
		return nil, err
	}
	ctx.link.emitted.Add(1)
	return struct{}{}, nil
}

// Halt is the effect operation for stopping command consumption.
// It closes the receiving end of the command pipe so blocked and later
// submitters fail instead of waiting. Never blocks.
type Halt struct {
	kont.Phantom[struct{}]
}

// DispatchLoop handles Halt on the command pipe.
func (Halt) DispatchLoop(ctx *loopContext) (kont.Resumed, error) {
	ctx.link.commands.CloseRx()
	return struct{}{}, nil
}
