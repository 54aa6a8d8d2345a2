// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"runtime"
)

// Start builds a bridge, writes its handle into out and runs the event
// loop on the calling goroutine, locked to its OS thread, until the loop
// terminates. It blocks for the loop's entire lifetime.
//
// Start returns Success once the loop is Terminated, whether by Exit,
// disconnection or a handler error. It returns Failure without touching
// out if out is nil, an option is invalid, or no handle slot is free.
//
// The handle stays valid after Start returns so responses emitted before
// termination can still be polled. Release it with [Close].
func Start(out *Handle, opts ...Option) Status {
	if out == nil {
		return Failure
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		debugf("bridge: start rejected", "err", err)
		return Failure
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l := newLink(cfg.capacity)
	h, err := links.register(l)
	if err != nil {
		debugf("bridge: start rejected", "err", err)
		return Failure
	}
	*out = h
	debugf("bridge: loop running", "handle", h)
	if cfg.onStart != nil {
		cfg.onStart(h)
	}

	ctx := &loopContext{link: l, handler: cfg.handler}
	cause := ctx.run()
	debugf("bridge: loop terminated", "handle", h, "cause", cause, "discarded", l.discarded.Load())
	return Success
}

// Submit enqueues c for the event loop. When the command pipe is at
// capacity Submit blocks until space frees; there is no timeout.
//
// Submit returns Failure for a null or released handle, a command kind
// outside the vocabulary, or a loop that has terminated.
func Submit(h Handle, c Command) Status {
	l, err := links.lookup(h)
	if err != nil {
		return Failure
	}
	if !c.Kind.Valid() {
		return Failure
	}
	return statusOf(l.commands.Send(c))
}

// TrySubmit is the non-blocking form of [Submit]. It returns TryLater
// instead of waiting when the command pipe is at capacity.
func TrySubmit(h Handle, c Command) Status {
	l, err := links.lookup(h)
	if err != nil {
		return Failure
	}
	if !c.Kind.Valid() {
		return Failure
	}
	return statusOf(l.commands.TrySend(c))
}

// Poll takes one response without blocking.
//
// It returns TryLater while the loop is running and nothing is ready,
// Success with the oldest response otherwise, and Failure for a null or
// released handle or once the loop has terminated and every emitted
// response has been taken. Polling repeatedly has no side effects.
//
// Poll does not serialize concurrent callers. Pollers sharing a handle
// race for responses and each response goes to exactly one of them; to
// observe responses in submission order, poll from a single goroutine.
func Poll(h Handle) (Response, Status) {
	l, err := links.lookup(h)
	if err != nil {
		return Response{}, Failure
	}
	r, err := l.responses.TryRecv()
	if err != nil {
		return Response{}, statusOf(err)
	}
	return r, Success
}

// Close gives up h. It closes the caller ends of both pipes, which makes
// a running loop terminate by disconnection, and releases the handle:
// every later call with h or any of its copies returns Failure.
// Responses not yet polled are dropped.
//
// Close returns Failure for a null or already released handle.
func Close(h Handle) Status {
	l, err := links.release(h)
	if err != nil {
		return Failure
	}
	l.commands.CloseTx()
	l.responses.CloseRx()
	debugf("bridge: handle closed", "handle", h)
	return Success
}

// Stat returns a snapshot of the loop state and counters behind h.
func Stat(h Handle) (Stats, Status) {
	l, err := links.lookup(h)
	if err != nil {
		return Stats{}, Failure
	}
	return l.stats(), Success
}
