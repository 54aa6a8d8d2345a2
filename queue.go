// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultCapacity is the bounded capacity of each directional pipe.
const DefaultCapacity = 1024

// minCapacity is the smallest capacity lfq accepts.
const minCapacity = 2

// pipe is one direction of the bridge: a bounded lock-free FIFO queue
// with close flags for each end.
//
// Closing the sending end lets the receiver drain what is queued and then
// observe ErrClosed. Closing the receiving end makes every later send
// fail with ErrClosed.
type pipe[T any] struct {
	q        lfq.Queue[T]
	txClosed atomix.Uint32
	rxClosed atomix.Uint32
}

// newCommandPipe builds the inbound pipe: any number of handle copies
// may submit, only the loop receives.
// Compact selects the CAS-based variant, which has no livelock threshold
// that could hide queued items from the consumer.
func newCommandPipe(capacity int) *pipe[Command] {
	return &pipe[Command]{
		q: lfq.BuildMPSC[Command](lfq.New(capacity).SingleConsumer().Compact()),
	}
}

// newResponsePipe builds the outbound pipe: only the loop sends, any
// poller may receive.
func newResponsePipe(capacity int) *pipe[Response] {
	return &pipe[Response]{
		q: lfq.BuildSPMC[Response](lfq.New(capacity).SingleProducer().Compact()),
	}
}

// TrySend enqueues v without blocking.
// Returns iox.ErrWouldBlock if the queue is full and ErrClosed if
// either end has been closed.
func (p *pipe[T]) TrySend(v T) error {
	if p.rxClosed.Load() != 0 || p.txClosed.Load() != 0 {
		return ErrClosed
	}
	return p.q.Enqueue(&v)
}

// Send enqueues v, waiting with adaptive backoff while the queue is full.
// There is no timeout. Returns ErrClosed once the receiver is gone,
// including while waiting.
func (p *pipe[T]) Send(v T) error {
	var bo iox.Backoff
	for {
		err := p.TrySend(v)
		if !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// TryRecv dequeues one item without blocking.
// Returns iox.ErrWouldBlock if the queue is empty while the sender is
// alive, or ErrClosed if the sender is closed and the queue is drained.
func (p *pipe[T]) TryRecv() (T, error) {
	v, err := p.q.Dequeue()
	if err == nil {
		return v, nil
	}
	if p.txClosed.Load() == 0 {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	// The sender enqueues before closing; look once more after
	// observing the close flag.
	v, err = p.q.Dequeue()
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, ErrClosed
}

// CloseTx closes the sending end. Reports false if already closed.
func (p *pipe[T]) CloseTx() bool {
	if !p.txClosed.CompareAndSwap(0, 1) {
		return false
	}
	if d, ok := p.q.(lfq.Drainer); ok {
		d.Drain()
	}
	return true
}

// CloseRx closes the receiving end. Reports false if already closed.
func (p *pipe[T]) CloseRx() bool {
	return p.rxClosed.CompareAndSwap(0, 1)
}

// discard drops every item still queued and returns how many were
// dropped. Only the receiving side may call it.
func (p *pipe[T]) discard() uint64 {
	var n uint64
	for {
		if _, err := p.q.Dequeue(); err != nil {
			return n
		}
		n++
	}
}
