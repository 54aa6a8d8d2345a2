// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import "code.hybscloud.com/atomix"

// LoopState is the event loop state. The only transition is
// Running → Terminated.
type LoopState uint32

const (
	// Running is the initial state.
	Running LoopState = 0
	// Terminated is final. No command is consumed and no response is
	// produced afterwards.
	Terminated LoopState = 1
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	}
	return "LoopState(invalid)"
}

// Stats is a point-in-time snapshot of a link's counters.
type Stats struct {
	State LoopState
	// Received counts commands dequeued by the loop, Exit included.
	Received uint64
	// Emitted counts responses enqueued by the loop.
	Emitted uint64
	// Discarded counts commands dropped because they were still queued
	// when the loop terminated. It is a lower bound: a submitter that
	// passed the closed check just before termination can enqueue after
	// the final drain, and that command is dropped uncounted.
	Discarded uint64
}

// link is the bridge state reachable through a Handle: both pipes and
// the loop's observable state. The caller uses the command sender and
// response receiver; the loop uses the other two ends.
type link struct {
	gen       Generation
	commands  *pipe[Command]
	responses *pipe[Response]

	state     atomix.Uint32
	received  atomix.Uint64
	emitted   atomix.Uint64
	discarded atomix.Uint64
}

func newLink(capacity int) *link {
	return &link{
		commands:  newCommandPipe(capacity),
		responses: newResponsePipe(capacity),
	}
}

func (l *link) stats() Stats {
	return Stats{
		State:     LoopState(l.state.Load()),
		Received:  l.received.Load(),
		Emitted:   l.emitted.Load(),
		Discarded: l.discarded.Load(),
	}
}
