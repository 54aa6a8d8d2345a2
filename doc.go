// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bridge lets a caller outside the Go scheduler drive an
// asynchronous worker loop through a narrow status-code boundary: submit
// discrete commands and later poll for their responses.
//
// # Architecture
//
//   - Transport: two bounded lock-free queues from [code.hybscloud.com/lfq],
//     one per direction, [DefaultCapacity] entries each.
//   - Handle: [Handle] is a copyable uint64 indexing a process-wide,
//     generation-checked registry. The zero value is the null sentinel.
//   - Event loop: a [code.hybscloud.com/kont] effect protocol ([Await],
//     [Emit], [Halt]) stepped one effect at a time on the thread that
//     called [Start]. Waiting uses [code.hybscloud.com/iox.Backoff].
//   - Status: every entrypoint returns [Success], [Failure] or [TryLater].
//
// # Entrypoints
//
//   - [Start] publishes a handle and blocks running the loop until it
//     terminates.
//   - [Submit] enqueues a command, blocking while the command queue is
//     full. [TrySubmit] returns TryLater instead.
//   - [Poll] takes one response without blocking.
//   - [Close] releases a handle; copies of it are rejected afterwards.
//   - [Stat] reports loop state and counters.
//
// # Protocol
//
// For every non-Exit command dequeued the loop emits exactly one response,
// in dequeue order: ComA yields ResA and ComB yields ResB under
// [DefaultHandler]. Exit terminates the loop without a response. The loop
// also terminates when the caller closes its handle or a handler fails.
// Commands still queued at termination are discarded and counted in
// [Stats].Discarded; submitters then get Failure. After termination Poll
// drains the responses already emitted and then returns Failure.
//
// Pollers sharing a handle are not serialized: they race for responses.
// Poll from one goroutine to observe submission order.
//
// # Example
//
//	var slot bridge.Handle
//	ready := make(chan bridge.Handle, 1)
//	go bridge.Start(&slot, bridge.WithOnStart(func(h bridge.Handle) { ready <- h }))
//	h := <-ready
//	bridge.Submit(h, bridge.Command{Kind: bridge.ComA})
//	for {
//		r, st := bridge.Poll(h)
//		if st == bridge.TryLater {
//			continue
//		}
//		_ = r // r.Kind == bridge.ResA
//		break
//	}
//	bridge.Submit(h, bridge.Command{Kind: bridge.Exit})
package bridge
