// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge_test

import (
	"testing"
	"time"

	"code.hybscloud.com/bridge"
	"code.hybscloud.com/iox"
)

// testTimeout bounds every wait in the tests so a broken loop fails
// instead of hanging the run.
const testTimeout = 5 * time.Second

// loopRun is a bridge started on its own goroutine.
type loopRun struct {
	h      bridge.Handle
	done   chan struct{}
	status bridge.Status
}

// startBridge runs Start on a new goroutine and returns once the handle
// is published. Cleanup closes the handle and waits for Start to return.
func startBridge(tb testing.TB, opts ...bridge.Option) *loopRun {
	tb.Helper()
	ready := make(chan bridge.Handle, 1)
	run := &loopRun{done: make(chan struct{})}
	opts = append(opts, bridge.WithOnStart(func(h bridge.Handle) { ready <- h }))
	go func() {
		defer close(run.done)
		var slot bridge.Handle
		run.status = bridge.Start(&slot, opts...)
	}()
	select {
	case run.h = <-ready:
	case <-run.done:
		tb.Fatalf("Start returned %v before publishing a handle", run.status)
	case <-time.After(testTimeout):
		tb.Fatal("timed out waiting for handle")
	}
	tb.Cleanup(func() {
		bridge.Close(run.h)
		run.wait(tb)
	})
	return run
}

// wait blocks until Start returns and reports its status.
func (r *loopRun) wait(tb testing.TB) bridge.Status {
	tb.Helper()
	select {
	case <-r.done:
		return r.status
	case <-time.After(testTimeout):
		tb.Fatal("timed out waiting for Start to return")
	}
	return bridge.Failure
}

// mustSubmit submits c and fails the test on any status but Success.
func mustSubmit(tb testing.TB, h bridge.Handle, c bridge.Command) {
	tb.Helper()
	if st := bridge.Submit(h, c); st != bridge.Success {
		tb.Fatalf("Submit(%v) got %v, want Success", c.Kind, st)
	}
}

// pollWait polls h until the status is not TryLater.
func pollWait(tb testing.TB, h bridge.Handle) (bridge.Response, bridge.Status) {
	tb.Helper()
	deadline := time.Now().Add(testTimeout)
	var bo iox.Backoff
	for {
		r, st := bridge.Poll(h)
		if st != bridge.TryLater {
			return r, st
		}
		if time.Now().After(deadline) {
			tb.Fatal("timed out polling for a response")
		}
		bo.Wait()
	}
}

// waitStats polls Stat until cond holds.
func waitStats(tb testing.TB, h bridge.Handle, cond func(bridge.Stats) bool) bridge.Stats {
	tb.Helper()
	deadline := time.Now().Add(testTimeout)
	for {
		s, st := bridge.Stat(h)
		if st != bridge.Success {
			tb.Fatalf("Stat got %v, want Success", st)
		}
		if cond(s) {
			return s
		}
		if time.Now().After(deadline) {
			tb.Fatalf("timed out waiting for stats, last %+v", s)
		}
		time.Sleep(time.Millisecond)
	}
}
