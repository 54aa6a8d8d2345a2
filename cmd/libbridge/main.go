// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command libbridge exports the bridge entrypoints over the C ABI.
//
// Build with:
//
//	go build -buildmode=c-shared -o libbridge.so ./cmd/libbridge
//
// Handles are uint64_t, commands and responses single-byte discriminants,
// and every function returns a status byte: 0 Success, 1 Failure,
// 2 TryLater. bridge_start blocks the calling thread until the loop
// terminates; the handle is written to *out before the first command is
// consumed.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"code.hybscloud.com/bridge"
)

//export bridge_start
func bridge_start(out *C.uint64_t) C.uint8_t {
	if out == nil {
		return C.uint8_t(bridge.Failure)
	}
	var h bridge.Handle
	st := bridge.Start(&h, bridge.WithOnStart(func(h bridge.Handle) {
		*out = C.uint64_t(h)
	}))
	return C.uint8_t(st)
}

//export bridge_submit
func bridge_submit(h C.uint64_t, cmd C.uint8_t) C.uint8_t {
	st := bridge.Submit(bridge.Handle(h), bridge.Command{Kind: bridge.CommandKind(cmd)})
	return C.uint8_t(st)
}

//export bridge_try_submit
func bridge_try_submit(h C.uint64_t, cmd C.uint8_t) C.uint8_t {
	st := bridge.TrySubmit(bridge.Handle(h), bridge.Command{Kind: bridge.CommandKind(cmd)})
	return C.uint8_t(st)
}

//export bridge_poll
func bridge_poll(h C.uint64_t, out *C.uint8_t) C.uint8_t {
	if out == nil {
		return C.uint8_t(bridge.Failure)
	}
	r, st := bridge.Poll(bridge.Handle(h))
	if st == bridge.Success {
		*out = C.uint8_t(r.Kind)
	}
	return C.uint8_t(st)
}

//export bridge_close
func bridge_close(h C.uint64_t) C.uint8_t {
	return C.uint8_t(bridge.Close(bridge.Handle(h)))
}

func main() {}
