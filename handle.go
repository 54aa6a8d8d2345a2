// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import "fmt"

// Handle is the opaque, copyable reference published to the caller.
// It packs a registry slot index and the generation the slot had when
// the link was registered:
//
//	generation(32) | slot(32)
//
// The zero value is the null sentinel. Generations start at 1, so no
// registered link ever has the zero handle. All copies refer to the same
// link; after [Close] every copy is rejected.
type Handle uint64

func makeHandle(slot uint32, gen Generation) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot))
}

// IsNull reports whether h is the null sentinel.
func (h Handle) IsNull() bool {
	return h == 0
}

func (h Handle) slot() uint32 {
	return uint32(h)
}

// Generation returns the generation encoded in h.
func (h Handle) Generation() Generation {
	return Generation(h >> 32)
}

func (h Handle) String() string {
	if h.IsNull() {
		return "handle(null)"
	}
	return fmt.Sprintf("handle(slot=%d gen=%d)", h.slot(), h.Generation())
}
