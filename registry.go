// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// maxLinks is the number of links that may be registered at once.
const maxLinks = 1024

// registrySlot holds at most one link.
type registrySlot struct {
	link atomix.Pointer[link]
}

// registry maps handles to links. Slot indices are recycled through a
// lock-free free list; generations make recycled slots unreachable from
// handles issued before the recycle.
type registry struct {
	slots [maxLinks]registrySlot
	free  lfq.Queue[uint32]
}

// links is the process-wide registry behind every Handle.
var links = newRegistry()

func newRegistry() *registry {
	r := &registry{
		free: lfq.BuildMPMC[uint32](lfq.New(maxLinks).Compact()),
	}
	for i := range uint32(maxLinks) {
		if err := r.free.Enqueue(&i); err != nil {
			panic("bridge: registry free list smaller than slot table")
		}
	}
	return r
}

// register publishes l and returns its handle.
// Returns ErrRegistryFull when every slot is taken.
func (r *registry) register(l *link) (Handle, error) {
	idx, err := r.free.Dequeue()
	if err != nil {
		return 0, ErrRegistryFull
	}
	l.gen = nextGeneration()
	r.slots[idx].link.Store(l)
	return makeHandle(idx, l.gen), nil
}

// lookup resolves h. The null sentinel is rejected before any slot is
// touched.
func (r *registry) lookup(h Handle) (*link, error) {
	if h.IsNull() {
		return nil, ErrInvalidHandle
	}
	idx := h.slot()
	if idx >= maxLinks {
		return nil, ErrInvalidHandle
	}
	l := r.slots[idx].link.Load()
	if l == nil || l.gen != h.Generation() {
		return nil, ErrInvalidHandle
	}
	return l, nil
}

// release unpublishes the link behind h and recycles its slot.
// Exactly one concurrent release of the same handle succeeds.
func (r *registry) release(h Handle) (*link, error) {
	l, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	idx := h.slot()
	if !r.slots[idx].link.CompareAndSwap(l, nil) {
		return nil, ErrInvalidHandle
	}
	if err := r.free.Enqueue(&idx); err != nil {
		panic("bridge: registry free list overflow")
	}
	return l, nil
}
