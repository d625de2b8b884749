// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import "code.hybscloud.com/lfq"

// defaultPoolSize is the default capacity of a list's recycling ring.
// Large enough to absorb push/pop churn around a steady length without
// pinning much memory once a list shrinks.
const defaultPoolSize = 64

// minPoolSize is the smallest ring lfq accepts.
const minPoolSize = 2

// pool recycles freed slots through a bounded SPSC ring.
// The owning collection is both producer and consumer; a nil pool
// never recycles.
type pool[T any] struct {
	ring lfq.SPSC[*slot[T]]
}

func newPool[T any](capacity int) *pool[T] {
	if capacity <= 0 {
		return nil
	}
	p := &pool[T]{}
	p.ring.Init(max(capacity, minPoolSize))
	return p
}

// get returns a recycled slot, or a fresh one when the ring is empty.
func (p *pool[T]) get() *slot[T] {
	if p != nil {
		if s, err := p.ring.Dequeue(); err == nil {
			return s
		}
	}
	return &slot[T]{}
}

// put offers a freed slot for reuse. A full ring leaves it to the
// garbage collector.
func (p *pool[T]) put(s *slot[T]) {
	if p == nil {
		return
	}
	_ = p.ring.Enqueue(&s)
}
