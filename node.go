// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

// halves is the ownership total of a list node. One half is held by the
// forward link into the node (predecessor's next, or the list head), the
// other by the backward link into it (successor's prev, or the list tail).
const halves = 2

// node is one list element. prev and next are halves of the neighbors.
type node[V any] struct {
	value V
	prev  *Ptr[node[V]]
	next  *Ptr[node[V]]
}

// view returns the node behind p for reading. The caller has checked
// its token against the list brand.
func view[V any](p *Ptr[node[V]]) *node[V] {
	return &p.slot().cell.value
}
