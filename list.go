// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrIncompatibleBrand indicates that two lists could not be spliced
	// because their brands cannot be unified.
	ErrIncompatibleBrand = errors.New("ghost: incompatible brand")

	// ErrOutOfRange indicates an index outside the list.
	ErrOutOfRange = errors.New("ghost: index out of range")
)

// List is a doubly linked list whose nodes are branded cells addressed by
// half-ownership pointers.
//
// Each node is owned in two halves: one by the link that reaches it going
// forward and one by the link that reaches it going backward. Removing a
// node joins both halves back into full ownership before freeing it, so
// no link can survive the node it points to.
//
// Methods acquire a token of the list's brand for the duration of the
// call: exclusive for mutation, shared for reads. Calling them while a
// conflicting token of the brand is live (for example inside a CursorMut
// session) panics. A List is not safe for concurrent use.
type List[V any] struct {
	st      *brand
	pool    *pool[node[V]]
	opts    options
	head    *Ptr[node[V]]
	tail    *Ptr[node[V]]
	length  int
	version uint64

	// retired holds slots freed through a cursor. Views of their elements
	// may live until the cursor's token ends, so they are recycled only
	// when the list next takes a token of its own.
	retired []*slot[node[V]]
}

// New creates an empty list branded with b.
func New[V any](b Brand, opts ...Option) *List[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &List[V]{
		st:   b.mustState(),
		pool: newPool[node[V]](o.poolSize),
		opts: o,
	}
}

// Brand returns the brand of the list.
func (l *List[V]) Brand() Brand {
	return Brand{b: l.st}
}

// Len returns the number of elements.
func (l *List[V]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.length == 0
}

// PushFront inserts value at the front.
func (l *List[V]) PushFront(value V) {
	l.exclusive(func(t *ExclusiveToken) { l.pushFront(t, value) })
}

// PushBack inserts value at the back.
func (l *List[V]) PushBack(value V) {
	l.exclusive(func(t *ExclusiveToken) { l.pushBack(t, value) })
}

// PopFront removes and returns the front element.
// Returns false if the list is empty.
func (l *List[V]) PopFront() (v V, ok bool) {
	l.exclusive(func(t *ExclusiveToken) { v, ok = l.popFront(t) })
	return
}

// PopBack removes and returns the back element.
// Returns false if the list is empty.
func (l *List[V]) PopBack() (v V, ok bool) {
	l.exclusive(func(t *ExclusiveToken) { v, ok = l.popBack(t) })
	return
}

// Front returns the front element, or false if the list is empty.
func (l *List[V]) Front() (v V, ok bool) {
	shared(l.st, func(t *SharedToken) {
		if l.head != nil {
			v, ok = view(l.head).value, true
		}
	})
	return
}

// Back returns the back element, or false if the list is empty.
func (l *List[V]) Back() (v V, ok bool) {
	shared(l.st, func(t *SharedToken) {
		if l.tail != nil {
			v, ok = view(l.tail).value, true
		}
	})
	return
}

// At returns the element at index i, walking from the nearer end.
// Returns false if i is out of range.
func (l *List[V]) At(i int) (v V, ok bool) {
	if i < 0 || i >= l.length {
		return v, false
	}
	shared(l.st, func(t *SharedToken) {
		v, ok = view(l.nodeAt(i)).value, true
	})
	return
}

// Clear removes every element, freeing nodes front to back.
func (l *List[V]) Clear() {
	l.exclusive(func(t *ExclusiveToken) {
		for l.head != nil {
			l.popFront(t)
		}
	})
}

// Values returns an iterator over the elements, front to back.
// The iterator must be consumed while t is live.
func (l *List[V]) Values(t Token) iter.Seq[V] {
	return func(yield func(V) bool) {
		check(t, l.st)
		for p := l.head; p != nil; {
			n := view(p)
			if !yield(n.value) {
				return
			}
			p = n.next
		}
	}
}

// Append moves every element of other to the back of l, leaving other
// empty.
//
// Lists of the same brand are spliced in O(1). Nodes of another brand are
// retagged to l's brand first, which walks other once; this needs an
// exclusive token of other's brand and fails with ErrIncompatibleBrand if
// that brand is busy, or if l was created WithoutRetag. Appending a list
// to itself fails with ErrIncompatibleBrand.
func (l *List[V]) Append(other *List[V]) error {
	return l.splice(other, true)
}

// Prepend moves every element of other to the front of l, leaving other
// empty. Brand handling is the same as Append.
func (l *List[V]) Prepend(other *List[V]) error {
	return l.splice(other, false)
}

func (l *List[V]) splice(other *List[V], back bool) error {
	if other == l {
		return fmt.Errorf("%w: list spliced into itself", ErrIncompatibleBrand)
	}
	if other.st != l.st && !l.opts.retag {
		return fmt.Errorf("%w: brand #%d into #%d without retag", ErrIncompatibleBrand, other.st.serial, l.st.serial)
	}
	var err error
	l.exclusive(func(t *ExclusiveToken) {
		if other.st == l.st {
			l.link(t, other, back)
			return
		}
		_, err = TryWithExclusive(other.Brand(), func(ot *ExclusiveToken) struct{} {
			other.retag(ot, l)
			l.link(t, other, back)
			return struct{}{}
		})
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrIncompatibleBrand, err)
		}
	})
	return err
}

// retag moves every node of l under dst's brand and recycling pool.
func (l *List[V]) retag(t *ExclusiveToken, dst *List[V]) {
	for p := l.head; p != nil; {
		s := p.slot()
		check(t, s.cell.b)
		s.cell.b = dst.st
		s.pool = dst.pool
		p = s.cell.value.next
	}
}

// link splices other's chain onto one end of l. Only the two boundary
// nodes are touched: each end hands its half over to the other side.
func (l *List[V]) link(t *ExclusiveToken, other *List[V], back bool) {
	if other.head == nil {
		return
	}
	switch {
	case l.head == nil:
		l.head, l.tail = other.head, other.tail
	case back:
		last := l.tail.GetMut(t)
		first := other.head.GetMut(t)
		last.next = other.head
		first.prev = l.tail
		l.tail = other.tail
	default:
		last := other.tail.GetMut(t)
		first := l.head.GetMut(t)
		last.next = l.head
		first.prev = other.tail
		l.head = other.head
	}
	l.length += other.length
	l.version++
	other.head, other.tail, other.length = nil, nil, 0
	other.version++
}

// SplitOff splits the list at index at: l keeps [0, at) and the returned
// list, of the same brand, receives [at, Len()).
func (l *List[V]) SplitOff(at int) (*List[V], error) {
	if at < 0 || at > l.length {
		return nil, fmt.Errorf("%w: split at %d of %d", ErrOutOfRange, at, l.length)
	}
	rest := &List[V]{st: l.st, pool: l.pool, opts: l.opts}
	if at == l.length {
		return rest, nil
	}
	l.exclusive(func(t *ExclusiveToken) {
		if at == 0 {
			rest.link(t, l, true)
			return
		}
		last := l.nodeAt(at - 1).GetMut(t)
		firstHalf := last.next
		first := firstHalf.GetMut(t)
		lastHalf := first.prev
		last.next, first.prev = nil, nil

		rest.head, rest.tail, rest.length = firstHalf, l.tail, l.length-at
		l.tail, l.length = lastHalf, at
		l.version++
	})
	return rest, nil
}

// Cursor returns a read-only cursor positioned before the first element.
// The cursor is valid while t is live.
func (l *List[V]) Cursor(t Token) *Cursor[V] {
	check(t, l.st)
	return &Cursor[V]{cursor[V]{l: l, t: t, index: -1}}
}

// CursorMut returns a mutating cursor positioned before the first element.
// The cursor is valid while t is live.
func (l *List[V]) CursorMut(t *ExclusiveToken) *CursorMut[V] {
	check(t, l.st)
	return &CursorMut[V]{cursor: cursor[V]{l: l, t: t, index: -1}, x: t}
}

// CursorFront returns a read-only cursor on the first element, or before
// the first element if the list is empty.
func (l *List[V]) CursorFront(t Token) *Cursor[V] {
	c := l.Cursor(t)
	c.MoveToFront()
	return c
}

// CursorBack returns a read-only cursor on the last element, or after
// the last element if the list is empty.
func (l *List[V]) CursorBack(t Token) *Cursor[V] {
	c := l.Cursor(t)
	c.MoveToBack()
	return c
}

// CursorFrontMut is CursorFront for a mutating cursor.
func (l *List[V]) CursorFrontMut(t *ExclusiveToken) *CursorMut[V] {
	c := l.CursorMut(t)
	c.MoveToFront()
	return c
}

// CursorBackMut is CursorBack for a mutating cursor.
func (l *List[V]) CursorBackMut(t *ExclusiveToken) *CursorMut[V] {
	c := l.CursorMut(t)
	c.MoveToBack()
	return c
}

// FrontMut returns a write view of the front element, or false if the
// list is empty. The view is valid while t is live.
func (l *List[V]) FrontMut(t *ExclusiveToken) (*V, bool) {
	check(t, l.st)
	if l.head == nil {
		return nil, false
	}
	return &l.head.GetMut(t).value, true
}

// BackMut returns a write view of the back element, or false if the
// list is empty. The view is valid while t is live.
func (l *List[V]) BackMut(t *ExclusiveToken) (*V, bool) {
	check(t, l.st)
	if l.tail == nil {
		return nil, false
	}
	return &l.tail.GetMut(t).value, true
}

// AtMut returns a write view of the element at index i, walking from the
// nearer end. Returns false if i is out of range.
func (l *List[V]) AtMut(t *ExclusiveToken, i int) (*V, bool) {
	check(t, l.st)
	if i < 0 || i >= l.length {
		return nil, false
	}
	return &l.nodeAt(i).GetMut(t).value, true
}

// WithCursor runs body with a read-only cursor over l under a shared token
// scoped to the call.
func WithCursor[V, R any](l *List[V], body func(*Cursor[V]) R) R {
	return WithShared(l.Brand(), func(t *SharedToken) R {
		return body(l.Cursor(t))
	})
}

// WithCursorMut runs body with a mutating cursor over l under an exclusive
// token scoped to the call.
func WithCursorMut[V, R any](l *List[V], body func(*CursorMut[V]) R) R {
	return WithExclusive(l.Brand(), func(t *ExclusiveToken) R {
		return body(l.CursorMut(t))
	})
}

// exclusive runs f under a fresh exclusive token of the list's brand,
// recycling retired slots first: no view from an earlier token survives.
func (l *List[V]) exclusive(f func(t *ExclusiveToken)) {
	exclusive(l.st, func(t *ExclusiveToken) {
		l.recycle()
		f(t)
	})
}

// retire parks a slot freed under a cursor. Slots beyond the pool
// capacity are left to the garbage collector.
func (l *List[V]) retire(s *slot[node[V]]) {
	if s.pool == nil || len(l.retired) >= l.opts.poolSize {
		return
	}
	l.retired = append(l.retired, s)
}

func (l *List[V]) recycle() {
	for i, s := range l.retired {
		s.pool.put(s)
		l.retired[i] = nil
	}
	l.retired = l.retired[:0]
}

// alloc returns the full pointer of a new detached node.
func (l *List[V]) alloc(value V) *Ptr[node[V]] {
	return newPtr(l.pool, l.st, node[V]{value: value}, halves)
}

func (l *List[V]) pushFront(t *ExclusiveToken, value V) {
	fwd, bwd := l.alloc(value).Split(1)
	if l.head == nil {
		l.head, l.tail = fwd, bwd
	} else {
		first := l.head.GetMut(t)
		n := fwd.GetMut(t)
		n.next = l.head
		first.prev = bwd
		l.head = fwd
	}
	l.length++
	l.version++
}

func (l *List[V]) pushBack(t *ExclusiveToken, value V) {
	fwd, bwd := l.alloc(value).Split(1)
	if l.tail == nil {
		l.head, l.tail = fwd, bwd
	} else {
		last := l.tail.GetMut(t)
		n := bwd.GetMut(t)
		n.prev = l.tail
		last.next = fwd
		l.tail = bwd
	}
	l.length++
	l.version++
}

func (l *List[V]) popFront(t *ExclusiveToken) (v V, ok bool) {
	if l.head == nil {
		return v, false
	}
	fwd := l.head
	n := fwd.GetMut(t)
	next := n.next
	n.next = nil
	var bwd *Ptr[node[V]]
	if next == nil {
		bwd = l.tail
		l.head, l.tail = nil, nil
	} else {
		succ := next.GetMut(t)
		bwd = succ.prev
		succ.prev = nil
		l.head = next
	}
	l.length--
	l.version++
	return mustJoin(fwd, bwd).IntoInner().value, true
}

func (l *List[V]) popBack(t *ExclusiveToken) (v V, ok bool) {
	if l.tail == nil {
		return v, false
	}
	bwd := l.tail
	n := bwd.GetMut(t)
	prev := n.prev
	n.prev = nil
	var fwd *Ptr[node[V]]
	if prev == nil {
		fwd = l.head
		l.head, l.tail = nil, nil
	} else {
		pred := prev.GetMut(t)
		fwd = pred.next
		pred.next = nil
		l.tail = prev
	}
	l.length--
	l.version++
	return mustJoin(fwd, bwd).IntoInner().value, true
}

// nodeAt returns a pointer to the node at index i, walking from the
// nearer end. The caller holds a token and has checked 0 <= i < length.
func (l *List[V]) nodeAt(i int) *Ptr[node[V]] {
	if i < l.length/2 {
		p := l.head
		for ; i > 0; i-- {
			p = view(p).next
		}
		return p
	}
	p := l.tail
	for j := l.length - 1; j > i; j-- {
		p = view(p).prev
	}
	return p
}
