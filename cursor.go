// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import "errors"

// ErrEmptyCursor indicates a cursor operation that needs an element while
// the cursor is not positioned on one.
var ErrEmptyCursor = errors.New("ghost: cursor not on an element")

// position is the cursor state: before the first element, on an element,
// or after the last element.
type position uint8

const (
	beforeFirst position = iota
	onNode
	afterLast
)

// cursor is the traversal state shared by Cursor and CursorMut.
// cur is a non-owning reference to some half of the current node;
// index is -1 before the first element and Len() after the last.
type cursor[V any] struct {
	l     *List[V]
	t     Token
	pos   position
	cur   *Ptr[node[V]]
	index int
}

// node checks the bound token and returns the current node, or nil.
func (c *cursor[V]) node() *node[V] {
	check(c.t, c.l.st)
	if c.pos != onNode {
		return nil
	}
	return view(c.cur)
}

func (c *cursor[V]) toBeforeFirst() {
	c.pos, c.cur, c.index = beforeFirst, nil, -1
}

func (c *cursor[V]) toAfterLast() {
	c.pos, c.cur, c.index = afterLast, nil, c.l.length
}

// Len returns the length of the underlying list.
func (c *cursor[V]) Len() int {
	check(c.t, c.l.st)
	return c.l.length
}

// Index returns the index of the current element, or false when the
// cursor is before the first or after the last element.
func (c *cursor[V]) Index() (int, bool) {
	if c.node() == nil {
		return 0, false
	}
	return c.index, true
}

// IsBeforeFirst reports whether the cursor is before the first element.
func (c *cursor[V]) IsBeforeFirst() bool {
	check(c.t, c.l.st)
	return c.pos == beforeFirst
}

// IsAfterLast reports whether the cursor is after the last element.
func (c *cursor[V]) IsAfterLast() bool {
	check(c.t, c.l.st)
	return c.pos == afterLast
}

// MoveNext advances the cursor. From before the first element it moves
// to the head; from the tail it moves after the last element.
// Returns whether the cursor is now on an element.
func (c *cursor[V]) MoveNext() bool {
	check(c.t, c.l.st)
	switch c.pos {
	case beforeFirst:
		if c.l.head == nil {
			c.toAfterLast()
			return false
		}
		c.pos, c.cur, c.index = onNode, c.l.head, 0
		return true
	case onNode:
		next := view(c.cur).next
		if next == nil {
			c.toAfterLast()
			return false
		}
		c.cur = next
		c.index++
		return true
	}
	return false
}

// MovePrev moves the cursor back. From after the last element it moves
// to the tail; from the head it moves before the first element.
// Returns whether the cursor is now on an element.
func (c *cursor[V]) MovePrev() bool {
	check(c.t, c.l.st)
	switch c.pos {
	case afterLast:
		if c.l.tail == nil {
			c.toBeforeFirst()
			return false
		}
		c.pos, c.cur, c.index = onNode, c.l.tail, c.l.length-1
		return true
	case onNode:
		prev := view(c.cur).prev
		if prev == nil {
			c.toBeforeFirst()
			return false
		}
		c.cur = prev
		c.index--
		return true
	}
	return false
}

// MoveToFront positions the cursor on the first element.
// Returns false, leaving the cursor before the first element, if the list is empty.
func (c *cursor[V]) MoveToFront() bool {
	check(c.t, c.l.st)
	if c.l.head == nil {
		c.toBeforeFirst()
		return false
	}
	c.pos, c.cur, c.index = onNode, c.l.head, 0
	return true
}

// MoveToBack positions the cursor on the last element.
// Returns false, leaving the cursor after the last element, if the list is empty.
func (c *cursor[V]) MoveToBack() bool {
	check(c.t, c.l.st)
	if c.l.tail == nil {
		c.toAfterLast()
		return false
	}
	c.pos, c.cur, c.index = onNode, c.l.tail, c.l.length-1
	return true
}

// Current returns the current element, or false when not on an element.
func (c *cursor[V]) Current() (v V, ok bool) {
	if n := c.node(); n != nil {
		return n.value, true
	}
	return v, false
}

// PeekNext returns the element MoveNext would land on, without moving.
func (c *cursor[V]) PeekNext() (v V, ok bool) {
	check(c.t, c.l.st)
	var p *Ptr[node[V]]
	switch c.pos {
	case beforeFirst:
		p = c.l.head
	case onNode:
		p = view(c.cur).next
	}
	if p == nil {
		return v, false
	}
	return view(p).value, true
}

// PeekPrev returns the element MovePrev would land on, without moving.
func (c *cursor[V]) PeekPrev() (v V, ok bool) {
	check(c.t, c.l.st)
	var p *Ptr[node[V]]
	switch c.pos {
	case afterLast:
		p = c.l.tail
	case onNode:
		p = view(c.cur).prev
	}
	if p == nil {
		return v, false
	}
	return view(p).value, true
}

// Cursor is a read-only traversal handle bound to one token.
type Cursor[V any] struct {
	cursor[V]
}

// CursorMut is a traversal and mutation handle bound to one exclusive token.
type CursorMut[V any] struct {
	cursor[V]
	x *ExclusiveToken
}

// CurrentMut returns a write view of the current element, or false when
// not on an element. The view must not outlive the bound token. After the
// element is removed, writes through the view reach no list element.
func (c *CursorMut[V]) CurrentMut() (*V, bool) {
	check(c.x, c.l.st)
	if c.pos != onNode {
		return nil, false
	}
	return &c.cur.GetMut(c.x).value, true
}

// InsertAfter inserts value after the cursor position without moving.
// Before the first element it inserts at the front; after the last
// element it inserts at the back.
func (c *CursorMut[V]) InsertAfter(value V) {
	t := c.x
	check(t, c.l.st)
	switch c.pos {
	case beforeFirst:
		c.l.pushFront(t, value)
		return
	case afterLast:
		c.l.pushBack(t, value)
		c.index = c.l.length
		return
	}
	cur := c.cur.GetMut(t)
	if cur.next == nil {
		c.l.pushBack(t, value)
		return
	}
	// cur -> next becomes cur -> n -> next: n takes over the half of next
	// held by cur and the half of cur held by next.
	fwd, bwd := c.l.alloc(value).Split(1)
	nextHalf := cur.next
	next := nextHalf.GetMut(t)
	n := fwd.GetMut(t)
	n.prev, n.next = next.prev, nextHalf
	cur.next, next.prev = fwd, bwd
	c.l.length++
	c.l.version++
}

// InsertBefore inserts value before the cursor position without moving.
// Before the first element it inserts at the front; after the last
// element it inserts at the back.
func (c *CursorMut[V]) InsertBefore(value V) {
	t := c.x
	check(t, c.l.st)
	switch c.pos {
	case beforeFirst:
		c.l.pushFront(t, value)
		return
	case afterLast:
		c.l.pushBack(t, value)
		c.index = c.l.length
		return
	}
	cur := c.cur.GetMut(t)
	c.index++
	if cur.prev == nil {
		c.l.pushFront(t, value)
		return
	}
	fwd, bwd := c.l.alloc(value).Split(1)
	prevHalf := cur.prev
	prev := prevHalf.GetMut(t)
	n := fwd.GetMut(t)
	n.prev, n.next = prevHalf, prev.next
	prev.next, cur.prev = fwd, bwd
	c.l.length++
	c.l.version++
}

// RemoveCurrent unlinks and returns the current element, moving the
// cursor to its successor, or after the last element. Returns false
// when not on an element.
func (c *CursorMut[V]) RemoveCurrent() (v V, ok bool) {
	t := c.x
	check(t, c.l.st)
	if c.pos != onNode {
		return v, false
	}
	cur := c.cur.GetMut(t)
	prevHalf, nextHalf := cur.prev, cur.next
	cur.prev, cur.next = nil, nil

	// Reclaim both halves of cur from its neighbors and hand each
	// neighbor the half of the other that cur was holding.
	var fwd, bwd *Ptr[node[V]]
	if prevHalf == nil {
		fwd, c.l.head = c.l.head, nextHalf
	} else {
		prev := prevHalf.GetMut(t)
		fwd, prev.next = prev.next, nextHalf
	}
	if nextHalf == nil {
		bwd, c.l.tail = c.l.tail, prevHalf
	} else {
		next := nextHalf.GetMut(t)
		bwd, next.prev = next.prev, prevHalf
	}
	c.l.length--
	c.l.version++

	if nextHalf == nil {
		c.toAfterLast()
	} else {
		c.cur = nextHalf
	}
	n, s := mustJoin(fwd, bwd).free()
	c.l.retire(s)
	return n.value, true
}
