// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost_test

import (
	"testing"

	"code.hybscloud.com/ghost"
)

func TestCursorWalk(t *testing.T) {
	l := fromSlice([]int{10, 20, 30})
	ghost.WithCursor(l, func(c *ghost.Cursor[int]) struct{} {
		if !c.IsBeforeFirst() || c.IsAfterLast() {
			t.Fatal("new cursor not before the first element")
		}
		if _, ok := c.Index(); ok {
			t.Fatal("Index reported before the first element")
		}
		if _, ok := c.Current(); ok {
			t.Fatal("Current reported before the first element")
		}
		if v, ok := c.PeekNext(); !ok || v != 10 {
			t.Fatalf("PeekNext got %d, %t", v, ok)
		}
		if _, ok := c.PeekPrev(); ok {
			t.Fatal("PeekPrev reported before the first element")
		}
		// MovePrev before the first element stays put.
		if c.MovePrev() || !c.IsBeforeFirst() {
			t.Fatal("MovePrev left the before-first position")
		}

		for i, want := range []int{10, 20, 30} {
			if !c.MoveNext() {
				t.Fatalf("MoveNext %d reported no element", i)
			}
			v, _ := c.Current()
			idx, _ := c.Index()
			if v != want || idx != i {
				t.Fatalf("step %d: got value %d index %d", i, v, idx)
			}
		}
		if v, ok := c.PeekPrev(); !ok || v != 20 {
			t.Fatalf("PeekPrev got %d, %t", v, ok)
		}
		if _, ok := c.PeekNext(); ok {
			t.Fatal("PeekNext reported past the tail")
		}
		if c.MoveNext() || !c.IsAfterLast() {
			t.Fatal("MoveNext from the tail did not reach after-last")
		}
		// MoveNext after the last element stays put.
		if c.MoveNext() || !c.IsAfterLast() {
			t.Fatal("MoveNext left the after-last position")
		}
		if v, ok := c.PeekPrev(); !ok || v != 30 {
			t.Fatalf("PeekPrev after last got %d, %t", v, ok)
		}
		if !c.MovePrev() {
			t.Fatal("MovePrev from after-last reported no element")
		}
		if idx, _ := c.Index(); idx != 2 {
			t.Fatalf("Index got %d, want 2", idx)
		}
		return struct{}{}
	})
}

func TestCursorJumps(t *testing.T) {
	l := fromSlice([]string{"a", "b", "c"})
	ghost.WithCursor(l, func(c *ghost.Cursor[string]) struct{} {
		if !c.MoveToBack() {
			t.Fatal("MoveToBack reported no element")
		}
		if v, _ := c.Current(); v != "c" {
			t.Fatalf("back got %q", v)
		}
		if !c.MoveToFront() {
			t.Fatal("MoveToFront reported no element")
		}
		if v, _ := c.Current(); v != "a" {
			t.Fatalf("front got %q", v)
		}
		if c.Len() != 3 {
			t.Fatalf("Len got %d", c.Len())
		}
		return struct{}{}
	})

	empty := ghost.New[string](ghost.NewBrand())
	ghost.WithCursor(empty, func(c *ghost.Cursor[string]) struct{} {
		if c.MoveToFront() || !c.IsBeforeFirst() {
			t.Fatal("MoveToFront on empty list")
		}
		if c.MoveToBack() || !c.IsAfterLast() {
			t.Fatal("MoveToBack on empty list")
		}
		if c.MoveNext() || !c.IsAfterLast() {
			t.Fatal("MoveNext after last on empty list")
		}
		if c.MovePrev() || !c.IsBeforeFirst() {
			t.Fatal("MovePrev on empty list did not reach before-first")
		}
		if c.MoveNext() || !c.IsAfterLast() {
			t.Fatal("MoveNext on empty list did not reach after-last")
		}
		return struct{}{}
	})
}

func TestCursorInsertBoundaries(t *testing.T) {
	l := ghost.New[int](ghost.NewBrand())
	ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) struct{} {
		c.InsertAfter(2) // before-first: front
		c.InsertBefore(1)
		if !c.IsBeforeFirst() {
			t.Fatal("insert moved the cursor")
		}
		c.MoveToBack()
		c.MoveNext()
		c.InsertAfter(4) // after-last: back
		c.InsertBefore(5)
		if !c.IsAfterLast() {
			t.Fatal("insert moved the cursor")
		}
		if !c.MovePrev() {
			t.Fatal("MovePrev after back insert reported no element")
		}
		if v, _ := c.Current(); v != 5 {
			t.Fatalf("tail got %d, want 5", v)
		}
		return struct{}{}
	})
	assertList(t, l, []int{1, 2, 4, 5})
}

func TestCursorInsertAround(t *testing.T) {
	l := fromSlice([]int{1, 3, 5})
	ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) struct{} {
		c.MoveNext() // on 1
		c.InsertBefore(0)
		c.InsertAfter(2)
		if v, _ := c.Current(); v != 1 {
			t.Fatalf("cursor moved to %d", v)
		}
		if idx, _ := c.Index(); idx != 1 {
			t.Fatalf("Index got %d, want 1", idx)
		}
		c.MoveNext()
		c.MoveNext() // on 3
		c.InsertAfter(4)
		c.MoveToBack() // on 5
		c.InsertAfter(6)
		c.InsertBefore(45)
		if idx, _ := c.Index(); idx != 6 {
			t.Fatalf("Index got %d, want 6", idx)
		}
		return struct{}{}
	})
	assertList(t, l, []int{0, 1, 2, 3, 4, 45, 5, 6})
}

func TestCursorRemove(t *testing.T) {
	l := fromSlice([]int{1, 2, 3, 4})
	ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) struct{} {
		if _, ok := c.RemoveCurrent(); ok {
			t.Fatal("RemoveCurrent before the first element")
		}
		c.MoveNext()
		if v, ok := c.RemoveCurrent(); !ok || v != 1 {
			t.Fatalf("remove head got %d, %t", v, ok)
		}
		if v, _ := c.Current(); v != 2 {
			t.Fatalf("cursor after head removal on %d", v)
		}
		if idx, _ := c.Index(); idx != 0 {
			t.Fatalf("Index got %d, want 0", idx)
		}
		c.MoveNext()
		if v, _ := c.RemoveCurrent(); v != 3 {
			t.Fatalf("remove middle got %d", v)
		}
		if v, _ := c.RemoveCurrent(); v != 4 {
			t.Fatalf("remove tail got %d", v)
		}
		if !c.IsAfterLast() {
			t.Fatal("removing the tail did not reach after-last")
		}
		if _, ok := c.RemoveCurrent(); ok {
			t.Fatal("RemoveCurrent after the last element")
		}
		c.MovePrev()
		if v, _ := c.RemoveCurrent(); v != 2 {
			t.Fatalf("remove only element got %d", v)
		}
		if !c.IsAfterLast() || c.Len() != 0 {
			t.Fatal("list not empty after removing every element")
		}
		return struct{}{}
	})
	assertList(t, l, []int{})
}

func TestCursorCurrentMut(t *testing.T) {
	l := fromSlice([]int{1, 2, 3})
	ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) struct{} {
		if _, ok := c.CurrentMut(); ok {
			t.Fatal("CurrentMut before the first element")
		}
		for c.MoveNext() {
			v, _ := c.CurrentMut()
			*v *= 10
		}
		return struct{}{}
	})
	assertList(t, l, []int{10, 20, 30})
}

func TestCursorTokenScope(t *testing.T) {
	l := fromSlice([]int{1})
	escaped := ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) *ghost.CursorMut[int] {
		return c
	})
	mustPanic(t, "ghost: token used outside its scope", func() { escaped.MoveNext() })
	mustPanic(t, "ghost: token used outside its scope", func() { escaped.InsertAfter(2) })
	assertList(t, l, []int{1})

	other := ghost.NewBrand()
	mustPanic(t, "ghost: token brand mismatch", func() {
		ghost.WithShared(other, func(tok *ghost.SharedToken) struct{} {
			l.Cursor(tok)
			return struct{}{}
		})
	})
}

func TestCursorSharedReaders(t *testing.T) {
	l := fromSlice([]int{1, 2})
	ghost.WithShared(l.Brand(), func(tok *ghost.SharedToken) struct{} {
		a, b := l.Cursor(tok), l.Cursor(tok)
		a.MoveNext()
		b.MoveToBack()
		va, _ := a.Current()
		vb, _ := b.Current()
		if va != 1 || vb != 2 {
			t.Fatalf("readers got %d and %d", va, vb)
		}
		return struct{}{}
	})
}

func TestCursorRemovedViewIsolated(t *testing.T) {
	l := fromSlice([]int{1, 2, 3})
	ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) struct{} {
		c.MoveNext()
		v, _ := c.CurrentMut()
		if got, _ := c.RemoveCurrent(); got != 1 {
			t.Fatalf("removed %d, want 1", got)
		}
		c.InsertBefore(100)
		c.InsertAfter(200)
		*v = -7
		return struct{}{}
	})
	assertList(t, l, []int{100, 2, 200, 3})

	// Freed slots are reused once the cursor's token is gone.
	for i := range 4 {
		l.PushBack(i)
	}
	assertList(t, l, []int{100, 2, 200, 3, 0, 1, 2, 3})
}

func TestCursorFrontBack(t *testing.T) {
	l := fromSlice([]int{1, 2, 3})
	ghost.WithShared(l.Brand(), func(tok *ghost.SharedToken) struct{} {
		front, back := l.CursorFront(tok), l.CursorBack(tok)
		f, _ := front.Current()
		b, _ := back.Current()
		fi, _ := front.Index()
		bi, _ := back.Index()
		if f != 1 || b != 3 || fi != 0 || bi != 2 {
			t.Fatalf("front %d@%d back %d@%d", f, fi, b, bi)
		}
		return struct{}{}
	})
	ghost.WithExclusive(l.Brand(), func(tok *ghost.ExclusiveToken) struct{} {
		l.CursorFrontMut(tok).InsertBefore(0)
		l.CursorBackMut(tok).InsertAfter(4)
		return struct{}{}
	})
	assertList(t, l, []int{0, 1, 2, 3, 4})

	empty := ghost.New[int](ghost.NewBrand())
	ghost.WithExclusive(empty.Brand(), func(tok *ghost.ExclusiveToken) struct{} {
		if !empty.CursorFront(tok).IsBeforeFirst() {
			t.Fatal("CursorFront on empty list not before the first element")
		}
		if !empty.CursorBackMut(tok).IsAfterLast() {
			t.Fatal("CursorBackMut on empty list not after the last element")
		}
		return struct{}{}
	})
}
