// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost_test

import (
	"testing"

	"code.hybscloud.com/ghost"
	"code.hybscloud.com/kont"
)

// BenchmarkPushPop measures a push-back/pop-front round-trip on a warm list.
func BenchmarkPushPop(b *testing.B) {
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand())
	for b.Loop() {
		l.PushBack(1)
		l.PopFront()
	}
}

// BenchmarkPushPopNoPool measures the same round-trip without slot recycling.
func BenchmarkPushPopNoPool(b *testing.B) {
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand(), ghost.WithPoolSize(0))
	for b.Loop() {
		l.PushBack(1)
		l.PopFront()
	}
}

// BenchmarkCursorWalk measures a read-only walk over 1024 elements.
func BenchmarkCursorWalk(b *testing.B) {
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand())
	for i := range 1024 {
		l.PushBack(i)
	}
	for b.Loop() {
		ghost.WithCursor(l, func(c *ghost.Cursor[int]) int {
			sum := 0
			for c.MoveNext() {
				v, _ := c.Current()
				sum += v
			}
			return sum
		})
	}
}

// BenchmarkCursorInsertRemove measures a mid-list insert and removal.
func BenchmarkCursorInsertRemove(b *testing.B) {
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand())
	for i := range 16 {
		l.PushBack(i)
	}
	for b.Loop() {
		ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) int {
			c.MoveNext()
			c.InsertAfter(-1)
			c.MoveNext()
			v, _ := c.RemoveCurrent()
			return v
		})
	}
}

// BenchmarkAppendSameBrand measures O(1) same-brand splicing.
func BenchmarkAppendSameBrand(b *testing.B) {
	b.ReportAllocs()
	br := ghost.NewBrand()
	a, c := ghost.New[int](br), ghost.New[int](br)
	for i := range 256 {
		c.PushBack(i)
	}
	for b.Loop() {
		a.Append(c)
		c.Append(a)
	}
}

// BenchmarkExecWalk measures an effect-driven walk over 64 elements.
func BenchmarkExecWalk(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand())
	for i := range 64 {
		l.PushBack(i)
	}
	for b.Loop() {
		ghost.Exec[int, []int](l, collect())
	}
}

// BenchmarkExprStep measures one Step+Advance round on a session.
func BenchmarkExprStep(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	l := ghost.New[int](ghost.NewBrand())
	l.PushBack(1)
	s := ghost.NewSession(l)
	for b.Loop() {
		protocol := ghost.ExprMoveNextBind(func(ok bool) kont.Expr[bool] {
			return kont.ExprReturn(ok)
		})
		stepSession(s, protocol)
	}
}
