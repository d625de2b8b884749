// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/ghost"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// fromSlice builds a list of vs under a fresh brand.
func fromSlice[V any](vs []V, opts ...ghost.Option) *ghost.List[V] {
	l := ghost.New[V](ghost.NewBrand(), opts...)
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// forward walks l with a read-only cursor from before the first element
// to after the last.
func forward[V any](l *ghost.List[V]) []V {
	return ghost.WithCursor(l, func(c *ghost.Cursor[V]) []V {
		out := []V{}
		for c.MoveNext() {
			v, _ := c.Current()
			out = append(out, v)
		}
		return out
	})
}

// backward walks l with a read-only cursor from after the last element
// to before the first.
func backward[V any](l *ghost.List[V]) []V {
	return ghost.WithCursor(l, func(c *ghost.Cursor[V]) []V {
		out := []V{}
		for ok := c.MoveToBack(); ok; ok = c.MovePrev() {
			v, _ := c.Current()
			out = append(out, v)
		}
		return out
	})
}

// assertList checks contents in both directions, the length and the
// list invariants.
func assertList[V comparable](t *testing.T, l *ghost.List[V], want []V) {
	t.Helper()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := forward(l); !slices.Equal(got, want) {
		t.Fatalf("forward got %v, want %v", got, want)
	}
	rev := slices.Clone(want)
	slices.Reverse(rev)
	if got := backward(l); !slices.Equal(got, rev) {
		t.Fatalf("backward got %v, want %v", got, rev)
	}
	if l.Len() != len(want) {
		t.Fatalf("Len got %d, want %d", l.Len(), len(want))
	}
	if l.IsEmpty() != (len(want) == 0) {
		t.Fatalf("IsEmpty got %t for %d elements", l.IsEmpty(), len(want))
	}
}

// mustPanic runs f and fails unless it panics with message want.
func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	f()
}

// stepSession drives protocol on s via the Step+Advance loop.
// Retries on iox.ErrWouldBlock (brand held elsewhere); returns any other
// error with the pending result.
func stepSession[V, R any](s *ghost.Session[V], protocol kont.Expr[R]) (R, error) {
	result, susp := ghost.Step(protocol)
	for susp != nil {
		var err error
		result, susp, err = ghost.Advance(s, susp)
		if iox.IsWouldBlock(err) {
			continue
		}
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// collect walks the cursor front to back, returning every element.
func collect() kont.Eff[[]int] {
	return ghost.Loop([]int{}, func(acc []int) kont.Eff[kont.Either[[]int, []int]] {
		return ghost.MoveNextBind(func(ok bool) kont.Eff[kont.Either[[]int, []int]] {
			if !ok {
				return kont.Pure(kont.Right[[]int, []int](acc))
			}
			return ghost.CurrentBind[int](func(e kont.Either[error, int]) kont.Eff[kont.Either[[]int, []int]] {
				v, _ := e.GetRight()
				return kont.Pure(kont.Left[[]int, []int](append(acc, v)))
			})
		})
	})
}
