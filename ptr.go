// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import "errors"

var (
	// ErrFractionOverflow indicates that joining two pointers would exceed
	// the total ownership of their cell.
	ErrFractionOverflow = errors.New("ghost: fraction overflow")

	// ErrForeignPointer indicates that two pointers to different cells
	// were joined.
	ErrForeignPointer = errors.New("ghost: pointers reference different cells")
)

// slot is the heap block behind a family of fractional pointers.
// gen advances every time the slot is freed, so pointers kept past
// the free are detected instead of aliasing a recycled cell.
type slot[T any] struct {
	cell  Cell[T]
	total uint32
	gen   uint32
	pool  *pool[T]
}

// Ptr is a fractional-ownership pointer to a branded cell.
//
// The ownership of a cell is a fixed total split across its live pointers.
// A pointer holding the whole total proves no other pointer to the cell
// exists and may free it with IntoInner; a partial pointer only grants
// access through a token.
//
// Ptr values are linear: Split, Join and IntoInner consume their inputs,
// and any later use of a consumed pointer panics.
type Ptr[T any] struct {
	s    *slot[T]
	gen  uint32
	frac uint32
}

// NewPtr allocates a cell branded with b and returns the single pointer
// holding its full ownership total.
func NewPtr[T any](b Brand, value T, total uint32) *Ptr[T] {
	return newPtr[T](nil, b.mustState(), value, total)
}

func newPtr[T any](p *pool[T], st *brand, value T, total uint32) *Ptr[T] {
	if total == 0 {
		panic("ghost: zero ownership total")
	}
	s := p.get()
	s.cell.b = st
	s.cell.value = value
	s.total = total
	s.pool = p
	return &Ptr[T]{s: s, gen: s.gen, frac: total}
}

func (p *Ptr[T]) slot() *slot[T] {
	if p == nil || p.frac == 0 {
		panic("ghost: use of consumed pointer")
	}
	if p.gen != p.s.gen {
		panic("ghost: use of stale pointer")
	}
	return p.s
}

// Frac returns the ownership fraction held by p.
func (p *Ptr[T]) Frac() uint32 {
	p.slot()
	return p.frac
}

// Total returns the fixed ownership total of p's cell.
func (p *Ptr[T]) Total() uint32 {
	return p.slot().total
}

// IsFull reports whether p holds the whole ownership of its cell.
func (p *Ptr[T]) IsFull() bool {
	return p.frac == p.slot().total
}

// Same reports whether p and q reference the same cell.
func (p *Ptr[T]) Same(q *Ptr[T]) bool {
	return p.slot() == q.slot()
}

// Cell returns the branded cell p points to.
func (p *Ptr[T]) Cell() *Cell[T] {
	return &p.slot().cell
}

// Get returns a copy of the pointee. Any fraction suffices.
func (p *Ptr[T]) Get(t Token) T {
	return p.slot().cell.Get(t)
}

// GetMut returns a write view of the pointee. Any fraction suffices:
// the exclusive token proves no other view of the brand is live.
// The view is invalid once the cell is freed, even while t is live.
func (p *Ptr[T]) GetMut(t *ExclusiveToken) *T {
	return p.slot().cell.GetMut(t)
}

// Split consumes p and returns two pointers to the same cell holding
// k and Frac()-k. Panics unless 0 < k < Frac().
func (p *Ptr[T]) Split(k uint32) (*Ptr[T], *Ptr[T]) {
	s := p.slot()
	if k == 0 || k >= p.frac {
		panic("ghost: split fraction out of range")
	}
	a := &Ptr[T]{s: s, gen: p.gen, frac: k}
	b := &Ptr[T]{s: s, gen: p.gen, frac: p.frac - k}
	p.frac = 0
	return a, b
}

// Join consumes a and b and returns one pointer holding the sum of their
// fractions. On error neither input is consumed.
func Join[T any](a, b *Ptr[T]) (*Ptr[T], error) {
	sa, sb := a.slot(), b.slot()
	if a == b {
		panic("ghost: pointer joined with itself")
	}
	if sa != sb {
		return nil, ErrForeignPointer
	}
	if a.frac+b.frac > sa.total {
		return nil, ErrFractionOverflow
	}
	j := &Ptr[T]{s: sa, gen: a.gen, frac: a.frac + b.frac}
	a.frac, b.frac = 0, 0
	return j, nil
}

// mustJoin joins two halves the caller knows to be complementary.
func mustJoin[T any](a, b *Ptr[T]) *Ptr[T] {
	j, err := Join(a, b)
	if err != nil {
		panic("ghost: broken link invariant: " + err.Error())
	}
	return j
}

// IntoInner consumes a full pointer, frees its cell and returns the value.
// Full ownership proves no other pointer exists, so no token is needed.
// Panics if p holds only part of the total.
func (p *Ptr[T]) IntoInner() T {
	v, s := p.free()
	s.pool.put(s)
	return v
}

// free is IntoInner without recycling: the caller decides when the
// slot may be reused.
func (p *Ptr[T]) free() (T, *slot[T]) {
	s := p.slot()
	if p.frac != s.total {
		panic("ghost: into inner of a partial pointer")
	}
	v := s.cell.value
	var zero T
	s.cell.value = zero
	s.cell.b = nil
	s.gen++
	p.frac = 0
	return v, s
}
