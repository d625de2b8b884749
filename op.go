// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// navigator is the element-type-free part of a mutating cursor.
// Navigation effects dispatch on it directly; value effects recover the
// typed *CursorMut[V].
type navigator interface {
	Len() int
	MoveNext() bool
	MovePrev() bool
	MoveToFront() bool
	MoveToBack() bool
}

// mutCursor recovers the typed cursor behind c.
func mutCursor[V any](c navigator) *CursorMut[V] {
	cm, ok := c.(*CursorMut[V])
	if !ok {
		panic("ghost: cursor effect element type mismatch")
	}
	return cm
}

// MoveNext is the effect operation for advancing the cursor.
// Perform(MoveNext{}) resumes with whether the cursor landed on an element.
type MoveNext struct {
	kont.Phantom[bool]
}

// DispatchCursor handles MoveNext on the session cursor.
func (MoveNext) DispatchCursor(c navigator) kont.Resumed {
	return c.MoveNext()
}

// MovePrev is the effect operation for moving the cursor back.
// Perform(MovePrev{}) resumes with whether the cursor landed on an element.
type MovePrev struct {
	kont.Phantom[bool]
}

// DispatchCursor handles MovePrev on the session cursor.
func (MovePrev) DispatchCursor(c navigator) kont.Resumed {
	return c.MovePrev()
}

// MoveToFront is the effect operation for jumping to the first element.
type MoveToFront struct {
	kont.Phantom[bool]
}

// DispatchCursor handles MoveToFront on the session cursor.
func (MoveToFront) DispatchCursor(c navigator) kont.Resumed {
	return c.MoveToFront()
}

// MoveToBack is the effect operation for jumping to the last element.
type MoveToBack struct {
	kont.Phantom[bool]
}

// DispatchCursor handles MoveToBack on the session cursor.
func (MoveToBack) DispatchCursor(c navigator) kont.Resumed {
	return c.MoveToBack()
}

// Len is the effect operation for reading the list length.
type Len struct {
	kont.Phantom[int]
}

// DispatchCursor handles Len on the session cursor.
func (Len) DispatchCursor(c navigator) kont.Resumed {
	return c.Len()
}

// Current is the effect operation for reading the current element.
// Resumes with Right(value), or Left(ErrEmptyCursor) when the cursor is
// not on an element.
type Current[V any] struct {
	kont.Phantom[kont.Either[error, V]]
}

// DispatchCursor handles Current on the session cursor.
func (Current[V]) DispatchCursor(c navigator) kont.Resumed {
	v, ok := mutCursor[V](c).Current()
	if !ok {
		return kont.Left[error, V](ErrEmptyCursor)
	}
	return kont.Right[error](v)
}

// InsertAfter is the effect operation for inserting Value after the cursor.
type InsertAfter[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// DispatchCursor handles InsertAfter on the session cursor.
func (op InsertAfter[V]) DispatchCursor(c navigator) kont.Resumed {
	mutCursor[V](c).InsertAfter(op.Value)
	return struct{}{}
}

// InsertBefore is the effect operation for inserting Value before the cursor.
type InsertBefore[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// DispatchCursor handles InsertBefore on the session cursor.
func (op InsertBefore[V]) DispatchCursor(c navigator) kont.Resumed {
	mutCursor[V](c).InsertBefore(op.Value)
	return struct{}{}
}

// RemoveCurrent is the effect operation for unlinking the current element.
// Resumes with Right(value), or Left(ErrEmptyCursor) when the cursor is
// not on an element.
type RemoveCurrent[V any] struct {
	kont.Phantom[kont.Either[error, V]]
}

// DispatchCursor handles RemoveCurrent on the session cursor.
func (RemoveCurrent[V]) DispatchCursor(c navigator) kont.Resumed {
	v, ok := mutCursor[V](c).RemoveCurrent()
	if !ok {
		return kont.Left[error, V](ErrEmptyCursor)
	}
	return kont.Right[error](v)
}
