// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ghost provides pointer-based collections whose node access is
// mediated by branded tokens and fractional-ownership pointers, after the
// GhostCell and StaticRc disciplines.
//
// # Architecture
//
//   - Brand: [NewBrand] mints a process-unique identity scoping a family of cells.
//   - Token: [WithExclusive], [WithShared] and [WithToken] issue a token for the
//     dynamic extent of a callback. At most one exclusive token, or any number of
//     shared tokens, is live per brand. [TryWithExclusive] and [TryWithShared]
//     return [code.hybscloud.com/iox.ErrWouldBlock] instead of panicking on conflict.
//   - Cell: [Cell] grants read views to any token of its brand and write views to
//     exclusive tokens only.
//   - Pointer: [Ptr] holds a fraction of its cell's fixed ownership total.
//     [Ptr.Split] and [Join] redistribute fractions; only a full pointer may free
//     the cell with [Ptr.IntoInner].
//   - List: [List] is a doubly linked list whose nodes are owned in halves by the
//     forward and backward links reaching them. Freed nodes are recycled through a
//     bounded lock-free ring from [code.hybscloud.com/lfq].
//   - Cursor: [Cursor] and [CursorMut] walk a list under one token, with
//     positions before the first element, on an element, and after the last.
//
// Kind is checked statically: write views take an [*ExclusiveToken]. Brand,
// scope and pointer linearity are checked at run time and violations panic
// with a "ghost: ..." message; they are programming errors, not conditions
// to recover from. Ordinary outcomes such as popping an empty list or
// removing through an unpositioned cursor are reported as (zero, false).
//
// # Cursor Protocols
//
// Cursor sessions can also be written as algebraic-effect programs on
// [code.hybscloud.com/kont]:
//
//   - Operations: [MoveNext], [MovePrev], [MoveToFront], [MoveToBack], [Len],
//     [Current], [InsertAfter], [InsertBefore], [RemoveCurrent].
//   - Cont-world: [MoveNextBind], [MovePrevBind], [CurrentBind], [RemoveBind],
//     [InsertAfterThen], [InsertBeforeThen], and [Loop] for walks.
//   - Expr-world: [ExprMoveNextBind], [ExprCurrentBind], [ExprInsertAfterThen], etc.
//     Bridge via [Reify] and [Reflect].
//   - Blocking: [Exec], [ExecExpr], [ExecError], [ExecErrorExpr] hold one exclusive
//     token for the whole run, waiting with iox.Backoff while the brand is busy.
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) dispatch one
//     effect per call on a [Session], taking the token for that dispatch only.
//
// # Example
//
//	l := ghost.New[int](ghost.NewBrand())
//	l.PushBack(1)
//	l.PushBack(2)
//	l.PushBack(3)
//	removed := ghost.WithCursorMut(l, func(c *ghost.CursorMut[int]) int {
//		c.MoveNext()
//		c.MoveNext()
//		v, _ := c.RemoveCurrent()
//		return v
//	})
//	// removed == 2, l holds [1 3]
package ghost
