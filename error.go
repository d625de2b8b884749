// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// cursorErrorHandler handles both cursor and error effects.
// Cursor ops dispatch on the held cursor. Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type cursorErrorHandler[V, E, A any] struct {
	c      *CursorMut[V]
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Cursor+Error handler.
// Dispatch order: Cursor → Error.
func (h cursorErrorHandler[V, E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(cursorDispatcher); ok {
		return cop.DispatchCursor(h.c), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("ghost: unhandled effect in cursorErrorHandler")
}

// ExecError runs a cursor protocol with error handling over l.
// Returns Either[E, R]: Right on success, Left on Throw. Changes made
// before a Throw stay in the list.
// Holds one exclusive token for the whole run, waiting with adaptive
// backoff (iox.Backoff) while another token of the brand is live.
func ExecError[V, E, R any](l *List[V], protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return holdWait(l, func(c *CursorMut[V]) kont.Either[E, R] {
		var errCtx kont.ErrorContext[E]
		h := cursorErrorHandler[V, E, R]{c: c, errCtx: &errCtx}
		return kont.Handle(wrapped, h)
	})
}

// ExecErrorExpr runs an Expr cursor protocol with error handling over l.
// Returns Either[E, R]: Right on success, Left on Throw.
func ExecErrorExpr[V, E, R any](l *List[V], protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return holdWait(l, func(c *CursorMut[V]) kont.Either[E, R] {
		var errCtx kont.ErrorContext[E]
		h := cursorErrorHandler[V, E, R]{c: c, errCtx: &errCtx}
		return kont.HandleExpr(wrapped, h)
	})
}

// StepError evaluates a cursor protocol with error support until the
// first effect suspension. Returns (Either[E, R], nil) on completion or
// error, or (zero, suspension) if pending.
func StepError[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation on the session.
// Cursor ops are non-blocking (iox.ErrWouldBlock, ErrSessionInvalidated).
// Error ops are eager and need no token: Throw discards the suspension
// and returns Left.
func AdvanceError[V, E, R any](s *Session[V], susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	if cop, ok := susp.Op().(cursorDispatcher); ok {
		var v kont.Resumed
		if err := s.step(func(c *CursorMut[V]) { v = cop.DispatchCursor(c) }); err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("ghost: unhandled effect in AdvanceError")
}
